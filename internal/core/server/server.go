package server

import (
	"riskgate/internal/core/logger"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewApp creates a Fiber application with the shared middleware stack:
// request ids, zap request logging, and a Prometheus metrics endpoint.
// The webhook listener registers its routes on top of this.
func NewApp(name string) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               name,
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return app
}
