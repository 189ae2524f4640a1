package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Header is the HTTP header carrying the HMAC digest on both outbound
// submissions and inbound webhook notifications.
const Header = "X-Riskgate-Hmac-Sha256"

// Sign computes the hex-encoded HMAC-SHA256 digest of body under secret.
// The digest must always be computed over the exact bytes that traverse
// the wire, never over a re-serialization.
func Sign(body, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether sig is the digest of body under secret.
// The comparison is constant time.
func Verify(body []byte, sig string, secret []byte) bool {
	expected, err := hex.DecodeString(Sign(body, secret))
	if err != nil {
		return false
	}
	got, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, got)
}
