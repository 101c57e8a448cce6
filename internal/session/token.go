package session

import (
	"time"

	"github.com/go-jose/go-jose/v3/jwt"
)

// tokenExpired peeks at the exp claim without verifying the signature; the
// backend stays the authority on validity. A stored token that is visibly
// past its expiry gets cleared without a round trip. Opaque (non-JWT)
// tokens never expire locally.
func tokenExpired(token string, now time.Time) bool {
	parsed, err := jwt.ParseSigned(token)
	if err != nil {
		return false
	}
	var claims jwt.Claims
	if err := parsed.UnsafeClaimsWithoutVerification(&claims); err != nil {
		return false
	}
	if claims.Expiry == nil {
		return false
	}
	return claims.Expiry.Time().Before(now)
}
