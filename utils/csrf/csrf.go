package csrf

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"
)

// CookieName holds the session-bound half of the double-submit pair.
const CookieName = "csrf_token"

const tokenBytes = 32

// Mint generates a fresh token and returns it alongside the cookie that
// binds it to the caller's session.
func Mint() (string, *http.Cookie, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", nil, err
	}
	token := hex.EncodeToString(buf)

	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		SameSite: http.SameSiteStrictMode,
	}
	return token, cookie, nil
}

// Validate compares the session cookie token against the token submitted
// in the request body. Constant-time comparison; a missing or mismatched
// token is a hard failure and the caller must not mutate anything.
func Validate(r *http.Request, submitted string) bool {
	if submitted == "" {
		return false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(submitted)) == 1
}
