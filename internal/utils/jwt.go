package utils // package utils provides helpers for booking references and session tokens

import (
    "errors" // errors defines the invalid token sentinel
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// ErrInvalidSessionToken is returned when a session cookie fails signature,
// expiry or claim checks.
var ErrInvalidSessionToken = errors.New("invalid session token")

// SignSessionToken builds and signs an HS256 JWT that carries a session id
// in the "sid" claim.  The token is the value of the session cookie; the
// session data itself stays on the server.
func SignSessionToken(secret, sessionID string, exp time.Time) (string, error) {
    claims := jwt.MapClaims{
        "sid": sessionID,
        "exp": exp.UTC().Unix(),
        "iat": time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return t.SignedString([]byte(secret))
}

// ParseSessionToken verifies raw with secret and returns the session id it
// carries.
func ParseSessionToken(secret, raw string) (string, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Reject tokens signed with anything other than HMAC.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidSessionToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return "", ErrInvalidSessionToken
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return "", ErrInvalidSessionToken
    }
    sid, ok := claims["sid"].(string)
    if !ok || sid == "" {
        return "", ErrInvalidSessionToken
    }
    return sid, nil
}
