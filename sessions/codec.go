package sessions

import (
	"github.com/golang-jwt/jwt/v5"
)

// Codec signs and verifies the stateless session cookie. The cookie value
// is a compact HS256 token over the two authentication flags; there is no
// expiry claim, a session lives until the secret rotates. Verification is
// constant-time inside the HMAC check, and any failure (missing cookie,
// malformed payload, signature mismatch, wrong algorithm) yields a fresh
// anonymous session rather than an error.
type Codec struct {
	secret []byte
}

type sessionClaims struct {
	SiteAuthed  bool `json:"siteAuthed"`
	AdminAuthed bool `json:"adminAuthed"`
	jwt.RegisteredClaims
}

// NewCodec creates a Codec signing with the given server-held secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode serializes and signs a session into a cookie value.
func (c *Codec) Encode(session Session) (string, error) {
	claims := sessionClaims{
		SiteAuthed:  session.SiteAuthed,
		AdminAuthed: session.AdminAuthed,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies a cookie value and returns the session it carries.
// Untrusted input never causes an error: anything that does not verify
// decodes to the anonymous session.
func (c *Codec) Decode(raw string) Session {
	if raw == "" {
		return Session{}
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return Session{}
	}

	return Session{
		SiteAuthed:  claims.SiteAuthed,
		AdminAuthed: claims.AdminAuthed,
	}
}
