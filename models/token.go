package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued on login. The "sub" claim carries the
// user ID; UserName is kept alongside so handlers can log who acted without a
// database round trip.
type Claims struct {
	jwt.RegisteredClaims

	// UserName is the login name of the token owner.
	UserName string `json:"username"`
}

// Token wraps a parsed or freshly signed JWT.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// UserName is the owner login name extracted from the claims.
	UserName string `json:"-"`
}

// UserIDFromClaims parses the "sub" claim of c as a base-10 int64.
func UserIDFromClaims(c *Claims) (int64, error) {
	subject, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
