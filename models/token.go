package models

import "github.com/golang-jwt/jwt/v5"

// Token is a signed access token together with the claims it carries.
type Token struct {
	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent as "Authorization: Bearer ...".
	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

func (t Token) String() string {
	return t.SignedString
}
