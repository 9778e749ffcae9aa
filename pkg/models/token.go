package models

import "time"

// TokenPayload is one signed token together with its expiry instant.
type TokenPayload struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// AuthTokens is the token set returned by register and login.
type AuthTokens struct {
	Access TokenPayload `json:"access"`
}

// AuthResponse is the register/login response body.
type AuthResponse struct {
	User   *User      `json:"user"`
	Tokens AuthTokens `json:"tokens"`
}
