package model

import "time"

// AccessToken : JWT для заголовка Authorization
// swagger:model
type AccessToken struct {
	// example: eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9...
	Token     string    `json:"accessToken"`
	ExpiresAt time.Time `json:"expiresAt"`
}
