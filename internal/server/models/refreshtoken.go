package models

import "time"

// RefreshToken is an issued refresh token. It is single use: rotation
// deletes it and issues a new one.
type RefreshToken struct {
	UserID  string
	Token   string
	Expires time.Time
}
