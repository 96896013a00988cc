// Package models contains the rows persisted by the server repositories.
package models

import "time"

type Garden struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}
