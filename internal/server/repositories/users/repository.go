// Package users declares and implements persistence of user accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/virtualgarden/internal/server/models"
)

type Repository interface {
	// Create stores user and fills in its ID and CreatedAt. A taken email
	// yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByEmail returns common.ErrorNotFound when no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
