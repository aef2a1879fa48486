// Package users persists user accounts. Users live in their own table, not
// in the generic record store: registration needs a uniqueness guarantee and
// a count, and the identity resolver needs an indexed email lookup.
package users

import (
	"context"

	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
)

type Repository interface {
	// Create inserts the user and fills in the store-assigned id.
	// A duplicate email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the single user with the given email, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Count returns the total number of registered users.
	Count(ctx context.Context) (int64, error)
}
