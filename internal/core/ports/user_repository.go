package ports

import (
	"context"

	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user entities.
type UserRepository interface {
	// Get retrieves a user by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by their email address.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
