package user

import (
	"errors"
	"strings"

	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/pkg/errs"
	"ecobazaar/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when using a User that was not created
// via the NewUser constructor.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is the account entity. Identity checks during order cancellation
// compare the requester's email against the buyer's email.
type User struct {
	id       kernel.UUID
	email    string
	username string
	role     Role

	guard guard.ConstructorGuard
}

// NewUser creates a User with the given attributes.
func NewUser(id kernel.UUID, email string, username string, role Role) (*User, error) {
	user := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		user.setID(id),
		user.setEmail(email),
		user.setUsername(username),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a User from persistent storage.
func RestoreUser(id kernel.UUID, email string, username string, role Role) (*User, error) {
	return NewUser(id, email, username, role)
}

// IsEqual compares two users by identity.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the unique identifier of the user.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Username returns the user's display name.
func (u *User) Username() string {
	return u.username
}

// Role returns the user's access level.
func (u *User) Role() Role {
	return u.role
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email is required")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email is invalid")
	}

	u.email = email
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username is required")
	}

	u.username = username
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	u.role = role
	return nil
}

// Validate checks that the User was created through its constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}
