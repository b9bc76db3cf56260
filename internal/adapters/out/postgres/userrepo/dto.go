// Package userrepo provides data transfer objects and mapping functions for
// user persistence.
package userrepo

import (
	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user entities.
type UserDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email    string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Username string    `gorm:"type:varchar(255);not null"`
	Role     int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for user entities.
// Overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain entity to its database representation.
func fromDomain(entity *user.User) UserDTO {
	return UserDTO{
		ID:       entity.ID().Bytes(),
		Email:    entity.Email(),
		Username: entity.Username(),
		Role:     int(entity.Role()),
	}
}

// toDomain converts a database DTO to a user domain entity.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Email, dto.Username, user.Role(dto.Role))
}
