// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-related database operations.
// A user's address book is the set of rows with their OwnerID; there is no
// duplicated list of address ids kept anywhere else.
type AddressRepository interface {
	// CreateAddress persists a new address for an owner.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByOwner retrieves all addresses for a specific owner,
	// default address first.
	FindAddressesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Address, error)

	// ClearDefaultForOwner unsets the default flag on all of an owner's
	// addresses. Called before promoting a new default.
	ClearDefaultForOwner(ctx context.Context, ownerID uuid.UUID) error

	// UpdateAddress updates an existing address record.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress removes an address by its ID.
	DeleteAddress(ctx context.Context, id uuid.UUID) error
}
