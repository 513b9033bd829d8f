// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAddressInput defines the data required to add an address.
type CreateAddressInput struct {
	Type        string `json:"type" validate:"required,oneof=home work other"`
	ContactName string `json:"contactName"`
	Phone       string `json:"phone"`
	Street      string `json:"street" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country" validate:"required"`
	IsDefault   bool   `json:"isDefault"`
}

// UpdateAddressInput is a partial patch; nil fields are left unchanged.
type UpdateAddressInput struct {
	Type        *string `json:"type"`
	ContactName *string `json:"contactName"`
	Phone       *string `json:"phone"`
	Street      *string `json:"street"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	PostalCode  *string `json:"postalCode"`
	Country     *string `json:"country"`
	IsDefault   *bool   `json:"isDefault"`
}

// AddressUsecase defines the interface for address book operations,
// always scoped to the owning user.
type AddressUsecase interface {
	CreateAddress(ctx context.Context, ownerID uuid.UUID, input *CreateAddressInput) (*entity.Address, error)
	ListAddresses(ctx context.Context, ownerID uuid.UUID) ([]*entity.Address, error)
	UpdateAddress(ctx context.Context, id, requesterID uuid.UUID, input *UpdateAddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, id, requesterID uuid.UUID) error
}
