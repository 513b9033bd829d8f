// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	txManager repository.TransactionManager,
	addressRepo repository.AddressRepository,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		txManager:   txManager,
		addressRepo: addressRepo,
		logger:      logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAddress adds an address to the owner's address book. Promoting the
// new address to default demotes the previous default in the same
// transaction, so at most one default exists per owner.
func (srv *addressService) CreateAddress(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateAddressInput) (*entity.Address, error) {
	srv.log(ctx).Info("Creating address", slog.Any("ownerID", ownerID), slog.String("type", input.Type))

	if ownerID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "owner id is required")
	}
	addrType := entity.AddressType(input.Type)
	if !addrType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown address type")
	}
	if input.Street == "" || input.City == "" || input.Country == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "street, city and country are required")
	}

	address := &entity.Address{
		OwnerID:     ownerID,
		Type:        addrType,
		ContactName: input.ContactName,
		Phone:       input.Phone,
		Street:      input.Street,
		City:        input.City,
		State:       input.State,
		PostalCode:  input.PostalCode,
		Country:     input.Country,
		IsDefault:   input.IsDefault,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		if address.IsDefault {
			if err := addressRepo.ClearDefaultForOwner(ctx, ownerID); err != nil {
				return errors.Wrap(err, "failed to clear previous default address")
			}
		}

		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute address creation transaction")
	}

	return address, nil
}

// ListAddresses returns the owner's address book.
func (srv *addressService) ListAddresses(ctx context.Context, ownerID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindAddressesByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// UpdateAddress applies a partial patch to an owned address.
func (srv *addressService) UpdateAddress(ctx context.Context, id, requesterID uuid.UUID, input *usecase.UpdateAddressInput) (*entity.Address, error) {
	srv.log(ctx).Info("Updating address", slog.Any("addressID", id), slog.Any("requesterID", requesterID))

	if input.Type != nil && !entity.AddressType(*input.Type).IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown address type")
	}

	var updated *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := addressRepo.FindAddressByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
			}

			return errors.Wrap(err, "failed to find address")
		}

		if address.OwnerID != requesterID {
			return errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "address belongs to another user")
		}

		applyAddressPatch(address, input)

		if input.IsDefault != nil && *input.IsDefault {
			if err := addressRepo.ClearDefaultForOwner(ctx, address.OwnerID); err != nil {
				return errors.Wrap(err, "failed to clear previous default address")
			}
			address.IsDefault = true
		}

		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}
		updated = address

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute address update transaction")
	}

	return updated, nil
}

// DeleteAddress removes an owned address from the address book.
func (srv *addressService) DeleteAddress(ctx context.Context, id, requesterID uuid.UUID) error {
	srv.log(ctx).Info("Deleting address", slog.Any("addressID", id), slog.Any("requesterID", requesterID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := addressRepo.FindAddressByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
			}

			return errors.Wrap(err, "failed to find address")
		}

		if address.OwnerID != requesterID {
			return errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "address belongs to another user")
		}

		if err := addressRepo.DeleteAddress(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete address")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute address deletion transaction")
	}

	return nil
}

// applyAddressPatch copies the non-nil patch fields onto the address. The
// default flag is handled by the caller because it touches sibling rows.
func applyAddressPatch(address *entity.Address, input *usecase.UpdateAddressInput) {
	if input.Type != nil {
		address.Type = entity.AddressType(*input.Type)
	}
	if input.ContactName != nil {
		address.ContactName = *input.ContactName
	}
	if input.Phone != nil {
		address.Phone = *input.Phone
	}
	if input.Street != nil {
		address.Street = *input.Street
	}
	if input.City != nil {
		address.City = *input.City
	}
	if input.State != nil {
		address.State = *input.State
	}
	if input.PostalCode != nil {
		address.PostalCode = *input.PostalCode
	}
	if input.Country != nil {
		address.Country = *input.Country
	}
	if input.IsDefault != nil && !*input.IsDefault {
		address.IsDefault = false
	}
}
