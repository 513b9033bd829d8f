package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	txManager   *mockRepo.MockTransactionManager
	addressRepo *mockRepo.MockAddressRepository
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAddressService(txManager, addressRepo, logger)

	return addressServiceFixtures{
		service:     service,
		txManager:   txManager,
		addressRepo: addressRepo,
	}
}

func validCreateAddressInput() *usecase.CreateAddressInput {
	return &usecase.CreateAddressInput{
		Type:        string(entity.AddressTypeHome),
		ContactName: "Test User",
		Phone:       "0912345678",
		Street:      "1 Market St",
		City:        "Taipei",
		State:       "",
		PostalCode:  "100",
		Country:     "TW",
	}
}

func TestAddressService_CreateAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := validCreateAddressInput()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)

			mockAddressRepo.EXPECT().
				CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
				Run(func(ctx context.Context, address *entity.Address) {
					address.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.CreateAddress(ctx, ownerID, input)

	require.NoError(t, err)
	assert.Equal(t, ownerID, address.OwnerID)
	assert.Equal(t, entity.AddressTypeHome, address.Type)
	assert.False(t, address.IsDefault)
}

func TestAddressService_CreateAddress_PromotesNewDefault(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := validCreateAddressInput()
	input.IsDefault = true

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)

			// The previous default is demoted in the same transaction.
			mockAddressRepo.EXPECT().ClearDefaultForOwner(ctx, ownerID).Return(nil)
			mockAddressRepo.EXPECT().
				CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.CreateAddress(ctx, ownerID, input)

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
}

func TestAddressService_CreateAddress_Validation(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	testCases := []struct {
		name   string
		mutate func(input *usecase.CreateAddressInput)
	}{
		{
			name:   "unknown type",
			mutate: func(input *usecase.CreateAddressInput) { input.Type = "vacation" },
		},
		{
			name:   "missing street",
			mutate: func(input *usecase.CreateAddressInput) { input.Street = "" },
		},
		{
			name:   "missing city",
			mutate: func(input *usecase.CreateAddressInput) { input.City = "" },
		},
		{
			name:   "missing country",
			mutate: func(input *usecase.CreateAddressInput) { input.Country = "" },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCreateAddressInput()
			tc.mutate(input)

			address, err := fx.service.CreateAddress(ctx, ownerID, input)

			assert.Error(t, err)
			assert.Nil(t, address)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestAddressService_ListAddresses(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	book := []*entity.Address{
		{ID: uuid.New(), OwnerID: ownerID, IsDefault: true},
		{ID: uuid.New(), OwnerID: ownerID},
	}

	fx.addressRepo.EXPECT().FindAddressesByOwner(ctx, ownerID).Return(book, nil)

	addresses, err := fx.service.ListAddresses(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, book, addresses)
}

func TestAddressService_UpdateAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	addressID := uuid.New()

	newCity := "Kaohsiung"
	makeDefault := true
	input := &usecase.UpdateAddressInput{
		City:      &newCity,
		IsDefault: &makeDefault,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)

			mockAddressRepo.EXPECT().
				FindAddressByID(ctx, addressID).
				Return(&entity.Address{
					ID:      addressID,
					OwnerID: ownerID,
					Type:    entity.AddressTypeHome,
					Street:  "1 Market St",
					City:    "Taipei",
					Country: "TW",
				}, nil)
			mockAddressRepo.EXPECT().ClearDefaultForOwner(ctx, ownerID).Return(nil)
			mockAddressRepo.EXPECT().
				UpdateAddress(ctx, mock.AnythingOfType("*entity.Address")).
				Run(func(ctx context.Context, address *entity.Address) {
					assert.Equal(t, newCity, address.City)
					assert.True(t, address.IsDefault)
					// Untouched fields keep their values.
					assert.Equal(t, "1 Market St", address.Street)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.UpdateAddress(ctx, addressID, ownerID, input)

	require.NoError(t, err)
	assert.Equal(t, newCity, address.City)
	assert.True(t, address.IsDefault)
}

func TestAddressService_UpdateAddress_NotOwner(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	addressID := uuid.New()
	strangerID := uuid.New()

	newCity := "Tainan"
	input := &usecase.UpdateAddressInput{City: &newCity}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)

			mockAddressRepo.EXPECT().
				FindAddressByID(ctx, addressID).
				Return(&entity.Address{ID: addressID, OwnerID: uuid.New()}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "address belongs to another user"))

	address, err := fx.service.UpdateAddress(ctx, addressID, strangerID, input)

	assert.Error(t, err)
	assert.Nil(t, address)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressOwnershipViolation))
}

func TestAddressService_DeleteAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	addressID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)

			mockAddressRepo.EXPECT().
				FindAddressByID(ctx, addressID).
				Return(&entity.Address{ID: addressID, OwnerID: ownerID}, nil)
			mockAddressRepo.EXPECT().DeleteAddress(ctx, addressID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteAddress(ctx, addressID, ownerID)

	assert.NoError(t, err)
}

func TestAddressService_DeleteAddress_NotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	addressID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)

			mockAddressRepo.EXPECT().
				FindAddressByID(ctx, addressID).
				Return(nil, repository.ErrAddressNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrAddressNotFound, "address not found"))

	err := fx.service.DeleteAddress(ctx, addressID, uuid.New())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}
