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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCatalogService(txManager, productRepo, logger)

	return catalogServiceFixtures{
		service:     service,
		txManager:   txManager,
		productRepo: productRepo,
	}
}

func validCreateProductInput() *usecase.CreateProductInput {
	return &usecase.CreateProductInput{
		Name:        "Mechanical Keyboard",
		Price:       decimal.NewFromFloat(129.99),
		Stock:       10,
		Category:    entity.CategoryElectronics.String(),
		Description: "Hot-swappable switches",
		Brand:       "Keychron",
		Images:      []string{"https://cdn.example.com/kb.jpg"},
	}
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := validCreateProductInput()

	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, ownerID, input)

	require.NoError(t, err)
	assert.Equal(t, ownerID, product.OwnerID)
	assert.Equal(t, input.Name, product.Name)
	assert.True(t, input.Price.Equal(product.Price))
	assert.Equal(t, entity.CategoryElectronics, product.Category)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	testCases := []struct {
		name   string
		mutate func(input *usecase.CreateProductInput)
	}{
		{
			name:   "empty name",
			mutate: func(input *usecase.CreateProductInput) { input.Name = "" },
		},
		{
			name:   "zero price",
			mutate: func(input *usecase.CreateProductInput) { input.Price = decimal.Zero },
		},
		{
			name:   "negative price",
			mutate: func(input *usecase.CreateProductInput) { input.Price = decimal.NewFromInt(-5) },
		},
		{
			name:   "negative stock",
			mutate: func(input *usecase.CreateProductInput) { input.Stock = -1 },
		},
		{
			name:   "unknown category",
			mutate: func(input *usecase.CreateProductInput) { input.Category = "antiques" },
		},
		{
			name: "too many images",
			mutate: func(input *usecase.CreateProductInput) {
				input.Images = make([]string, entity.MaxProductImages+1)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCreateProductInput()
			tc.mutate(input)

			product, err := fx.service.CreateProduct(ctx, ownerID, input)

			assert.Error(t, err)
			assert.Nil(t, product)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	unknownID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, unknownID).
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, unknownID)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_ListProducts(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	catalog := []*entity.Product{
		{ID: uuid.New(), Name: "first"},
		{ID: uuid.New(), Name: "second"},
	}

	fx.productRepo.EXPECT().ListProducts(ctx).Return(catalog, nil)

	products, err := fx.service.ListProducts(ctx)

	require.NoError(t, err)
	assert.Equal(t, catalog, products)
}

func TestCatalogService_UpdateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()

	newName := "Renamed Keyboard"
	newStock := 3
	input := &usecase.UpdateProductInput{
		Name:  &newName,
		Stock: &newStock,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockProductRepo.EXPECT().
				FindProductByID(ctx, productID).
				Return(&entity.Product{
					ID:      productID,
					OwnerID: ownerID,
					Name:    "Mechanical Keyboard",
					Price:   decimal.NewFromInt(100),
					Stock:   10,
				}, nil)

			mockProductRepo.EXPECT().
				UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).
				Run(func(ctx context.Context, product *entity.Product) {
					assert.Equal(t, newName, product.Name)
					assert.Equal(t, newStock, product.Stock)
					// Untouched fields keep their values.
					assert.True(t, decimal.NewFromInt(100).Equal(product.Price))
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, productID, ownerID, input)

	require.NoError(t, err)
	assert.Equal(t, newName, product.Name)
}

func TestCatalogService_UpdateProduct_NotOwner(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	strangerID := uuid.New()

	newName := "Hijacked"
	input := &usecase.UpdateProductInput{Name: &newName}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockProductRepo.EXPECT().
				FindProductByID(ctx, productID).
				Return(&entity.Product{ID: productID, OwnerID: uuid.New()}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrProductOwnershipViolation, "requester does not own this product"))

	product, err := fx.service.UpdateProduct(ctx, productID, strangerID, input)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductOwnershipViolation))
}

func TestCatalogService_DeleteProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockProductRepo.EXPECT().
				FindProductByID(ctx, productID).
				Return(&entity.Product{ID: productID, OwnerID: ownerID}, nil)
			mockProductRepo.EXPECT().DeleteProduct(ctx, productID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteProduct(ctx, productID, ownerID)

	assert.NoError(t, err)
}

func TestCatalogService_AddReview_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	reviewerID := uuid.New()
	input := &usecase.AddReviewInput{Comment: "great", Rating: 4}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockProductRepo.EXPECT().
				FindProductByID(ctx, productID).
				Return(&entity.Product{
					ID:      productID,
					OwnerID: uuid.New(),
					Reviews: []entity.Review{
						{ProductID: productID, ReviewerID: uuid.New(), Rating: 2},
					},
					Rating: 2,
				}, nil)

			mockProductRepo.EXPECT().
				AddReview(ctx, mock.AnythingOfType("*entity.Review"), 3.0).
				Run(func(ctx context.Context, review *entity.Review, newRating float64) {
					assert.Equal(t, reviewerID, review.ReviewerID)
					assert.Equal(t, 4, review.Rating)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	product, err := fx.service.AddReview(ctx, productID, reviewerID, input)

	require.NoError(t, err)
	// Mean of ratings 2 and 4.
	assert.InDelta(t, 3.0, product.Rating, 0.001)
	assert.Len(t, product.Reviews, 2)
}

func TestCatalogService_AddReview_RatingOutOfRange(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		product, err := fx.service.AddReview(ctx, uuid.New(), uuid.New(), &usecase.AddReviewInput{Rating: rating})

		assert.Error(t, err)
		assert.Nil(t, product)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}
