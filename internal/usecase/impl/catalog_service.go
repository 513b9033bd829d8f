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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	txManager repository.TransactionManager,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   txManager,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct validates and persists a new listing for the owner.
func (srv *catalogService) CreateProduct(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.Any("ownerID", ownerID), slog.String("name", input.Name))

	if ownerID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "owner id is required")
	}
	if input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product name is required")
	}
	if !input.Price.IsPositive() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product price must be positive")
	}
	if input.Stock < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product stock cannot be negative")
	}
	category := entity.Category(input.Category)
	if !category.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown product category")
	}
	if len(input.Images) > entity.MaxProductImages {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "too many product images")
	}

	product := &entity.Product{
		OwnerID:     ownerID,
		Name:        input.Name,
		Price:       input.Price,
		Stock:       input.Stock,
		Category:    category,
		Description: input.Description,
		Brand:       input.Brand,
		Images:      input.Images,
	}

	if err := srv.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID))

	return product, nil
}

// GetProduct retrieves a single listing, including its reviews.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts retrieves the whole catalog in insertion order.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct applies a partial patch. Only the owner may mutate a listing.
func (srv *catalogService) UpdateProduct(ctx context.Context, id, requesterID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", slog.Any("productID", id), slog.Any("requesterID", requesterID))

	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindProductByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}

		if product.OwnerID != requesterID {
			return errors.Wrap(domainerrors.ErrProductOwnershipViolation, "requester does not own this product")
		}

		if err := applyProductPatch(product, input); err != nil {
			return err
		}

		if err := productRepo.UpdateProduct(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		updated = product

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute product update transaction")
	}

	return updated, nil
}

func applyProductPatch(product *entity.Product, input *usecase.UpdateProductInput) error {
	if input.Name != nil {
		if *input.Name == "" {
			return errors.Wrap(domainerrors.ErrValidationFailed, "product name cannot be empty")
		}
		product.Name = *input.Name
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			return errors.Wrap(domainerrors.ErrValidationFailed, "product price must be positive")
		}
		product.Price = *input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return errors.Wrap(domainerrors.ErrValidationFailed, "product stock cannot be negative")
		}
		product.Stock = *input.Stock
	}
	if input.Category != nil {
		category := entity.Category(*input.Category)
		if !category.IsValid() {
			return errors.Wrap(domainerrors.ErrValidationFailed, "unknown product category")
		}
		product.Category = category
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.Images != nil {
		if len(*input.Images) > entity.MaxProductImages {
			return errors.Wrap(domainerrors.ErrValidationFailed, "too many product images")
		}
		product.Images = *input.Images
	}

	return nil
}

// DeleteProduct removes a listing. Only the owner may delete.
func (srv *catalogService) DeleteProduct(ctx context.Context, id, requesterID uuid.UUID) error {
	srv.log(ctx).Info("Deleting product", slog.Any("productID", id), slog.Any("requesterID", requesterID))

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindProductByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}

		if product.OwnerID != requesterID {
			return errors.Wrap(domainerrors.ErrProductOwnershipViolation, "requester does not own this product")
		}

		if err := productRepo.DeleteProduct(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})
}

// AddReview appends a buyer review and recomputes the product rating.
func (srv *catalogService) AddReview(ctx context.Context, productID, reviewerID uuid.UUID, input *usecase.AddReviewInput) (*entity.Product, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "rating must be between 1 and 5")
	}

	var reviewed *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindProductByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}

		review := &entity.Review{
			ProductID:  productID,
			ReviewerID: reviewerID,
			Comment:    input.Comment,
			Rating:     input.Rating,
		}
		product.Reviews = append(product.Reviews, *review)
		product.RecalculateRating()

		if err := productRepo.AddReview(ctx, review, product.Rating); err != nil {
			return errors.Wrap(err, "failed to add review")
		}
		reviewed = product

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute review transaction")
	}

	return reviewed, nil
}
