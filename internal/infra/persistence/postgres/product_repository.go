// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// CreateProduct persists a new product listing.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("product violates a storage constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindProductByID retrieves a product, including its reviews, by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Reviews").
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindProductsByOwner retrieves all products owned by a specific user.
func (repo *productRepository) FindProductsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Reviews").
		Where("owner_id = ?", ownerID).
		Order("created_at").
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by owner")
	}

	return toProductDomainSlice(productMs), nil
}

// ListProducts retrieves all products in insertion order.
func (repo *productRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Reviews").
		Order("created_at").
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomainSlice(productMs), nil
}

// UpdateProduct updates an existing product record. Reviews are appended
// through AddReview, never rewritten here.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	err := repo.db.WithContext(ctx).
		Omit("Reviews").
		Save(productM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("product violates a storage constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// DeleteProduct removes a product by its ID.
func (repo *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock atomically reduces the stock counter with a conditional
// update. The WHERE clause carries the stock check, so a concurrent order
// can never drive the counter negative; zero affected rows means the stock
// did not cover the request and the row is untouched.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, amount int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, amount).
		UpdateColumn("stock", gorm.Expr("stock - ?", amount))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

// IncrementStock returns previously reserved units to the stock counter.
func (repo *productRepository) IncrementStock(ctx context.Context, id uuid.UUID, amount int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", amount))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// AddReview appends a review row and persists the recomputed product rating.
func (repo *productRepository) AddReview(ctx context.Context, review *entity.Review, newRating float64) error {
	reviewM := &model.ReviewModel{
		ID:         review.ID,
		ProductID:  review.ProductID,
		ReviewerID: review.ReviewerID,
		Comment:    review.Comment,
		Rating:     review.Rating,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("review violates a storage constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", review.ProductID).
		UpdateColumn("rating", newRating).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update product rating")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	reviews := make([]entity.Review, 0, len(data.Reviews))
	for _, reviewM := range data.Reviews {
		reviews = append(reviews, entity.Review{
			ID:         reviewM.ID,
			ProductID:  reviewM.ProductID,
			ReviewerID: reviewM.ReviewerID,
			Comment:    reviewM.Comment,
			Rating:     reviewM.Rating,
			CreatedAt:  reviewM.CreatedAt,
		})
	}

	return &entity.Product{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Price:       data.Price,
		Stock:       data.Stock,
		Category:    entity.Category(data.Category),
		Description: data.Description,
		Brand:       data.Brand,
		Images:      data.Images,
		Rating:      data.Rating,
		Reviews:     reviews,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProductDomainSlice(data []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for i := range data {
		products = append(products, toProductDomain(&data[i]))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Price:       data.Price,
		Stock:       data.Stock,
		Category:    string(data.Category),
		Description: data.Description,
		Brand:       data.Brand,
		Images:      data.Images,
		Rating:      data.Rating,
	}
}
