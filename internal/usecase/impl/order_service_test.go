package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOrderService(txManager, orderRepo, logger)

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()
	addressID := uuid.New()
	keyboardID := uuid.New()
	mouseID := uuid.New()

	input := &usecase.CreateOrderInput{
		SellerID: sellerID,
		Items: []usecase.OrderItemInput{
			{ProductID: keyboardID, Quantity: 2},
			{ProductID: mouseID, Quantity: 1},
		},
		ShippingAddressID: addressID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, sellerID).
				Return(&entity.User{ID: sellerID, Role: entity.RoleSeller}, nil)

			mockAddressRepo.EXPECT().
				FindAddressByID(ctx, addressID).
				Return(&entity.Address{ID: addressID, OwnerID: buyerID}, nil)

			mockProductRepo.EXPECT().
				FindProductByID(ctx, keyboardID).
				Return(&entity.Product{
					ID:      keyboardID,
					OwnerID: sellerID,
					Price:   decimal.NewFromInt(100),
					Stock:   5,
				}, nil)
			mockProductRepo.EXPECT().DecrementStock(ctx, keyboardID, 2).Return(nil)

			mockProductRepo.EXPECT().
				FindProductByID(ctx, mouseID).
				Return(&entity.Product{
					ID:      mouseID,
					OwnerID: sellerID,
					Price:   decimal.NewFromInt(50),
					Stock:   1,
				}, nil)
			mockProductRepo.EXPECT().DecrementStock(ctx, mouseID, 1).Return(nil)

			mockOrderRepo.EXPECT().
				CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, buyerID, input)

	require.NoError(t, err)
	assert.Equal(t, buyerID, order.BuyerID)
	assert.Equal(t, sellerID, order.SellerID)
	assert.Equal(t, entity.OrderStatusInProgress, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	// 2 × 100 + 1 × 50
	assert.True(t, decimal.NewFromInt(250).Equal(order.TotalAmount))
	require.Len(t, order.Items, 2)
	assert.True(t, decimal.NewFromInt(100).Equal(order.Items[0].UnitPrice))
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()
	addressID := uuid.New()
	productID := uuid.New()

	input := &usecase.CreateOrderInput{
		SellerID:          sellerID,
		Items:             []usecase.OrderItemInput{{ProductID: productID, Quantity: 10}},
		ShippingAddressID: addressID,
	}

	stockError := domainerrors.ErrInsufficientStock.WithDetails("product " + productID.String() + ": requested 10, available 3")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, sellerID).
				Return(&entity.User{ID: sellerID}, nil)
			mockAddressRepo.EXPECT().
				FindAddressByID(ctx, addressID).
				Return(&entity.Address{ID: addressID, OwnerID: buyerID}, nil)

			// Stock check fails before any decrement, nothing to roll back.
			mockProductRepo.EXPECT().
				FindProductByID(ctx, productID).
				Return(&entity.Product{ID: productID, Price: decimal.NewFromInt(10), Stock: 3}, nil)

			_ = fn(mockFactory)
		}).
		Return(stockError)

	order, err := fx.service.CreateOrder(ctx, buyerID, input)

	assert.Error(t, err)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
}

func TestOrderService_CreateOrder_AddressNotOwned(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()
	addressID := uuid.New()

	input := &usecase.CreateOrderInput{
		SellerID:          sellerID,
		Items:             []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
		ShippingAddressID: addressID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, sellerID).
				Return(&entity.User{ID: sellerID}, nil)
			mockAddressRepo.EXPECT().
				FindAddressByID(ctx, addressID).
				Return(&entity.Address{ID: addressID, OwnerID: uuid.New()}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "shipping address does not belong to the buyer"))

	order, err := fx.service.CreateOrder(ctx, buyerID, input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressOwnershipViolation))
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()

	valid := func() *usecase.CreateOrderInput {
		return &usecase.CreateOrderInput{
			SellerID:          uuid.New(),
			Items:             []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
			ShippingAddressID: uuid.New(),
		}
	}

	testCases := []struct {
		name   string
		mutate func(input *usecase.CreateOrderInput)
	}{
		{
			name:   "missing seller",
			mutate: func(input *usecase.CreateOrderInput) { input.SellerID = uuid.Nil },
		},
		{
			name:   "no items",
			mutate: func(input *usecase.CreateOrderInput) { input.Items = nil },
		},
		{
			name:   "missing address",
			mutate: func(input *usecase.CreateOrderInput) { input.ShippingAddressID = uuid.Nil },
		},
		{
			name:   "zero quantity",
			mutate: func(input *usecase.CreateOrderInput) { input.Items[0].Quantity = 0 },
		},
		{
			name:   "negative quantity",
			mutate: func(input *usecase.CreateOrderInput) { input.Items[0].Quantity = -2 },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid()
			tc.mutate(input)

			order, err := fx.service.CreateOrder(ctx, buyerID, input)

			assert.Error(t, err)
			assert.Nil(t, order)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

// expectTransition wires the txManager so a transition runs against the given
// order. The outer error mirrors what the mutation returned, as the real
// transaction manager would propagate it.
func expectTransition(t *testing.T, fx orderServiceFixtures, ctx context.Context, order *entity.Order, expectUpdate bool, outerErr error) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
			if expectUpdate {
				mockOrderRepo.EXPECT().UpdateOrder(ctx, order).Return(nil)
			}

			_ = fn(mockFactory)
		}).
		Return(outerErr)
}

func TestOrderService_PayOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		BuyerID:       buyerID,
		SellerID:      uuid.New(),
		Status:        entity.OrderStatusInProgress,
		PaymentStatus: entity.PaymentStatusPending,
	}

	expectTransition(t, fx, ctx, order, true, nil)

	paid, err := fx.service.PayOrder(ctx, order.ID, buyerID)

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, paid.PaymentStatus)
}

func TestOrderService_PayOrder_NotBuyer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:            uuid.New(),
		BuyerID:       uuid.New(),
		SellerID:      uuid.New(),
		Status:        entity.OrderStatusInProgress,
		PaymentStatus: entity.PaymentStatusPending,
	}

	expectTransition(t, fx, ctx, order, false,
		errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "only the buyer may pay the order"))

	paid, err := fx.service.PayOrder(ctx, order.ID, order.SellerID)

	assert.Error(t, err)
	assert.Nil(t, paid)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderOwnershipViolation))
}

func TestOrderService_PayOrder_AlreadyPaid(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		BuyerID:       buyerID,
		Status:        entity.OrderStatusInProgress,
		PaymentStatus: entity.PaymentStatusPaid,
	}

	expectTransition(t, fx, ctx, order, false,
		errors.Wrap(domainerrors.ErrInvalidStateTransition, "order is not awaiting payment"))

	paid, err := fx.service.PayOrder(ctx, order.ID, buyerID)

	assert.Error(t, err)
	assert.Nil(t, paid)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStateTransition))
}

func TestOrderService_CompleteOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		BuyerID:       buyerID,
		Status:        entity.OrderStatusInProgress,
		PaymentStatus: entity.PaymentStatusPaid,
	}

	expectTransition(t, fx, ctx, order, true, nil)

	completed, err := fx.service.CompleteOrder(ctx, order.ID, buyerID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, completed.Status)
	require.NotNil(t, completed.DeliveredAt)
	assert.WithinDuration(t, time.Now(), *completed.DeliveredAt, time.Minute)
}

func TestOrderService_CompleteOrder_Unpaid(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		BuyerID:       buyerID,
		Status:        entity.OrderStatusInProgress,
		PaymentStatus: entity.PaymentStatusPending,
	}

	expectTransition(t, fx, ctx, order, false,
		errors.Wrap(domainerrors.ErrInvalidStateTransition, "order must be paid before completion"))

	completed, err := fx.service.CompleteOrder(ctx, order.ID, buyerID)

	assert.Error(t, err)
	assert.Nil(t, completed)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStateTransition))
}

func TestOrderService_ReturnOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		BuyerID:       buyerID,
		Status:        entity.OrderStatusCompleted,
		PaymentStatus: entity.PaymentStatusPaid,
	}

	expectTransition(t, fx, ctx, order, true, nil)

	returned, err := fx.service.ReturnOrder(ctx, order.ID, buyerID, "arrived broken")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReturned, returned.Status)
	assert.Equal(t, "arrived broken", returned.ReturnReason)
}

func TestOrderService_ReturnOrder_ReasonRequired(t *testing.T) {
	fx := createTestOrderService(t)

	returned, err := fx.service.ReturnOrder(context.Background(), uuid.New(), uuid.New(), "")

	assert.Error(t, err)
	assert.Nil(t, returned)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_ReturnOrder_NotCompleted(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	order := &entity.Order{
		ID:      uuid.New(),
		BuyerID: buyerID,
		Status:  entity.OrderStatusInProgress,
	}

	expectTransition(t, fx, ctx, order, false,
		errors.Wrap(domainerrors.ErrInvalidStateTransition, "only completed orders can be returned"))

	returned, err := fx.service.ReturnOrder(ctx, order.ID, buyerID, "changed my mind")

	assert.Error(t, err)
	assert.Nil(t, returned)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStateTransition))
}

func TestOrderService_CancelOrder_RestocksItems(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	keyboardID := uuid.New()
	mouseID := uuid.New()
	order := &entity.Order{
		ID:      uuid.New(),
		BuyerID: buyerID,
		Status:  entity.OrderStatusInProgress,
		Items: []entity.OrderItem{
			{ProductID: keyboardID, Quantity: 2},
			{ProductID: mouseID, Quantity: 1},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockOrderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
			mockProductRepo.EXPECT().IncrementStock(ctx, keyboardID, 2).Return(nil)
			mockProductRepo.EXPECT().IncrementStock(ctx, mouseID, 1).Return(nil)
			mockOrderRepo.EXPECT().UpdateOrder(ctx, order).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	canceled, err := fx.service.CancelOrder(ctx, order.ID, buyerID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCanceled, canceled.Status)
}

func TestOrderService_CancelOrder_NotInProgress(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	order := &entity.Order{
		ID:      uuid.New(),
		BuyerID: buyerID,
		Status:  entity.OrderStatusCompleted,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockOrderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrInvalidStateTransition, "only in-progress orders can be canceled"))

	canceled, err := fx.service.CancelOrder(ctx, order.ID, buyerID)

	assert.Error(t, err)
	assert.Nil(t, canceled)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStateTransition))
}

func TestOrderService_UpdateOrderStatus_SellerOverride(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	// A RETURNED order is otherwise terminal; the seller override still moves it.
	order := &entity.Order{
		ID:       uuid.New(),
		BuyerID:  uuid.New(),
		SellerID: sellerID,
		Status:   entity.OrderStatusReturned,
	}

	expectTransition(t, fx, ctx, order, true, nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, order.ID, sellerID, &usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatusInProgress.String(),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusInProgress, updated.Status)
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	order := &entity.Order{
		ID:       uuid.New(),
		BuyerID:  uuid.New(),
		SellerID: sellerID,
		Status:   entity.OrderStatusInProgress,
	}

	expectTransition(t, fx, ctx, order, false,
		errors.Wrap(domainerrors.ErrValidationFailed, "unknown order status"))

	updated, err := fx.service.UpdateOrderStatus(ctx, order.ID, sellerID, &usecase.UpdateOrderStatusInput{
		Status: "SHIPPED",
	})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_UpdateOrderStatus_StrangerUnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:       uuid.New(),
		BuyerID:  uuid.New(),
		SellerID: uuid.New(),
		Status:   entity.OrderStatusInProgress,
	}

	expectTransition(t, fx, ctx, order, false,
		errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "only the seller may override the order status"))

	// A non-seller with a bogus status is rejected for ownership, not for
	// the status value.
	updated, err := fx.service.UpdateOrderStatus(ctx, order.ID, uuid.New(), &usecase.UpdateOrderStatusInput{
		Status: "SHIPPED",
	})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderOwnershipViolation))
	assert.False(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_UpdateOrderStatus_NotSeller(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:       uuid.New(),
		BuyerID:  uuid.New(),
		SellerID: uuid.New(),
		Status:   entity.OrderStatusInProgress,
	}

	expectTransition(t, fx, ctx, order, false,
		errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "only the seller may override the order status"))

	updated, err := fx.service.UpdateOrderStatus(ctx, order.ID, order.BuyerID, &usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatusCompleted.String(),
	})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderOwnershipViolation))
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	unknownID := uuid.New()

	fx.orderRepo.EXPECT().FindOrderByID(ctx, unknownID).Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, unknownID)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_GetUserOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	history := []*entity.Order{
		{ID: uuid.New(), BuyerID: buyerID},
		{ID: uuid.New(), BuyerID: buyerID},
	}

	fx.orderRepo.EXPECT().FindOrdersByBuyer(ctx, buyerID).Return(history, nil)

	orders, err := fx.service.GetUserOrders(ctx, buyerID)

	require.NoError(t, err)
	assert.Equal(t, history, orders)
}
