// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// orderService implements the OrderUsecase interface. It is the only service
// that coordinates two entities (product stock and orders) in one operation,
// which is why every mutating path runs inside the transaction manager.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder validates the request, captures unit prices, reserves stock and
// persists the order. The whole sequence runs in one transaction: when any
// item is missing or under-stocked, every previous decrement rolls back, so
// stock is never reduced without a corresponding order.
func (srv *orderService) CreateOrder(ctx context.Context, buyerID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Creating order", slog.Any("buyerID", buyerID), slog.Any("sellerID", input.SellerID), slog.Int("items", len(input.Items)))

	if buyerID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "buyer id is required")
	}
	if input.SellerID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "seller id is required")
	}
	if len(input.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order must contain at least one item")
	}
	if input.ShippingAddressID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "shipping address id is required")
	}
	for _, item := range input.Items {
		if item.ProductID == uuid.Nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "item product id is required")
		}
		if item.Quantity <= 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "item quantity must be positive")
		}
	}

	var created *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		addressRepo := repoFactory.AddressRepo()
		productRepo := repoFactory.ProductRepo()
		orderRepo := repoFactory.OrderRepo()

		if _, err := userRepo.FindByID(ctx, input.SellerID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "seller not found")
			}

			return errors.Wrap(err, "failed to find seller")
		}

		address, err := addressRepo.FindAddressByID(ctx, input.ShippingAddressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "shipping address not found")
			}

			return errors.Wrap(err, "failed to find shipping address")
		}
		if address.OwnerID != buyerID {
			return errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "shipping address does not belong to the buyer")
		}

		total := decimal.Zero
		items := make([]entity.OrderItem, 0, len(input.Items))

		// Items are processed in list order. The unit price is the product
		// price at call time; it is captured onto the order line so later
		// price changes never affect this order.
		for _, requested := range input.Items {
			product, err := productRepo.FindProductByID(ctx, requested.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.WithDetails("product " + requested.ProductID.String() + " not found")
				}

				return errors.Wrap(err, "failed to find product")
			}

			if requested.Quantity > product.Stock {
				return domainerrors.ErrInsufficientStock.WithDetails("product " + product.ID.String() + ": requested " +
					decimal.NewFromInt(int64(requested.Quantity)).String() + ", available " +
					decimal.NewFromInt(int64(product.Stock)).String())
			}

			if err := productRepo.DecrementStock(ctx, product.ID, requested.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.ErrInsufficientStock.WithDetails("product " + product.ID.String() + " ran out of stock")
				}

				return errors.Wrap(err, "failed to decrement stock")
			}

			item := entity.OrderItem{
				ProductID: product.ID,
				Quantity:  requested.Quantity,
				UnitPrice: product.Price,
			}
			total = total.Add(item.Subtotal())
			items = append(items, item)
		}

		order := &entity.Order{
			BuyerID:           buyerID,
			SellerID:          input.SellerID,
			Items:             items,
			TotalAmount:       total,
			Status:            entity.OrderStatusInProgress,
			PaymentStatus:     entity.PaymentStatusPending,
			ShippingAddressID: input.ShippingAddressID,
			OrderedAt:         time.Now(),
		}
		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}
		created = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order creation failed", slog.Any("buyerID", buyerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order creation transaction")
	}

	srv.log(ctx).Debug("Order created", slog.Any("orderID", created.ID), slog.String("total", created.TotalAmount.String()))

	return created, nil
}

// PayOrder marks a pending order as paid. Restricted to the buyer: the
// original system let anyone pay any order, which is closed here.
func (srv *orderService) PayOrder(ctx context.Context, orderID, requesterID uuid.UUID) (*entity.Order, error) {
	srv.log(ctx).Info("Paying order", slog.Any("orderID", orderID), slog.Any("requesterID", requesterID))

	return srv.transition(ctx, orderID, func(order *entity.Order) error {
		if order.BuyerID != requesterID {
			return errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "only the buyer may pay the order")
		}
		if order.PaymentStatus != entity.PaymentStatusPending {
			return errors.Wrap(domainerrors.ErrInvalidStateTransition, "order is not awaiting payment")
		}

		order.PaymentStatus = entity.PaymentStatusPaid

		return nil
	})
}

// CompleteOrder marks a paid, in-progress order as delivered.
func (srv *orderService) CompleteOrder(ctx context.Context, orderID, requesterID uuid.UUID) (*entity.Order, error) {
	srv.log(ctx).Info("Completing order", slog.Any("orderID", orderID), slog.Any("requesterID", requesterID))

	return srv.transition(ctx, orderID, func(order *entity.Order) error {
		if order.Status != entity.OrderStatusInProgress {
			return errors.Wrap(domainerrors.ErrInvalidStateTransition, "only in-progress orders can be completed")
		}
		if order.PaymentStatus != entity.PaymentStatusPaid {
			return errors.Wrap(domainerrors.ErrInvalidStateTransition, "order must be paid before completion")
		}

		now := time.Now()
		order.Status = entity.OrderStatusCompleted
		order.DeliveredAt = &now

		return nil
	})
}

// ReturnOrder moves a completed order to RETURNED with a mandatory reason.
func (srv *orderService) ReturnOrder(ctx context.Context, orderID, requesterID uuid.UUID, reason string) (*entity.Order, error) {
	srv.log(ctx).Info("Returning order", slog.Any("orderID", orderID), slog.Any("requesterID", requesterID))

	if reason == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "return reason is required")
	}

	return srv.transition(ctx, orderID, func(order *entity.Order) error {
		if order.Status != entity.OrderStatusCompleted {
			return errors.Wrap(domainerrors.ErrInvalidStateTransition, "only completed orders can be returned")
		}

		order.Status = entity.OrderStatusReturned
		order.ReturnReason = reason

		return nil
	})
}

// CancelOrder cancels an in-progress order and returns its items to stock.
func (srv *orderService) CancelOrder(ctx context.Context, orderID, requesterID uuid.UUID) (*entity.Order, error) {
	srv.log(ctx).Info("Canceling order", slog.Any("orderID", orderID), slog.Any("requesterID", requesterID))

	var canceled *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		productRepo := repoFactory.ProductRepo()

		order, err := orderRepo.FindOrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}

		if order.BuyerID != requesterID {
			return errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "only the buyer may cancel the order")
		}
		if order.Status != entity.OrderStatusInProgress {
			return errors.Wrap(domainerrors.ErrInvalidStateTransition, "only in-progress orders can be canceled")
		}

		// Reserved units go back to stock in the same transaction.
		for _, item := range order.Items {
			if err := productRepo.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return errors.Wrap(err, "failed to restock canceled item")
			}
		}

		order.Status = entity.OrderStatusCanceled
		if err := orderRepo.UpdateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order")
		}
		canceled = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order cancellation transaction")
	}

	return canceled, nil
}

// UpdateOrderStatus is the seller-facing override. It checks that the
// requester is the seller of record and that the target status is a known
// value, then overwrites the status without consulting the fine-grained
// transition rules. Both this path and the transition operations above exist
// on purpose; the seller workflow uses this blunter one.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID, requesterID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	srv.log(ctx).Info("Seller status override", slog.Any("orderID", orderID), slog.Any("requesterID", requesterID), slog.String("status", input.Status))

	return srv.transition(ctx, orderID, func(order *entity.Order) error {
		// The requester is checked before the payload is interpreted.
		if order.SellerID != requesterID {
			return errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "only the seller may override the order status")
		}

		newStatus := entity.OrderStatus(input.Status)
		if !newStatus.IsValid() {
			return errors.Wrap(domainerrors.ErrValidationFailed, "unknown order status")
		}

		order.Status = newStatus

		return nil
	})
}

// GetOrder retrieves an order by id.
func (srv *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// GetUserOrders lists all orders placed by the user, in insertion order.
func (srv *orderService) GetUserOrders(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindOrdersByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// transition loads the order, applies the mutation and persists it in one
// transaction. The mutation callback returns the domain error when the
// requester or the current state does not allow the change.
func (srv *orderService) transition(ctx context.Context, orderID uuid.UUID, mutate func(*entity.Order) error) (*entity.Order, error) {
	var result *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindOrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}

		if err := mutate(order); err != nil {
			return err
		}

		if err := orderRepo.UpdateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order")
		}
		result = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order transition transaction")
	}

	return result, nil
}
