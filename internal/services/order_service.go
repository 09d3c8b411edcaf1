package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"storefront/internal/dto"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/results"
	"storefront/pkg/rabbitmq"
)

// OrderEventPublisher publishes order lifecycle events. Publishing is
// best-effort; failures are logged and never fail the request.
type OrderEventPublisher interface {
	PublishOrderEvent(event rabbitmq.OrderEvent) error
}

// OrderService handles checkout and the order state machine. Orders are
// created from the caller's cart with every price frozen, reachable only in
// the pending state; cancelled is the sole and terminal transition.
type OrderService struct {
	repos     *repositories.Repositories
	uow       repositories.UnitOfWork
	publisher OrderEventPublisher // may be nil
}

// NewOrderService creates a new OrderService.
func NewOrderService(repos *repositories.Repositories, uow repositories.UnitOfWork, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		repos:     repos,
		uow:       uow,
		publisher: publisher,
	}
}

// CreateFromCart checks out the caller's cart: every line is snapshotted into
// an order item, the total is frozen, and the cart is cleared in the same
// transaction that stores the order.
func (s *OrderService) CreateFromCart(ctx context.Context, userID uint) (results.Result[dto.OrderResponse], error) {
	cart, err := s.repos.Carts.GetByUserIDWithItems(userID)
	if err != nil {
		return results.Result[dto.OrderResponse]{}, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return results.NotFoundResult[dto.OrderResponse](MsgEmptyCart), nil
	}

	order := &models.Order{
		UserID:      userID,
		OrderNumber: generateOrderNumber(),
		Status:      models.OrderStatusPending,
		TotalAmount: cart.TotalAmount(),
		OrderDate:   time.Now().UTC(),
	}
	for i := range cart.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: cart.Items[i].ProductID,
			Quantity:  cart.Items[i].Quantity,
			UnitPrice: cart.Items[i].UnitPrice,
		})
	}

	err = s.uow.Execute(ctx, func(r *repositories.Repositories) error {
		if err := r.Orders.Add(order); err != nil {
			return err
		}
		return r.Carts.ClearItems(cart.ID)
	})
	if err != nil {
		return results.Result[dto.OrderResponse]{}, err
	}

	// Attach product info from the cart lines for the response only; the
	// stored order items carry just the reference ids.
	for i := range order.Items {
		order.Items[i].Product = cart.Items[i].Product
	}

	s.publish("order.created", order)
	return results.Ok(mapOrder(order)), nil
}

// GetByID returns an order, refusing access to orders of other users.
func (s *OrderService) GetByID(ctx context.Context, orderID, userID uint) (results.Result[dto.OrderResponse], error) {
	order, err := s.repos.Orders.GetByIDWithItems(orderID)
	if err != nil {
		return results.Result[dto.OrderResponse]{}, err
	}
	if order == nil {
		return results.NotFoundResult[dto.OrderResponse](MsgOrderNotFound), nil
	}
	if order.UserID != userID {
		return results.UnauthorizedResult[dto.OrderResponse](MsgAccessDenied), nil
	}
	return results.Ok(mapOrder(order)), nil
}

// GetMyOrders returns one page of the caller's own orders.
func (s *OrderService) GetMyOrders(ctx context.Context, userID uint, p results.PaginationParams) (results.Result[results.Paged[dto.OrderResponse]], error) {
	orders, total, err := s.repos.Orders.GetByUserIDPaged(userID, p)
	if err != nil {
		return results.Result[results.Paged[dto.OrderResponse]]{}, err
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, mapOrder(&orders[i]))
	}
	return results.Ok(results.NewPaged(items, p, total)), nil
}

// CancelOrder transitions a pending order to cancelled. Any other state is
// not cancellable.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, userID uint) (results.Result[dto.OrderResponse], error) {
	order, err := s.repos.Orders.GetByIDWithItems(orderID)
	if err != nil {
		return results.Result[dto.OrderResponse]{}, err
	}
	if order == nil {
		return results.NotFoundResult[dto.OrderResponse](MsgOrderNotFound), nil
	}
	if order.UserID != userID {
		return results.UnauthorizedResult[dto.OrderResponse](MsgAccessDenied), nil
	}
	if order.Status != models.OrderStatusPending {
		return results.NotFoundResult[dto.OrderResponse](MsgOnlyPendingOrders), nil
	}

	err = s.uow.Execute(ctx, func(r *repositories.Repositories) error {
		return r.Orders.UpdateStatus(order.ID, models.OrderStatusCancelled)
	})
	if err != nil {
		return results.Result[dto.OrderResponse]{}, err
	}

	order.Status = models.OrderStatusCancelled
	s.publish("order.cancelled", order)
	return results.Ok(mapOrder(order)), nil
}

func (s *OrderService) publish(event string, order *models.Order) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishOrderEvent(rabbitmq.OrderEvent{
		Event:       event,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
	})
	if err != nil {
		log.Printf("Warning: failed to publish %s for order %s: %v", event, order.OrderNumber, err)
	}
}

// generateOrderNumber keeps a human-readable UTC timestamp prefix and relies
// on the UUID suffix for uniqueness under concurrent checkouts.
func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102150405"), uuid.NewString())
}

func mapOrder(order *models.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]

		name := MsgProductUnavailable
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, dto.OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal(),
		})
	}

	return dto.OrderResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		OrderDate:   order.OrderDate,
		Items:       items,
	}
}
