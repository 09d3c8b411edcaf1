package services

import (
	"context"

	"storefront/internal/dto"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/results"
)

// CartService handles the caller's shopping cart. A missing cart is a valid
// empty state for reads and is created lazily on the first add. Each mutation
// commits through one unit of work; concurrent mutations of the same cart
// resolve last-write-wins.
type CartService struct {
	repos *repositories.Repositories
	uow   repositories.UnitOfWork
}

// NewCartService creates a new CartService.
func NewCartService(repos *repositories.Repositories, uow repositories.UnitOfWork) *CartService {
	return &CartService{repos: repos, uow: uow}
}

// GetMyCart returns the caller's cart. A user without a cart gets an empty
// response, never NotFound.
func (s *CartService) GetMyCart(ctx context.Context, userID uint) (results.Result[dto.CartResponse], error) {
	cart, err := s.repos.Carts.GetByUserIDWithItems(userID)
	if err != nil {
		return results.Result[dto.CartResponse]{}, err
	}
	if cart == nil {
		return results.Ok(emptyCartResponse()), nil
	}
	return results.Ok(mapCart(cart)), nil
}

// AddItem puts a quantity of a product into the cart. An existing line for
// the product is incremented; a new line freezes the product's current price
// as its unit price.
func (s *CartService) AddItem(ctx context.Context, userID uint, req dto.AddToCartRequest) (results.Result[dto.CartResponse], error) {
	product, err := s.repos.Products.GetByID(req.ProductID)
	if err != nil {
		return results.Result[dto.CartResponse]{}, err
	}
	if product == nil {
		return results.NotFoundResult[dto.CartResponse](MsgProductNotFound), nil
	}

	err = s.uow.Execute(ctx, func(r *repositories.Repositories) error {
		cart, err := r.Carts.GetByUserIDWithItems(userID)
		if err != nil {
			return err
		}
		if cart == nil {
			cart = &models.Cart{UserID: userID}
			if err := r.Carts.Add(cart); err != nil {
				return err
			}
		}

		if existing := cart.FindItemByProduct(product.ID); existing != nil {
			existing.Quantity += req.Quantity
			return r.Carts.UpdateItem(existing)
		}

		item := &models.CartItem{
			CartID:    cart.ID,
			ProductID: product.ID,
			Quantity:  req.Quantity,
			UnitPrice: product.Price,
		}
		return r.Carts.AddItem(item)
	})
	if err != nil {
		return results.Result[dto.CartResponse]{}, err
	}

	return s.reloadCart(userID)
}

// UpdateItemQuantity sets a line's quantity to an absolute value.
func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, itemID uint, quantity int) (results.Result[dto.CartResponse], error) {
	cart, err := s.repos.Carts.GetByUserIDWithItems(userID)
	if err != nil {
		return results.Result[dto.CartResponse]{}, err
	}
	if cart == nil {
		return results.NotFoundResult[dto.CartResponse](MsgCartNotFound), nil
	}

	item := cart.FindItem(itemID)
	if item == nil {
		return results.NotFoundResult[dto.CartResponse](MsgCartItemNotFound), nil
	}

	item.Quantity = quantity
	line := *item
	line.Product = nil
	err = s.uow.Execute(ctx, func(r *repositories.Repositories) error {
		return r.Carts.UpdateItem(&line)
	})
	if err != nil {
		return results.Result[dto.CartResponse]{}, err
	}

	return results.Ok(mapCart(cart)), nil
}

// RemoveItem deletes one line from the cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) (results.Result[string], error) {
	cart, err := s.repos.Carts.GetByUserIDWithItems(userID)
	if err != nil {
		return results.Result[string]{}, err
	}
	if cart == nil {
		return results.NotFoundResult[string](MsgCartNotFound), nil
	}
	if cart.FindItem(itemID) == nil {
		return results.NotFoundResult[string](MsgCartItemNotFound), nil
	}

	err = s.uow.Execute(ctx, func(r *repositories.Repositories) error {
		return r.Carts.RemoveItem(itemID)
	})
	if err != nil {
		return results.Result[string]{}, err
	}
	return results.Ok(MsgItemRemoved), nil
}

// ClearCart empties every line of the cart.
func (s *CartService) ClearCart(ctx context.Context, userID uint) (results.Result[string], error) {
	cart, err := s.repos.Carts.GetByUserIDWithItems(userID)
	if err != nil {
		return results.Result[string]{}, err
	}
	if cart == nil {
		return results.NotFoundResult[string](MsgCartNotFound), nil
	}

	err = s.uow.Execute(ctx, func(r *repositories.Repositories) error {
		return r.Carts.ClearItems(cart.ID)
	})
	if err != nil {
		return results.Result[string]{}, err
	}
	return results.Ok(MsgCartCleared), nil
}

// reloadCart re-reads the committed cart so the response reflects stored ids.
func (s *CartService) reloadCart(userID uint) (results.Result[dto.CartResponse], error) {
	cart, err := s.repos.Carts.GetByUserIDWithItems(userID)
	if err != nil {
		return results.Result[dto.CartResponse]{}, err
	}
	if cart == nil {
		return results.Ok(emptyCartResponse()), nil
	}
	return results.Ok(mapCart(cart)), nil
}

func emptyCartResponse() dto.CartResponse {
	return dto.CartResponse{Items: []dto.CartItemResponse{}}
}

// mapCart builds the cart response. YourPrice is the frozen unit price;
// CurrentPrice and Savings reflect the product's price drift since the item
// was added.
func mapCart(cart *models.Cart) dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(cart.Items))
	var totalSavings float64
	for i := range cart.Items {
		item := &cart.Items[i]

		name := MsgProductUnavailable
		currentPrice := item.UnitPrice
		if item.Product != nil {
			name = item.Product.Name
			currentPrice = item.Product.Price
		}

		savings := currentPrice - item.UnitPrice
		totalSavings += savings * float64(item.Quantity)
		items = append(items, dto.CartItemResponse{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductName:  name,
			Quantity:     item.Quantity,
			YourPrice:    item.UnitPrice,
			CurrentPrice: currentPrice,
			Savings:      savings,
			Subtotal:     item.Subtotal(),
		})
	}

	return dto.CartResponse{
		ID:           cart.ID,
		Items:        items,
		TotalAmount:  cart.TotalAmount(),
		TotalSavings: totalSavings,
	}
}
