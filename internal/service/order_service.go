package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Holly45vd/products/internal/catalog"
	"github.com/Holly45vd/products/internal/model"
	"github.com/Holly45vd/products/internal/repository"
)

// maxLineQty caps a single line item quantity.
const maxLineQty = 9999

type orderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	logger   zerolog.Logger
	now      func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orders:   orders,
		products: products,
		logger:   logger.With().Str("component", "order_service").Logger(),
		now:      time.Now,
	}
}

func (s *orderService) Create(ctx context.Context, userID string, req *model.OrderRequest) (*model.Order, error) {
	date := strings.TrimSpace(req.OrderDate)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidOrderDate, req.OrderDate)
	}

	ids := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		if item.ProductID != "" {
			ids = append(ids, item.ProductID)
		}
	}
	if len(ids) == 0 {
		return nil, model.ErrOrderEmpty
	}

	products, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var (
		lines      []model.OrderLine
		totalQty   int
		totalPrice int64
	)
	for _, item := range req.Items {
		p, ok := byID[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", model.ErrProductNotFound, item.ProductID)
		}

		qty := clampQty(item.Qty.Int64())
		if catalog.IsRestockPending(p) {
			qty = 0
		}
		if qty <= 0 {
			continue
		}

		lines = append(lines, model.OrderLine{
			ProductID:   p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Qty:         qty,
			Subtotal:    p.Price * int64(qty),
			ImageURL:    p.ImageURL,
			ProductCode: p.ProductCode,
			CategoryL1:  p.CategoryL1,
			CategoryL2:  p.CategoryL2,
			Link:        p.Link,
		})
		totalQty += qty
		totalPrice += p.Price * int64(qty)
	}
	if len(lines) == 0 {
		return nil, model.ErrOrderEmpty
	}

	discount := req.Discount.Int64()
	if discount < 0 {
		discount = 0
	}
	finalTotal := totalPrice - discount
	if finalTotal < 0 {
		finalTotal = 0
	}

	order := &model.Order{
		ID:             uuid.New().String(),
		UserID:         userID,
		OrderName:      strings.TrimSpace(req.OrderName),
		OrderDate:      date,
		TotalQty:       totalQty,
		TotalPrice:     totalPrice,
		DiscountAmount: discount,
		FinalTotal:     finalTotal,
		Items:          lines,
		CreatedAt:      s.now().UTC(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("user_id", userID).
		Int("lines", len(lines)).
		Int64("final_total", finalTotal).
		Msg("order created")

	return order, nil
}

func (s *orderService) List(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) Get(ctx context.Context, userID, orderID string) (*model.Order, error) {
	order, err := s.orders.GetByID(ctx, userID, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) Delete(ctx context.Context, userID, orderID string) error {
	if err := s.orders.Delete(ctx, userID, orderID); err != nil {
		return err
	}
	return nil
}

func clampQty(q int64) int {
	if q < 0 {
		return 0
	}
	if q > maxLineQty {
		return maxLineQty
	}
	return int(q)
}
