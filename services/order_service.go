package services

import (
	"context"
	"sort"
	"time"

	"buyfish/models"
	"buyfish/shopapi"
)

type OrderService struct {
	client *shopapi.Client
}

func NewOrderService(client *shopapi.Client) *OrderService {
	return &OrderService{client: client}
}

// PaidOrders returns the user's orders with completed payment, newest first.
func (s *OrderService) PaidOrders(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := s.client.ListOrders(ctx, userID)
	if err != nil {
		return nil, err
	}

	paid := []models.Order{}
	for _, order := range orders {
		if order.PaymentStatus == "paid" {
			paid = append(paid, order)
		}
	}

	sort.SliceStable(paid, func(i, j int) bool {
		return orderTime(paid[i]).After(orderTime(paid[j]))
	})
	return paid, nil
}

func orderTime(order models.Order) time.Time {
	t, err := time.Parse(time.RFC3339, order.OrderDate)
	if err != nil {
		return time.Time{}
	}
	return t
}
