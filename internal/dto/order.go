package dto

import (
	"time"

	"driwich/internal/domain"
)

// CreateOrderResult is what the create-order flow reports back. The order
// exists even when printing failed.
type CreateOrderResult struct {
	Order      domain.Order
	Printed    bool
	PrintError string
}

type OrderItemDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
}

type OrderDTO struct {
	ID          uint           `json:"id"`
	OrderNumber uint           `json:"orderNumber"`
	Items       []OrderItemDTO `json:"items"`
	Status      string         `json:"status"`
	TotalAmount string         `json:"totalAmount"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type CreateOrderResponse struct {
	TraceID    string    `json:"traceId"`
	Order      OrderDTO  `json:"order"`
	Printed    bool      `json:"printed"`
	PrintError string    `json:"printError,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type ListOrdersResponse struct {
	Orders []OrderDTO `json:"orders"`
}

type PrintOrderResponse struct {
	TraceID     string    `json:"traceId"`
	OrderID     uint      `json:"orderId"`
	OrderNumber uint      `json:"orderNumber"`
	Printed     bool      `json:"printed"`
	Timestamp   time.Time `json:"timestamp"`
}

func ToOrderItemDTOs(items []domain.MenuItem) []OrderItemDTO {
	out := make([]OrderItemDTO, len(items))
	for i, item := range items {
		out[i] = OrderItemDTO{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price.StringFixed(2),
			Category: string(item.Category),
		}
	}
	return out
}

func ToOrderDTO(order domain.Order) OrderDTO {
	return OrderDTO{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		Items:       ToOrderItemDTOs(order.Items),
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount.StringFixed(2),
		CreatedAt:   order.CreatedAt,
	}
}
