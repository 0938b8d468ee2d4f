package dto

import "driwich/internal/domain"

type AddSelectionItemRequest struct {
	ProductID int `json:"productId"`
}

type SelectionResponse struct {
	Items []OrderItemDTO `json:"items"`
	Count int            `json:"count"`
	Total string         `json:"total"`
}

func ToSelectionResponse(items []domain.MenuItem) SelectionResponse {
	return SelectionResponse{
		Items: ToOrderItemDTOs(items),
		Count: len(items),
		Total: domain.SumPrices(items).StringFixed(2),
	}
}
