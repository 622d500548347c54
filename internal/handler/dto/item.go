package dto

import (
	"time"

	"github.com/wearcast/wearcast/internal/model"
)

// CreateItemRequest represents the request body for creating an item.
type CreateItemRequest struct {
	Name     string `json:"name"`
	Weather  string `json:"weather"`
	ImageURL string `json:"imageUrl"`
}

// ItemResponse represents a wearable item in API responses.
type ItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Weather   string    `json:"weather"`
	ImageURL  string    `json:"imageUrl"`
	OwnerID   string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemListResponse wraps the public item feed.
type ItemListResponse struct {
	Data []ItemResponse `json:"data"`
}

// MessageResponse carries a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToItemResponse converts a model.Item to its API representation.
func ToItemResponse(item *model.Item) ItemResponse {
	likes := item.Likes
	if likes == nil {
		likes = []string{}
	}
	return ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Weather:   string(item.Weather),
		ImageURL:  item.ImageURL,
		OwnerID:   item.OwnerID,
		Likes:     likes,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// ToItemListResponse converts a slice of items to the feed shape.
func ToItemListResponse(items []*model.Item) ItemListResponse {
	data := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		data = append(data, ToItemResponse(item))
	}
	return ItemListResponse{Data: data}
}
