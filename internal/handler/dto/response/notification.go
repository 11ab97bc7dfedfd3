package response

import (
	"encoding/json"
	"time"

	"donorhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID       `json:"id"`
	DonorID   uuid.UUID       `json:"donorId"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Payload   json.RawMessage `json:"payload"`
	ReadAt    *time.Time      `json:"readAt,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type NotificationListResponse struct {
	Items      []*NotificationResponse `json:"items"`
	NextCursor *string                 `json:"nextCursor,omitempty"`
}

func FromNotificationList(items []*queries.NotificationView, next *queries.Cursor) *NotificationListResponse {
	resp := &NotificationListResponse{
		Items: make([]*NotificationResponse, len(items)),
	}
	for i, item := range items {
		resp.Items[i] = &NotificationResponse{
			ID:        item.ID,
			DonorID:   item.DonorID,
			Type:      item.Type,
			Title:     item.Title,
			Message:   item.Message,
			Payload:   item.Payload,
			ReadAt:    item.ReadAt,
			CreatedAt: item.CreatedAt,
		}
	}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}
