package request

import (
	"github.com/google/uuid"
)

type MarkNotificationReadRequest struct {
	DonorID uuid.UUID `json:"donor_id" binding:"required"`
}
