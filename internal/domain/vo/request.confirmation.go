package vo

import "time"

type RequestConfirmation struct {
	RequestID   string    `json:"request_id"`
	OwnerID     string    `json:"owner_id"`
	Status      string    `json:"status"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}
