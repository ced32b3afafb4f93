package vo

import "time"

type PendingRequest struct {
	RequestID   string    `json:"request_id"`
	ClientID    string    `json:"client_id"`
	OwnerID     string    `json:"owner_id"`
	ServiceName string    `json:"service_name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

type PendingRequestList struct {
	Requests []PendingRequest `json:"requests"`
	Count    int              `json:"count"`
}
