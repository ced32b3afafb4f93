package vo

import "time"

type RequestCreated struct {
	RequestID   string    `json:"request_id"`
	ClientID    string    `json:"client_id"`
	OwnerID     string    `json:"owner_id"`
	ServiceName string    `json:"service_name"`
	Price       string    `json:"price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
