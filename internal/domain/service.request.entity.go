package domain

import "time"

// RequestStatus is the lifecycle state of a service request. The only
// transition this system performs is StatusPending -> StatusConfirmed.
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusConfirmed RequestStatus = "confirmed"
)

// ServiceRequest is a discounted-service redemption request raised by an
// enrolled employee against an accredited provider.
type ServiceRequest struct {
	ID          string
	ClientID    string
	OwnerID     string
	ServiceName string
	Description string
	Price       string
	Status      RequestStatus
	CreatedAt   time.Time
}

// IsPending reports whether the request still awaits provider action.
func (r ServiceRequest) IsPending() bool {
	return r.Status == StatusPending
}
