package domain

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// OnboardRequest is a studio owner's application to join the marketplace.
type OnboardRequest struct {
	ID           int64         `json:"id"`
	StudioName   string        `json:"studioName"`
	OwnerName    string        `json:"ownerName"`
	MobileNumber string        `json:"mobileNumber"`
	EmailID      string        `json:"emailId"`
	RequestDate  time.Time     `json:"requestDate"`
	Status       RequestStatus `json:"status"`
}

func (r OnboardRequest) EntityID() int64 { return r.ID }

func (s RequestStatus) Valid() bool {
	return s == RequestPending || s == RequestApproved || s == RequestRejected
}
