package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

type ServiceType string

const (
	ServiceStandard ServiceType = "Standard"
	ServiceExpress  ServiceType = "Express"
)

type Payment struct {
	ID            int64         `json:"id"`
	StudioID      int64         `json:"studioId"`
	TransactionID string        `json:"transactionId"`
	Amount        float64       `json:"amount"`
	Date          time.Time     `json:"date"`
	Status        PaymentStatus `json:"status"`
	ServiceType   ServiceType   `json:"serviceType"`
	CustomerName  string        `json:"customerName,omitempty"`
	DeliveredDate *time.Time    `json:"deliveredDate,omitempty"`
	Reference     string        `json:"reference,omitempty"`
	PaidAt        *time.Time    `json:"paidAt,omitempty"`
}

func (p Payment) EntityID() int64 { return p.ID }

func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentCompleted || s == PaymentFailed
}
