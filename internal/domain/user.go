package domain

import "time"

// Customer is a marketplace end user. The console never mutates customers.
type Customer struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Mobile          string    `json:"mobile"`
	Email           string    `json:"email"`
	Location        string    `json:"location"`
	Device          string    `json:"device"`
	OrdersCount     int       `json:"ordersCount"`
	TotalOrderValue float64   `json:"totalOrderValue"`
	LastOrderDate   time.Time `json:"lastOrderDate"`
}

func (c Customer) EntityID() int64 { return c.ID }
