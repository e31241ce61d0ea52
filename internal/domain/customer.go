package domain

import "time"

// Customer represents a salon customer. A customer either belongs to a
// registered user (UserID set) or is a guest identified by email.
type Customer struct {
	ID        int64
	UserID    *int64
	Name      string
	Email     string
	Phone     string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsGuest returns true if the customer has no linked account
func (c *Customer) IsGuest() bool {
	return c.UserID == nil
}
