package domain

import "time"

// SiteConfig holds salon-wide settings editable by the administrator.
// Only one row is active at a time; when none is, the defaults from
// constants.go apply.
type SiteConfig struct {
	ID                           int64
	BusinessName                 string
	MaxBookingsPerCustomerPerDay int
	IsActive                     bool
	CreatedAt                    time.Time
	UpdatedAt                    time.Time
}
