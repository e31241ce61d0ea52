package domain

import "time"

// Groomer represents a member of the grooming staff
type Groomer struct {
	ID           int64
	Name         string
	Bio          string
	Specialties  *string
	IsActive     bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
