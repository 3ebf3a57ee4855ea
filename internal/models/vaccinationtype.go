package models

import "time"

// VaccinationType is a catalog record. Title is immutable after creation;
// only the description can be edited afterwards.
type VaccinationType struct {
	ID          string
	Title       string
	Description string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
