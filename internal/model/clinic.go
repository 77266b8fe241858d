package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/vetlyst/directory-api/pkg/slug"
)

// Clinic is an imported directory listing. Rows are owned by the bulk import
// process; the API never mutates or deletes them. Identity is PlaceID, the
// stable key from the external data provider.
type Clinic struct {
	ID             uuid.UUID `db:"id" json:"id"`
	PlaceID        string    `db:"place_id" json:"place_id"`
	Name           string    `db:"name" json:"name"`
	Website        string    `db:"website" json:"website,omitempty"`
	Phone          string    `db:"phone" json:"phone,omitempty"`
	Address        string    `db:"address" json:"address,omitempty"`
	City           string    `db:"city" json:"city,omitempty"`
	Zip            string    `db:"zip" json:"zip,omitempty"`
	State          string    `db:"state" json:"state,omitempty"`
	ClinicType     string    `db:"clinic_type" json:"clinic_type,omitempty"`
	SpeciesTreated string    `db:"species_treated" json:"species_treated,omitempty"`
	Latitude       *float64  `db:"latitude" json:"latitude,omitempty"`
	Longitude      *float64  `db:"longitude" json:"longitude,omitempty"`
	Rating         *float64  `db:"rating" json:"rating,omitempty"`
	Reviews        *int      `db:"reviews" json:"reviews,omitempty"`
	WorkingHours   string    `db:"working_hours" json:"working_hours,omitempty"`
	ListingTier    string    `db:"listing_tier" json:"listing_tier,omitempty"`
	Email          string    `db:"email" json:"email,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Featured reports whether the clinic carries a paid listing tier.
func (c *Clinic) Featured() bool {
	return c.ListingTier != ""
}

// Slug returns the derived URL path segment. Never persisted.
func (c *Clinic) Slug() string {
	return slug.Make(c.Name, c.PlaceID)
}

// ClinicFilter narrows ListClinics. Search and ClinicType are
// case-insensitive substring matches; City is an exact match.
type ClinicFilter struct {
	Search     string `form:"search"`
	ClinicType string `form:"clinicType"`
	City       string `form:"city"`
	SortBy     string `form:"sortBy"`
}
