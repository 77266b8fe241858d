package model

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus is the lifecycle status of a user submission. The workflow
// only ever writes "pending"; later transitions are an administrative concern
// outside this service.
type SubmissionStatus string

const (
	SubmissionStatusPending SubmissionStatus = "pending"
)

// AppointmentRequest is a pet owner's request for an appointment at a clinic.
// Clinic name and email are denormalized at submission time so the row stays
// interpretable without a join back to the clinics table.
type AppointmentRequest struct {
	ID            uuid.UUID        `db:"id" json:"id"`
	ClinicPlaceID string           `db:"clinic_place_id" json:"clinic_place_id"`
	ClinicName    string           `db:"clinic_name" json:"clinic_name"`
	ClinicEmail   string           `db:"clinic_email" json:"clinic_email,omitempty"`
	PetOwnerName  string           `db:"pet_owner_name" json:"pet_owner_name"`
	PetOwnerEmail string           `db:"pet_owner_email" json:"pet_owner_email"`
	PetOwnerPhone string           `db:"pet_owner_phone" json:"pet_owner_phone"`
	PetName       string           `db:"pet_name" json:"pet_name,omitempty"`
	PetType       string           `db:"pet_type" json:"pet_type,omitempty"`
	PreferredDate string           `db:"preferred_date" json:"preferred_date,omitempty"`
	PreferredTime string           `db:"preferred_time" json:"preferred_time,omitempty"`
	Message       string           `db:"message" json:"message,omitempty"`
	Status        SubmissionStatus `db:"status" json:"status"`
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
}

// ClinicClaim is a request by clinic staff to take over a listing.
type ClinicClaim struct {
	ID                 uuid.UUID        `db:"id" json:"id"`
	ClinicPlaceID      string           `db:"clinic_place_id" json:"clinic_place_id"`
	ClinicName         string           `db:"clinic_name" json:"clinic_name"`
	ClaimantName       string           `db:"claimant_name" json:"claimant_name"`
	ClaimantEmail      string           `db:"claimant_email" json:"claimant_email"`
	ClaimantPhone      string           `db:"claimant_phone" json:"claimant_phone,omitempty"`
	ClaimantRole       string           `db:"claimant_role" json:"claimant_role"`
	VerificationMethod string           `db:"verification_method" json:"verification_method"`
	VerificationNotes  string           `db:"verification_notes" json:"verification_notes,omitempty"`
	Status             SubmissionStatus `db:"status" json:"status"`
	CreatedAt          time.Time        `db:"created_at" json:"created_at"`
}
