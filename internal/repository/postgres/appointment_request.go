package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vetlyst/directory-api/internal/model"
	"github.com/vetlyst/directory-api/internal/repository"
)

type appointmentRequestRepository struct {
	db *sqlx.DB
}

func NewAppointmentRequestRepository(db *sqlx.DB) repository.AppointmentRequestRepository {
	return &appointmentRequestRepository{db: db}
}

func (r *appointmentRequestRepository) Create(ctx context.Context, req *model.AppointmentRequest) error {
	query := `
		INSERT INTO appointment_requests (
			id, clinic_place_id, clinic_name, clinic_email,
			pet_owner_name, pet_owner_email, pet_owner_phone,
			pet_name, pet_type, preferred_date, preferred_time,
			message, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
	`
	req.ID = uuid.New()
	req.CreatedAt = time.Now()
	req.Status = model.SubmissionStatusPending

	_, err := r.db.ExecContext(ctx, query,
		req.ID,
		req.ClinicPlaceID,
		req.ClinicName,
		req.ClinicEmail,
		req.PetOwnerName,
		req.PetOwnerEmail,
		req.PetOwnerPhone,
		req.PetName,
		req.PetType,
		req.PreferredDate,
		req.PreferredTime,
		req.Message,
		req.Status,
		req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment request: %w", err)
	}
	return nil
}

func (r *appointmentRequestRepository) List(ctx context.Context) ([]*model.AppointmentRequest, error) {
	query := `
		SELECT id, clinic_place_id, clinic_name, clinic_email,
			pet_owner_name, pet_owner_email, pet_owner_phone,
			pet_name, pet_type, preferred_date, preferred_time,
			message, status, created_at
		FROM appointment_requests
		ORDER BY created_at DESC
	`
	var requests []*model.AppointmentRequest
	if err := r.db.SelectContext(ctx, &requests, query); err != nil {
		return nil, fmt.Errorf("failed to list appointment requests: %w", err)
	}
	return requests, nil
}
