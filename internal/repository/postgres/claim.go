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

type claimRepository struct {
	db *sqlx.DB
}

func NewClaimRepository(db *sqlx.DB) repository.ClaimRepository {
	return &claimRepository{db: db}
}

func (r *claimRepository) Create(ctx context.Context, claim *model.ClinicClaim) error {
	query := `
		INSERT INTO clinic_claims (
			id, clinic_place_id, clinic_name,
			claimant_name, claimant_email, claimant_phone, claimant_role,
			verification_method, verification_notes, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
	`
	claim.ID = uuid.New()
	claim.CreatedAt = time.Now()
	claim.Status = model.SubmissionStatusPending

	_, err := r.db.ExecContext(ctx, query,
		claim.ID,
		claim.ClinicPlaceID,
		claim.ClinicName,
		claim.ClaimantName,
		claim.ClaimantEmail,
		claim.ClaimantPhone,
		claim.ClaimantRole,
		claim.VerificationMethod,
		claim.VerificationNotes,
		claim.Status,
		claim.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create clinic claim: %w", err)
	}
	return nil
}

func (r *claimRepository) List(ctx context.Context) ([]*model.ClinicClaim, error) {
	query := `
		SELECT id, clinic_place_id, clinic_name,
			claimant_name, claimant_email, claimant_phone, claimant_role,
			verification_method, verification_notes, status, created_at
		FROM clinic_claims
		ORDER BY created_at DESC
	`
	var claims []*model.ClinicClaim
	if err := r.db.SelectContext(ctx, &claims, query); err != nil {
		return nil, fmt.Errorf("failed to list clinic claims: %w", err)
	}
	return claims, nil
}
