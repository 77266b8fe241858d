package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vetlyst/directory-api/internal/model"
	"github.com/vetlyst/directory-api/internal/repository"
	apperrors "github.com/vetlyst/directory-api/pkg/errors"
)

const clinicColumns = `
	id, place_id, name, website, phone, address, city, zip, state,
	clinic_type, species_treated, latitude, longitude, rating, reviews,
	working_hours, listing_tier, email, created_at, updated_at
`

type clinicRepository struct {
	db *sqlx.DB
}

func NewClinicRepository(db *sqlx.DB) repository.ClinicRepository {
	return &clinicRepository{db: db}
}

func (r *clinicRepository) Create(ctx context.Context, clinic *model.Clinic) error {
	query := `
		INSERT INTO clinics (` + clinicColumns + `
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
	`
	clinic.ID = uuid.New()
	clinic.CreatedAt = time.Now()
	clinic.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		clinic.ID,
		clinic.PlaceID,
		clinic.Name,
		clinic.Website,
		clinic.Phone,
		clinic.Address,
		clinic.City,
		clinic.Zip,
		clinic.State,
		clinic.ClinicType,
		clinic.SpeciesTreated,
		clinic.Latitude,
		clinic.Longitude,
		clinic.Rating,
		clinic.Reviews,
		clinic.WorkingHours,
		clinic.ListingTier,
		clinic.Email,
		clinic.CreatedAt,
		clinic.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create clinic: %w", err)
	}
	return nil
}

func (r *clinicRepository) List(ctx context.Context, filter model.ClinicFilter) ([]*model.Clinic, error) {
	query := `
		SELECT ` + clinicColumns + `
		FROM clinics
		WHERE (COALESCE($1, '') = '' OR name ILIKE '%' || $1 || '%')
		AND (COALESCE($2, '') = '' OR clinic_type ILIKE '%' || $2 || '%')
		AND (COALESCE($3, '') = '' OR city = $3)
	`
	if filter.SortBy == "rating" {
		query += ` ORDER BY rating DESC NULLS LAST, name ASC`
	} else {
		query += ` ORDER BY name ASC`
	}

	var clinics []*model.Clinic
	err := r.db.SelectContext(ctx, &clinics, query, filter.Search, filter.ClinicType, filter.City)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinics: %w", err)
	}
	return clinics, nil
}

func (r *clinicRepository) ListCities(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT city
		FROM clinics
		WHERE city IS NOT NULL AND city <> ''
		ORDER BY city ASC
	`
	var cities []string
	if err := r.db.SelectContext(ctx, &cities, query); err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}

// LIKE treats _ and % as wildcards. Place IDs routinely contain underscores,
// so the prefix must be escaped to match literally.
var likePatternEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *clinicRepository) FindByPlaceIDPrefix(ctx context.Context, prefix string) (*model.Clinic, error) {
	query := `
		SELECT ` + clinicColumns + `
		FROM clinics
		WHERE place_id LIKE $1 || '%'
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`
	var clinic model.Clinic
	err := r.db.GetContext(ctx, &clinic, query, likePatternEscaper.Replace(prefix))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("clinic", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve clinic by place ID prefix: %w", err)
	}
	return &clinic, nil
}

func (r *clinicRepository) Truncate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `TRUNCATE clinics`); err != nil {
		return fmt.Errorf("failed to truncate clinics: %w", err)
	}
	return nil
}
