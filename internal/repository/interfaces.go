package repository

import (
	"context"

	"github.com/vetlyst/directory-api/internal/model"
)

// All repository interfaces in one file
type (
	// ClinicRepository reads the imported clinic listings. The API only adds
	// rows through the bulk importer; end-user actions never mutate them.
	ClinicRepository interface {
		Create(ctx context.Context, clinic *model.Clinic) error
		List(ctx context.Context, filter model.ClinicFilter) ([]*model.Clinic, error)
		ListCities(ctx context.Context) ([]string, error)
		// FindByPlaceIDPrefix resolves a truncated place ID from a slug. The
		// match is a prefix match ordered by (created_at, id); the first row
		// wins so multi-match resolution stays deterministic.
		FindByPlaceIDPrefix(ctx context.Context, prefix string) (*model.Clinic, error)
		Truncate(ctx context.Context) error
	}

	AppointmentRequestRepository interface {
		Create(ctx context.Context, req *model.AppointmentRequest) error
		List(ctx context.Context) ([]*model.AppointmentRequest, error)
	}

	ClaimRepository interface {
		Create(ctx context.Context, claim *model.ClinicClaim) error
		List(ctx context.Context) ([]*model.ClinicClaim, error)
	}

	OutboxRepository interface {
		Create(ctx context.Context, event *model.OutboxEvent) error
		GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
		MarkProcessed(ctx context.Context, event *model.OutboxEvent) error
		MarkFailed(ctx context.Context, event *model.OutboxEvent, cause error) error
	}
)
