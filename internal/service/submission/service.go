package submission

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/vetlyst/directory-api/internal/email"
	"github.com/vetlyst/directory-api/internal/model"
	"github.com/vetlyst/directory-api/internal/repository"
	apperrors "github.com/vetlyst/directory-api/pkg/errors"
	"github.com/vetlyst/directory-api/pkg/logger"
	"github.com/vetlyst/directory-api/pkg/metrics"
)

const notifyTimeout = 30 * time.Second

type Servicer interface {
	SubmitAppointmentRequest(ctx context.Context, req *model.AppointmentRequest) (*model.AppointmentRequest, error)
	SubmitClaim(ctx context.Context, claim *model.ClinicClaim) (*model.ClinicClaim, error)
	ListAppointmentRequests(ctx context.Context) ([]*model.AppointmentRequest, error)
	ListClaims(ctx context.Context) ([]*model.ClinicClaim, error)
}

// Service runs the submission workflow: validate, persist with status
// "pending", then notify by email. Persistence is the commit point: once the
// row is durable the operation reports success, and notification failures are
// logged without changing the outcome. Nothing here is retried; the only
// recovery path is the user resubmitting the form.
type Service struct {
	appointments repository.AppointmentRequestRepository
	claims       repository.ClaimRepository
	outbox       repository.OutboxRepository
	mailer       email.Service
	logger       *logger.Logger
	metrics      *metrics.Metrics
}

func NewService(
	appointments repository.AppointmentRequestRepository,
	claims repository.ClaimRepository,
	outbox repository.OutboxRepository,
	mailer email.Service,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *Service {
	return &Service{
		appointments: appointments,
		claims:       claims,
		outbox:       outbox,
		mailer:       mailer,
		logger:       logger,
		metrics:      metrics,
	}
}

func (s *Service) SubmitAppointmentRequest(ctx context.Context, req *model.AppointmentRequest) (*model.AppointmentRequest, error) {
	if err := validateAppointmentRequest(req); err != nil {
		s.metrics.SubmissionsFailed.WithLabelValues("appointment", "validation").Inc()
		return nil, err
	}

	if err := s.appointments.Create(ctx, req); err != nil {
		s.metrics.SubmissionsFailed.WithLabelValues("appointment", "persistence").Inc()
		return nil, apperrors.NewPersistence("failed to submit appointment request", err)
	}
	s.metrics.SubmissionsTotal.WithLabelValues("appointment").Inc()

	s.writeOutboxEvent(ctx, model.EventAppointmentRequestCreate, req)

	// The row is durable; email is dispatched off the request path and its
	// failure never reaches the caller.
	go s.notifyAppointment(req)

	return req, nil
}

func (s *Service) SubmitClaim(ctx context.Context, claim *model.ClinicClaim) (*model.ClinicClaim, error) {
	if err := validateClaim(claim); err != nil {
		s.metrics.SubmissionsFailed.WithLabelValues("claim", "validation").Inc()
		return nil, err
	}

	if err := s.claims.Create(ctx, claim); err != nil {
		s.metrics.SubmissionsFailed.WithLabelValues("claim", "persistence").Inc()
		return nil, apperrors.NewPersistence("failed to save claim request", err)
	}
	s.metrics.SubmissionsTotal.WithLabelValues("claim").Inc()

	s.writeOutboxEvent(ctx, model.EventClaimCreate, claim)

	go s.notifyClaim(claim)

	return claim, nil
}

func (s *Service) ListAppointmentRequests(ctx context.Context) ([]*model.AppointmentRequest, error) {
	return s.appointments.List(ctx)
}

func (s *Service) ListClaims(ctx context.Context) ([]*model.ClinicClaim, error) {
	return s.claims.List(ctx)
}

func (s *Service) notifyAppointment(req *model.AppointmentRequest) {
	if req.ClinicEmail == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := s.mailer.SendAppointmentNotification(ctx, req); err != nil {
		s.metrics.EmailsFailed.WithLabelValues("appointment_notification").Inc()
		notifyErr := apperrors.NewNotification("failed to send appointment notification", err)
		s.logger.Error(notifyErr, "email dispatch failed",
			"request_id", req.ID.String(), "clinic_email", req.ClinicEmail)
		return
	}
	s.metrics.EmailsSent.WithLabelValues("appointment_notification").Inc()
}

func (s *Service) notifyClaim(claim *model.ClinicClaim) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := s.mailer.SendClaimNotification(ctx, claim); err != nil {
		s.metrics.EmailsFailed.WithLabelValues("claim_notification").Inc()
		notifyErr := apperrors.NewNotification("failed to send claim notification", err)
		s.logger.Error(notifyErr, "email dispatch failed", "claim_id", claim.ID.String())
	} else {
		s.metrics.EmailsSent.WithLabelValues("claim_notification").Inc()
	}

	if err := s.mailer.SendClaimConfirmation(ctx, claim); err != nil {
		s.metrics.EmailsFailed.WithLabelValues("claim_confirmation").Inc()
		notifyErr := apperrors.NewNotification("failed to send claim confirmation", err)
		s.logger.Error(notifyErr, "email dispatch failed",
			"claim_id", claim.ID.String(), "claimant_email", claim.ClaimantEmail)
		return
	}
	s.metrics.EmailsSent.WithLabelValues("claim_confirmation").Inc()
}

// writeOutboxEvent records the submission for downstream consumers. A failed
// write is logged and ignored: the event trail is best-effort and must not
// undo a committed submission.
func (s *Service) writeOutboxEvent(ctx context.Context, eventType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error(err, "failed to marshal outbox payload", "event_type", eventType)
		return
	}
	if err := s.outbox.Create(ctx, &model.OutboxEvent{
		EventType: eventType,
		Payload:   data,
	}); err != nil {
		s.logger.Error(err, "failed to create outbox event", "event_type", eventType)
	}
}

// Validation is a presence check only: required fields must be non-blank
// after trimming. Email and phone syntax are deliberately not verified.
func validateAppointmentRequest(req *model.AppointmentRequest) error {
	if blank(req.PetOwnerName) || blank(req.PetOwnerEmail) || blank(req.PetOwnerPhone) {
		return apperrors.NewValidation("missing required fields")
	}
	return nil
}

func validateClaim(claim *model.ClinicClaim) error {
	switch {
	case blank(claim.ClinicPlaceID),
		blank(claim.ClinicName),
		blank(claim.ClaimantName),
		blank(claim.ClaimantEmail),
		blank(claim.ClaimantRole),
		blank(claim.VerificationMethod):
		return apperrors.NewValidation("missing required fields")
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
