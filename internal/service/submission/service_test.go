package submission

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetlyst/directory-api/internal/model"
	apperrors "github.com/vetlyst/directory-api/pkg/errors"
	"github.com/vetlyst/directory-api/pkg/logger"
	"github.com/vetlyst/directory-api/pkg/metrics"
)

// promauto registers into the default registry; one instance for the package.
var testMetrics = metrics.New("submission_test")

type fakeAppointmentRepo struct {
	mu   sync.Mutex
	rows []*model.AppointmentRequest
	err  error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, req *model.AppointmentRequest) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	req.Status = model.SubmissionStatusPending
	req.CreatedAt = time.Now()
	f.rows = append(f.rows, req)
	return nil
}

func (f *fakeAppointmentRepo) List(_ context.Context) ([]*model.AppointmentRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*model.AppointmentRequest(nil), f.rows...), nil
}

type fakeClaimRepo struct {
	mu   sync.Mutex
	rows []*model.ClinicClaim
	err  error
}

func (f *fakeClaimRepo) Create(_ context.Context, claim *model.ClinicClaim) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	claim.Status = model.SubmissionStatusPending
	claim.CreatedAt = time.Now()
	f.rows = append(f.rows, claim)
	return nil
}

func (f *fakeClaimRepo) List(_ context.Context) ([]*model.ClinicClaim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*model.ClinicClaim(nil), f.rows...), nil
}

type fakeOutboxRepo struct {
	mu     sync.Mutex
	events []*model.OutboxEvent
}

func (f *fakeOutboxRepo) Create(_ context.Context, event *model.OutboxEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeOutboxRepo) GetPendingEvents(_ context.Context, _ int) ([]*model.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkProcessed(_ context.Context, _ *model.OutboxEvent) error {
	return nil
}

func (f *fakeOutboxRepo) MarkFailed(_ context.Context, _ *model.OutboxEvent, _ error) error {
	return nil
}

type fakeMailer struct {
	mu      sync.Mutex
	sent    []string
	sendErr error
}

func (f *fakeMailer) record(template string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, template)
	return nil
}

func (f *fakeMailer) SendAppointmentNotification(_ context.Context, _ *model.AppointmentRequest) error {
	return f.record("appointment_notification")
}

func (f *fakeMailer) SendClaimNotification(_ context.Context, _ *model.ClinicClaim) error {
	return f.record("claim_notification")
}

func (f *fakeMailer) SendClaimConfirmation(_ context.Context, _ *model.ClinicClaim) error {
	return f.record("claim_confirmation")
}

func (f *fakeMailer) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func newTestService(appointments *fakeAppointmentRepo, claims *fakeClaimRepo, outbox *fakeOutboxRepo, mailer *fakeMailer) *Service {
	return NewService(appointments, claims, outbox, mailer, logger.New(nil), testMetrics)
}

func TestSubmitAppointmentRequestValidation(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, &fakeClaimRepo{}, &fakeOutboxRepo{}, &fakeMailer{})

	_, err := svc.SubmitAppointmentRequest(context.Background(), &model.AppointmentRequest{})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrValidation, apperrors.CodeOf(err))

	// whitespace-only fields are still missing
	_, err = svc.SubmitAppointmentRequest(context.Background(), &model.AppointmentRequest{
		PetOwnerName:  "   ",
		PetOwnerEmail: "a@b.com",
		PetOwnerPhone: "555",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrValidation, apperrors.CodeOf(err))
}

func TestSubmitAppointmentRequestSuccess(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	outbox := &fakeOutboxRepo{}
	mailer := &fakeMailer{}
	svc := newTestService(repo, &fakeClaimRepo{}, outbox, mailer)

	created, err := svc.SubmitAppointmentRequest(context.Background(), &model.AppointmentRequest{
		ClinicPlaceID: "ChIJabcd1234",
		ClinicName:    "Ace Vet",
		ClinicEmail:   "front@acevet.com",
		PetOwnerName:  "A",
		PetOwnerEmail: "a@b.com",
		PetOwnerPhone: "555",
	})
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusPending, created.Status)

	rows, err := svc.ListAppointmentRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ace Vet", rows[0].ClinicName)

	// clinic email present, so a notification goes out
	assert.Eventually(t, func() bool {
		return mailer.sentCount() == 1
	}, time.Second, 10*time.Millisecond)

	outbox.mu.Lock()
	defer outbox.mu.Unlock()
	require.Len(t, outbox.events, 1)
	assert.Equal(t, model.EventAppointmentRequestCreate, outbox.events[0].EventType)
}

func TestSubmitAppointmentRequestNoClinicEmail(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newTestService(&fakeAppointmentRepo{}, &fakeClaimRepo{}, &fakeOutboxRepo{}, mailer)

	_, err := svc.SubmitAppointmentRequest(context.Background(), &model.AppointmentRequest{
		PetOwnerName:  "A",
		PetOwnerEmail: "a@b.com",
		PetOwnerPhone: "555",
	})
	require.NoError(t, err)

	// no clinic email on record: nothing to notify
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, mailer.sentCount())
}

func TestSubmitAppointmentRequestPersistenceFailure(t *testing.T) {
	repo := &fakeAppointmentRepo{err: errors.New("connection refused")}
	mailer := &fakeMailer{}
	svc := newTestService(repo, &fakeClaimRepo{}, &fakeOutboxRepo{}, mailer)

	_, err := svc.SubmitAppointmentRequest(context.Background(), &model.AppointmentRequest{
		PetOwnerName:  "A",
		PetOwnerEmail: "a@b.com",
		PetOwnerPhone: "555",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrPersistence, apperrors.CodeOf(err))

	// persistence failed, so no email may be attempted
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, mailer.sentCount())
}

func TestSubmitClaimValidation(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, &fakeClaimRepo{}, &fakeOutboxRepo{}, &fakeMailer{})

	_, err := svc.SubmitClaim(context.Background(), &model.ClinicClaim{
		ClinicPlaceID: "ChIJabcd",
		ClinicName:    "Ace Vet",
		ClaimantName:  "Dana",
		// claimant email, role and verification method missing
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrValidation, apperrors.CodeOf(err))
}

func TestSubmitClaimSuccessSendsBothEmails(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newTestService(&fakeAppointmentRepo{}, &fakeClaimRepo{}, &fakeOutboxRepo{}, mailer)

	created, err := svc.SubmitClaim(context.Background(), validClaim())
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusPending, created.Status)
	assert.NotEqual(t, "", created.ID.String())

	assert.Eventually(t, func() bool {
		return mailer.sentCount() == 2
	}, time.Second, 10*time.Millisecond)
}

func TestSubmitClaimNotificationIsolation(t *testing.T) {
	claims := &fakeClaimRepo{}
	mailer := &fakeMailer{sendErr: errors.New("smtp unreachable")}
	svc := newTestService(&fakeAppointmentRepo{}, claims, &fakeOutboxRepo{}, mailer)

	// the mailer always fails, but the submission is already durable
	created, err := svc.SubmitClaim(context.Background(), validClaim())
	require.NoError(t, err)
	require.NotNil(t, created)

	rows, err := svc.ListClaims(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, model.SubmissionStatusPending, rows[0].Status)
}

func validClaim() *model.ClinicClaim {
	return &model.ClinicClaim{
		ClinicPlaceID:      "ChIJabcd1234",
		ClinicName:         "Ace Vet",
		ClaimantName:       "Dana",
		ClaimantEmail:      "dana@acevet.com",
		ClaimantRole:       "practice manager",
		VerificationMethod: "phone",
	}
}
