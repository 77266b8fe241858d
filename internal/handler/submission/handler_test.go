package submission

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetlyst/directory-api/internal/model"
	apperrors "github.com/vetlyst/directory-api/pkg/errors"
)

type fakeSubmissionService struct {
	submitErr    error
	appointments []*model.AppointmentRequest
	claims       []*model.ClinicClaim
}

func (f *fakeSubmissionService) SubmitAppointmentRequest(_ context.Context, req *model.AppointmentRequest) (*model.AppointmentRequest, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	req.ID = uuid.New()
	req.Status = model.SubmissionStatusPending
	req.CreatedAt = time.Now()
	f.appointments = append(f.appointments, req)
	return req, nil
}

func (f *fakeSubmissionService) SubmitClaim(_ context.Context, claim *model.ClinicClaim) (*model.ClinicClaim, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	claim.ID = uuid.New()
	claim.Status = model.SubmissionStatusPending
	claim.CreatedAt = time.Now()
	f.claims = append(f.claims, claim)
	return claim, nil
}

func (f *fakeSubmissionService) ListAppointmentRequests(_ context.Context) ([]*model.AppointmentRequest, error) {
	return f.appointments, nil
}

func (f *fakeSubmissionService) ListClaims(_ context.Context) ([]*model.ClinicClaim, error) {
	return f.claims, nil
}

func setupRouter(svc *fakeSubmissionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc)
	h.RegisterRoutes(r.Group("/api/v1"))
	h.RegisterAdminRoutes(r.Group("/api/v1/admin"))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitAppointmentRequestMissingFields(t *testing.T) {
	r := setupRouter(&fakeSubmissionService{})

	w := postJSON(r, "/api/v1/appointment-request", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing required fields")
}

func TestSubmitAppointmentRequestSuccess(t *testing.T) {
	svc := &fakeSubmissionService{}
	r := setupRouter(svc)

	w := postJSON(r, "/api/v1/appointment-request", `{
		"clinicId": "ChIJace00001",
		"clinicName": "Ace Vet",
		"clinicEmail": "front@acevet.com",
		"petOwnerName": "Jane Doe",
		"petOwnerEmail": "jane@example.com",
		"petOwnerPhone": "555-0100",
		"petName": "Rex",
		"petType": "dog",
		"preferredDate": "2026-09-15",
		"preferredTime": "morning"
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                      `json:"success"`
		Message string                    `json:"message"`
		Data    *model.AppointmentRequest `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Appointment request submitted successfully", resp.Message)
	require.NotNil(t, resp.Data)
	assert.Equal(t, model.SubmissionStatusPending, resp.Data.Status)
	assert.Equal(t, "Jane Doe", resp.Data.PetOwnerName)
}

func TestSubmitAppointmentRequestPersistenceFailure(t *testing.T) {
	svc := &fakeSubmissionService{submitErr: apperrors.NewPersistence("insert failed", nil)}
	r := setupRouter(svc)

	w := postJSON(r, "/api/v1/appointment-request", `{
		"petOwnerName": "Jane Doe",
		"petOwnerEmail": "jane@example.com",
		"petOwnerPhone": "555-0100"
	}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to submit appointment request")
}

func TestSubmitClaimMissingFields(t *testing.T) {
	r := setupRouter(&fakeSubmissionService{})

	w := postJSON(r, "/api/v1/claim-clinic", `{"clinicId": "ChIJace00001"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing required fields")
}

func TestSubmitClaimSuccess(t *testing.T) {
	svc := &fakeSubmissionService{}
	r := setupRouter(svc)

	w := postJSON(r, "/api/v1/claim-clinic", `{
		"clinicId": "ChIJace00001",
		"clinicName": "Ace Vet",
		"claimantName": "Dr. Smith",
		"claimantEmail": "smith@acevet.com",
		"claimantRole": "owner",
		"verificationMethod": "phone"
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		ClaimID string `json:"claimId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, svc.claims, 1)
	assert.Equal(t, svc.claims[0].ID.String(), resp.ClaimID)
}

func TestListAppointmentRequestsEmpty(t *testing.T) {
	r := setupRouter(&fakeSubmissionService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/admin/appointments", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestListClaims(t *testing.T) {
	svc := &fakeSubmissionService{}
	r := setupRouter(svc)

	postJSON(r, "/api/v1/claim-clinic", `{
		"clinicId": "ChIJace00001",
		"clinicName": "Ace Vet",
		"claimantName": "Dr. Smith",
		"claimantEmail": "smith@acevet.com",
		"claimantRole": "owner",
		"verificationMethod": "phone"
	}`)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/admin/claims", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var claims []*model.ClinicClaim
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &claims))
	require.Len(t, claims, 1)
	assert.Equal(t, "Dr. Smith", claims[0].ClaimantName)
}
