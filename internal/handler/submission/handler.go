package submission

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetlyst/directory-api/internal/handler"
	"github.com/vetlyst/directory-api/internal/model"
	submissionService "github.com/vetlyst/directory-api/internal/service/submission"
	apperrors "github.com/vetlyst/directory-api/pkg/errors"
)

type Handler struct {
	service submissionService.Servicer
}

func NewHandler(service submissionService.Servicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/appointment-request", h.SubmitAppointmentRequest)
	r.POST("/claim-clinic", h.SubmitClaim)
	r.GET("/appointments", h.ListAppointmentRequests)
}

// RegisterAdminRoutes exposes the unauthenticated admin listings. Known gap:
// there is no auth layer in front of these.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.GET("/appointments", h.ListAppointmentRequests)
	r.GET("/claims", h.ListClaims)
}

type appointmentRequestBody struct {
	ClinicID      string `json:"clinicId"`
	ClinicName    string `json:"clinicName"`
	ClinicEmail   string `json:"clinicEmail"`
	PetOwnerName  string `json:"petOwnerName" binding:"required"`
	PetOwnerEmail string `json:"petOwnerEmail" binding:"required"`
	PetOwnerPhone string `json:"petOwnerPhone" binding:"required"`
	PetName       string `json:"petName"`
	PetType       string `json:"petType"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Message       string `json:"message"`
}

type claimBody struct {
	ClinicID           string `json:"clinicId" binding:"required"`
	ClinicName         string `json:"clinicName" binding:"required"`
	ClaimantName       string `json:"claimantName" binding:"required"`
	ClaimantEmail      string `json:"claimantEmail" binding:"required"`
	ClaimantPhone      string `json:"claimantPhone"`
	ClaimantRole       string `json:"claimantRole" binding:"required"`
	VerificationMethod string `json:"verificationMethod" binding:"required"`
	VerificationNotes  string `json:"verificationNotes"`
}

func (h *Handler) SubmitAppointmentRequest(c *gin.Context) {
	var body appointmentRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("missing required fields"))
		return
	}

	req := &model.AppointmentRequest{
		ClinicPlaceID: body.ClinicID,
		ClinicName:    body.ClinicName,
		ClinicEmail:   body.ClinicEmail,
		PetOwnerName:  body.PetOwnerName,
		PetOwnerEmail: body.PetOwnerEmail,
		PetOwnerPhone: body.PetOwnerPhone,
		PetName:       body.PetName,
		PetType:       body.PetType,
		PreferredDate: body.PreferredDate,
		PreferredTime: body.PreferredTime,
		Message:       body.Message,
	}

	created, err := h.service.SubmitAppointmentRequest(c.Request.Context(), req)
	if err != nil {
		respondSubmissionError(c, err, "failed to submit appointment request")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Appointment request submitted successfully",
		"data":    created,
	})
}

func (h *Handler) SubmitClaim(c *gin.Context) {
	var body claimBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("missing required fields"))
		return
	}

	claim := &model.ClinicClaim{
		ClinicPlaceID:      body.ClinicID,
		ClinicName:         body.ClinicName,
		ClaimantName:       body.ClaimantName,
		ClaimantEmail:      body.ClaimantEmail,
		ClaimantPhone:      body.ClaimantPhone,
		ClaimantRole:       body.ClaimantRole,
		VerificationMethod: body.VerificationMethod,
		VerificationNotes:  body.VerificationNotes,
	}

	created, err := h.service.SubmitClaim(c.Request.Context(), claim)
	if err != nil {
		respondSubmissionError(c, err, "failed to save claim request")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"claimId": created.ID,
	})
}

func (h *Handler) ListAppointmentRequests(c *gin.Context) {
	requests, err := h.service.ListAppointmentRequests(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to fetch appointment requests"))
		return
	}

	if requests == nil {
		requests = []*model.AppointmentRequest{}
	}
	c.JSON(http.StatusOK, requests)
}

func (h *Handler) ListClaims(c *gin.Context) {
	claims, err := h.service.ListClaims(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to fetch claims"))
		return
	}

	if claims == nil {
		claims = []*model.ClinicClaim{}
	}
	c.JSON(http.StatusOK, claims)
}

func respondSubmissionError(c *gin.Context, err error, persistenceMsg string) {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrValidation:
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("missing required fields"))
	default:
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(persistenceMsg))
	}
}
