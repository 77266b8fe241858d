package email

import (
	"context"

	"github.com/vetlyst/directory-api/internal/model"
)

// Service dispatches transactional mail. Delivery is best-effort with no
// confirmation tracking; callers log failures and move on.
type Service interface {
	// SendAppointmentNotification mails the clinic about a new appointment
	// request, reply-to set to the pet owner.
	SendAppointmentNotification(ctx context.Context, req *model.AppointmentRequest) error
	// SendClaimNotification mails the directory admin about a new claim.
	SendClaimNotification(ctx context.Context, claim *model.ClinicClaim) error
	// SendClaimConfirmation mails the claimant an acknowledgement.
	SendClaimConfirmation(ctx context.Context, claim *model.ClinicClaim) error
}
