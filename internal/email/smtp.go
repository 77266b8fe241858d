package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/vetlyst/directory-api/internal/config"
	"github.com/vetlyst/directory-api/internal/model"
)

type smtpService struct {
	dialer     *gomail.Dialer
	from       string
	adminEmail string
}

// NewSMTPService returns a Service backed by an SMTP relay.
func NewSMTPService(cfg config.SMTPConfig) Service {
	return &smtpService{
		dialer:     gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:       cfg.From,
		adminEmail: cfg.AdminEmail,
	}
}

func (s *smtpService) SendAppointmentNotification(ctx context.Context, req *model.AppointmentRequest) error {
	body, err := renderAppointmentNotification(req)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", req.ClinicEmail)
	m.SetHeader("Reply-To", req.PetOwnerEmail)
	m.SetHeader("Subject", fmt.Sprintf("New Appointment Request from %s", req.PetOwnerName))
	m.SetBody("text/html", body)

	return s.send(ctx, m)
}

func (s *smtpService) SendClaimNotification(ctx context.Context, claim *model.ClinicClaim) error {
	body, err := renderClaimNotification(claim)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.adminEmail)
	m.SetHeader("Subject", fmt.Sprintf("New Clinic Claim Request: %s", claim.ClinicName))
	m.SetBody("text/html", body)

	return s.send(ctx, m)
}

func (s *smtpService) SendClaimConfirmation(ctx context.Context, claim *model.ClinicClaim) error {
	body, err := renderClaimConfirmation(claim)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", claim.ClaimantEmail)
	m.SetHeader("Subject", fmt.Sprintf("Claim Request Received for %s", claim.ClinicName))
	m.SetBody("text/html", body)

	return s.send(ctx, m)
}

// send honors context cancellation around the blocking SMTP dial.
func (s *smtpService) send(ctx context.Context, m *gomail.Message) error {
	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}
}
