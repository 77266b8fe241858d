package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/vetlyst/directory-api/internal/model"
)

var timeSlotLabels = map[string]string{
	"morning":   "Morning (8AM - 12PM)",
	"afternoon": "Afternoon (12PM - 5PM)",
	"evening":   "Evening (5PM - 8PM)",
}

var appointmentTmpl = template.Must(template.New("appointment").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <h1 style="color: #667eea;">New Appointment Request</h1>
      <p>Hi {{.ClinicName}} team,</p>
      <p>You have received a new appointment request through your Vetlyst listing.</p>

      <div style="background: #f9fafb; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h2 style="margin-top: 0; color: #667eea;">Pet Owner Information</h2>
        <p><strong>Name:</strong> {{.PetOwnerName}}</p>
        <p><strong>Email:</strong> <a href="mailto:{{.PetOwnerEmail}}">{{.PetOwnerEmail}}</a></p>
        <p><strong>Phone:</strong> {{.PetOwnerPhone}}</p>
      </div>

      <div style="background: #f9fafb; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h2 style="margin-top: 0; color: #667eea;">Appointment Details</h2>
        {{if .PetName}}<p><strong>Pet Name:</strong> {{.PetName}}</p>{{end}}
        {{if .PetType}}<p><strong>Pet Type:</strong> {{.PetType}}</p>{{end}}
        <p><strong>Preferred Date:</strong> {{.PreferredDate}}</p>
        <p><strong>Preferred Time:</strong> {{.PreferredTime}}</p>
      </div>

      {{if .Message}}
      <div style="background: #fef3c7; padding: 15px; border-radius: 4px; margin: 20px 0;">
        <strong>Additional Information:</strong><br/>{{.Message}}
      </div>
      {{end}}

      <p><strong>Next Steps:</strong><br/>
      Please contact {{.PetOwnerName}} as soon as possible to confirm the appointment.
      You can reply directly to this email or call them at {{.PetOwnerPhone}}.</p>

      <p style="color: #6b7280; font-size: 14px; border-top: 1px solid #e5e7eb; padding-top: 20px;">
        This appointment request was sent through <strong>Vetlyst</strong>.
      </p>
    </div>
  </body>
</html>`))

var claimNotificationTmpl = template.Must(template.New("claim_notification").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">New Clinic Claim Request</h2>

  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0;">Clinic Information</h3>
    <p><strong>Clinic Name:</strong> {{.ClinicName}}</p>
    <p><strong>Clinic ID:</strong> {{.ClinicPlaceID}}</p>
  </div>

  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0;">Claimant Information</h3>
    <p><strong>Name:</strong> {{.ClaimantName}}</p>
    <p><strong>Email:</strong> {{.ClaimantEmail}}</p>
    <p><strong>Phone:</strong> {{if .ClaimantPhone}}{{.ClaimantPhone}}{{else}}Not provided{{end}}</p>
    <p><strong>Role:</strong> {{.ClaimantRole}}</p>
  </div>

  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0;">Verification Details</h3>
    <p><strong>Preferred Method:</strong> {{.VerificationMethod}}</p>
    {{if .VerificationNotes}}<p><strong>Additional Notes:</strong><br/>{{.VerificationNotes}}</p>{{end}}
  </div>

  <p style="color: #64748b; font-size: 14px; border-top: 1px solid #e2e8f0; padding-top: 20px;">
    Claim ID: {{.ID}}<br/>Submitted: {{.Submitted}}
  </p>
</div>`))

var claimConfirmationTmpl = template.Must(template.New("claim_confirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">Thank You for Your Claim Request!</h2>

  <p>Hi {{.ClaimantName}},</p>
  <p>We've received your request to claim <strong>{{.ClinicName}}</strong> on Vetlyst.</p>

  <div style="background: #eff6ff; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0; color: #1e40af;">What Happens Next?</h3>
    <ul style="color: #1e3a8a;">
      <li>Our team will review your claim within 1-2 business days</li>
      <li>We may contact you at {{.ClaimantEmail}}{{if .ClaimantPhone}} or {{.ClaimantPhone}}{{end}} for verification</li>
      <li>Once approved, you'll receive login credentials to manage your clinic profile</li>
    </ul>
  </div>

  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0;">Your Claim Details</h3>
    <p><strong>Clinic:</strong> {{.ClinicName}}</p>
    <p><strong>Your Role:</strong> {{.ClaimantRole}}</p>
    <p><strong>Verification Method:</strong> {{.VerificationMethod}}</p>
  </div>

  <p>If you have any questions, please reply to this email.</p>
  <p>Best regards,<br/><strong>The Vetlyst Team</strong></p>

  <p style="color: #64748b; font-size: 12px; border-top: 1px solid #e2e8f0; padding-top: 20px;">
    Reference ID: {{.ID}}
  </p>
</div>`))

type appointmentView struct {
	ClinicName    string
	PetOwnerName  string
	PetOwnerEmail string
	PetOwnerPhone string
	PetName       string
	PetType       string
	PreferredDate string
	PreferredTime string
	Message       string
}

type claimView struct {
	ID                 string
	ClinicName         string
	ClinicPlaceID      string
	ClaimantName       string
	ClaimantEmail      string
	ClaimantPhone      string
	ClaimantRole       string
	VerificationMethod string
	VerificationNotes  string
	Submitted          string
}

func renderAppointmentNotification(req *model.AppointmentRequest) (string, error) {
	view := appointmentView{
		ClinicName:    req.ClinicName,
		PetOwnerName:  req.PetOwnerName,
		PetOwnerEmail: req.PetOwnerEmail,
		PetOwnerPhone: req.PetOwnerPhone,
		PetName:       req.PetName,
		PetType:       req.PetType,
		PreferredDate: formatPreferredDate(req.PreferredDate),
		PreferredTime: formatPreferredTime(req.PreferredTime),
		Message:       req.Message,
	}
	var buf bytes.Buffer
	if err := appointmentTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render appointment notification: %w", err)
	}
	return buf.String(), nil
}

func renderClaimNotification(claim *model.ClinicClaim) (string, error) {
	var buf bytes.Buffer
	if err := claimNotificationTmpl.Execute(&buf, newClaimView(claim)); err != nil {
		return "", fmt.Errorf("failed to render claim notification: %w", err)
	}
	return buf.String(), nil
}

func renderClaimConfirmation(claim *model.ClinicClaim) (string, error) {
	var buf bytes.Buffer
	if err := claimConfirmationTmpl.Execute(&buf, newClaimView(claim)); err != nil {
		return "", fmt.Errorf("failed to render claim confirmation: %w", err)
	}
	return buf.String(), nil
}

func newClaimView(claim *model.ClinicClaim) claimView {
	return claimView{
		ID:                 claim.ID.String(),
		ClinicName:         claim.ClinicName,
		ClinicPlaceID:      claim.ClinicPlaceID,
		ClaimantName:       claim.ClaimantName,
		ClaimantEmail:      claim.ClaimantEmail,
		ClaimantPhone:      claim.ClaimantPhone,
		ClaimantRole:       claim.ClaimantRole,
		VerificationMethod: claim.VerificationMethod,
		VerificationNotes:  claim.VerificationNotes,
		Submitted:          claim.CreatedAt.Format(time.RFC1123),
	}
}

func formatPreferredDate(raw string) string {
	if raw == "" {
		return "Not specified"
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.Format("Monday, January 2, 2006")
	}
	return raw
}

func formatPreferredTime(raw string) string {
	if raw == "" {
		return "Not specified"
	}
	if label, ok := timeSlotLabels[raw]; ok {
		return label
	}
	return raw
}
