package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/rs/zerolog"

	"github.com/bioscizone/bioscizone-api/internal/models"
	"github.com/bioscizone/bioscizone-api/internal/repository"
	"github.com/bioscizone/bioscizone-api/pkg/mailer"
)

var feedbackEmailTemplate = template.Must(template.New("feedback").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; background-color: #f5f5f5; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; padding: 24px;">
    <h2 style="color: #0066cc; margin-top: 0;">New Feedback Received</h2>
    <p><strong>Name:</strong> {{.SenderName}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    {{if .StudentID}}<p><strong>Student ID:</strong> {{.StudentID}}</p>{{end}}
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <div style="background-color: #f8f9fa; padding: 16px; border-radius: 6px; white-space: pre-wrap;">{{.Message}}</div>
    <p style="color: #888; font-size: 12px; margin-bottom: 0;">
      This email was sent automatically. Sign in to the admin panel to respond.
    </p>
  </div>
</body>
</html>`))

// EmailFeedbackNotifier emails admins when feedback arrives. Recipients are the
// admin accounts that have a non-empty email on file at send time.
type EmailFeedbackNotifier struct {
	mailer *mailer.Mailer
	admins repository.AdminRepository
	logger zerolog.Logger
}

// NewEmailFeedbackNotifier constructs the email notifier.
func NewEmailFeedbackNotifier(m *mailer.Mailer, admins repository.AdminRepository, logger zerolog.Logger) *EmailFeedbackNotifier {
	return &EmailFeedbackNotifier{
		mailer: m,
		admins: admins,
		logger: logger.With().Str("component", "feedback_notifier").Logger(),
	}
}

// Notify renders and sends the notification. When the transport is not
// configured or no admin has an email address, it skips delivery quietly.
func (n *EmailFeedbackNotifier) Notify(ctx context.Context, feedback models.Feedback) error {
	if !n.mailer.Configured() {
		n.logger.Warn().Msg("smtp not configured, skipping feedback notification")
		return nil
	}

	recipients, err := n.admins.ListEmails(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve recipients: %w", err)
	}
	if len(recipients) == 0 {
		n.logger.Info().Msg("no admin recipients, skipping feedback notification")
		return nil
	}

	subject, htmlBody, textBody, err := renderFeedbackEmail(feedback)
	if err != nil {
		return err
	}

	return n.mailer.Send(ctx, recipients, subject, htmlBody, textBody)
}

func renderFeedbackEmail(feedback models.Feedback) (subject, htmlBody, textBody string, err error) {
	subject = fmt.Sprintf("[BiosciZone] New feedback from %s", feedback.SenderName)

	var buf bytes.Buffer
	if err = feedbackEmailTemplate.Execute(&buf, feedback); err != nil {
		return "", "", "", fmt.Errorf("failed to render feedback email: %w", err)
	}
	htmlBody = buf.String()

	studentID := feedback.StudentID
	if studentID == "" {
		studentID = "n/a"
	}
	textBody = fmt.Sprintf(
		"New feedback received\n\nName: %s\nEmail: %s\nStudent ID: %s\nSubject: %s\n\n%s\n\n---\nSign in to the admin panel to respond.\n",
		feedback.SenderName, feedback.Email, studentID, feedback.Subject, feedback.Message,
	)

	return subject, htmlBody, textBody, nil
}
