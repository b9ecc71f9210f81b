package service

import (
	"classroom_backend/internal/config"
	"classroom_backend/internal/model"
	"classroom_backend/pkg/logger"
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// Mailer abstracts outbound mail so environments without a sendgrid key
// still work (messages go to the log instead).
type Mailer interface {
	Send(ctx context.Context, toName, toAddress, subject, body string) error
}

type sendgridMailer struct {
	client   *sendgrid.Client
	fromName string
	fromAddr string
}

func (m *sendgridMailer) Send(ctx context.Context, toName, toAddress, subject, body string) error {
	from := mail.NewEmail(m.fromName, m.fromAddr)
	to := mail.NewEmail(toName, toAddress)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: unexpected status %d", resp.StatusCode)
	}
	return nil
}

type consoleMailer struct{}

func (m *consoleMailer) Send(ctx context.Context, toName, toAddress, subject, body string) error {
	logger.Log.Info("mail (console fallback)",
		zap.String("to", toAddress),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}

type MailService struct {
	mailer Mailer
	cfg    *config.MailConfig
}

func NewMailService(cfg *config.Config) *MailService {
	var mailer Mailer
	if cfg.Mail.SendgridAPIKey != "" {
		mailer = &sendgridMailer{
			client:   sendgrid.NewSendClient(cfg.Mail.SendgridAPIKey),
			fromName: cfg.Mail.FromName,
			fromAddr: cfg.Mail.FromAddress,
		}
	} else {
		mailer = &consoleMailer{}
	}

	return &MailService{mailer: mailer, cfg: &cfg.Mail}
}

func (s *MailService) SendVerification(ctx context.Context, user *model.User, token string) error {
	link := fmt.Sprintf("%s?token=%s", s.cfg.VerifyBaseURL, token)
	body := fmt.Sprintf("Hello %s,\n\nFollow the link to verify your account:\n%s\n", user.FullName(), link)
	return s.mailer.Send(ctx, user.FullName(), user.Email, "Verify your classroom account", body)
}

func (s *MailService) SendCourseInvite(ctx context.Context, user *model.User, course *model.Course) error {
	body := fmt.Sprintf("Hello %s,\n\nYou have been invited to the course %q. Log in to accept or reject the invitation.\n",
		user.FullName(), course.Title)
	return s.mailer.Send(ctx, user.FullName(), user.Email, "Course invitation", body)
}
