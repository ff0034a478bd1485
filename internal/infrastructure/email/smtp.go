package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	sharedConfig "github.com/waveline-inc/waveline/internal/shared/config"
)

// SMTPEmailService sends transactional mail, primarily payment receipts to
// invoice payers.
type SMTPEmailService struct {
	cfg    sharedConfig.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg sharedConfig.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPEmailService{
		cfg:    cfg,
		dialer: dialer,
	}
}

// Send delivers a single HTML email.
func (s *SMTPEmailService) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
