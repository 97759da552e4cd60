package main

import (
	"fmt"
	"io"

	"github.com/go-gomail/gomail"
	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Email
// ---------------------------------------------------------------------------

// Attachment is an in-memory file sent with the email.
type Attachment struct {
	Filename string
	Data     []byte
}

// newMessage builds the email carrying the generated prescriptions.
func newMessage(cfg *Config, subject, ref string, attachments ...Attachment) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.Email.From)
	msg.SetHeader("To", cfg.Email.To)
	msg.SetHeader("Subject", subject)
	msg.SetHeader("Message-ID", fmt.Sprintf("<%s@receituario>", uuid.NewString()))
	msg.SetBody("text/html", fmt.Sprintf("Receitas anexas.<br>Referência: %s<br>", ref))

	for _, a := range attachments {
		data := a.Data
		msg.Attach(a.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}
	return msg
}

// sendEmail sends the generated PDFs via SMTP.
func sendEmail(cfg *Config, subject, ref string, attachments ...Attachment) error {
	msg := newMessage(cfg, subject, ref, attachments...)
	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
