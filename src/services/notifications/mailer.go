package notifications

import (
	"log"

	gomail "gopkg.in/gomail.v2"
)

// Mailer is the transactional email collaborator. Implementations must treat
// a send as a single synchronous attempt; retrying is the caller's business.
type Mailer interface {
	Send(to []string, subject, html, replyTo string) error
}

type SMTPSender struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func NewSMTPSender(host string, port int, user, pass, from string) *SMTPSender {
	return &SMTPSender{Host: host, Port: port, User: user, Pass: pass, From: from}
}

func (s *SMTPSender) Send(to []string, subject, html, replyTo string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	if replyTo != "" {
		m.SetHeader("Reply-To", replyTo)
	}
	m.SetBody("text/html", html)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Pass)
	return d.DialAndSend(m)
}

// LogSender is used when SMTP is not configured: it logs instead of sending
// so local development still shows what would have gone out.
type LogSender struct{}

func (LogSender) Send(to []string, subject, _ string, _ string) error {
	log.Printf("⚠️ SMTP not configured → skipping email to=%v subject=%q", to, subject)
	return nil
}
