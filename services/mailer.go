package services

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/gowthamlakshman94/Canteen-Automation-System/configs"
	"github.com/gowthamlakshman94/Canteen-Automation-System/entity"
)

// Mailer sends the best-effort order confirmation. Callers must treat a
// send failure as log-only; it never reaches the HTTP response.
type Mailer struct {
	host string
	port string
	user string
	pass string
	from string
}

// NewMailer returns nil when SMTP is not configured.
func NewMailer(cfg *configs.Config) *Mailer {
	if cfg.SMTPHost == "" {
		return nil
	}
	return &Mailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.MailFrom,
	}
}

func (m *Mailer) SendOrderConfirmation(to string, orderID int64, lines []entity.OrderLine, at time.Time) error {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: Order %d confirmed\r\n\r\n", orderID)
	fmt.Fprintf(&b, "Your canteen order placed at %s:\r\n\r\n", at.Format("2006-01-02 15:04:05"))

	total := 0.0
	for _, l := range lines {
		fmt.Fprintf(&b, "  %dx %s @ %.2f\r\n", l.Quantity, l.ItemName, l.Price)
		total += l.Price * float64(l.Quantity)
	}
	fmt.Fprintf(&b, "\r\nTotal: %.2f\r\n", total)

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	addr := m.host + ":" + m.port
	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(b.String()))
}
