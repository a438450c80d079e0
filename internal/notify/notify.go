// Package notify delivers low-stock alerts. Delivery is strictly best-effort:
// the inventory mutation has already committed by the time a gateway runs, so
// a failure is reported as a message, never propagated as an error.
package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rogerio-castellano/inventree/internal/config"
	"github.com/rogerio-castellano/inventree/internal/models"
	"github.com/rogerio-castellano/inventree/internal/settings"
)

// Gateway receives low-stock alert requests. Critical means stock at or below
// the threshold; warning means within 10% above it.
type Gateway interface {
	NotifyLowStock(critical, warning []models.LowStockItem) (bool, string)
}

// RecipientSource resolves the alert recipient at send time, so changing the
// setting takes effect without a restart.
type RecipientSource interface {
	Get(key string) (string, error)
}

// SMTPGateway sends the alert as an HTML email.
type SMTPGateway struct {
	cfg        config.SMTP
	recipients RecipientSource
}

func NewSMTPGateway(cfg config.SMTP, recipients RecipientSource) *SMTPGateway {
	return &SMTPGateway{cfg: cfg, recipients: recipients}
}

func (g *SMTPGateway) NotifyLowStock(critical, warning []models.LowStockItem) (bool, string) {
	recipient, err := g.recipients.Get(settings.KeyRecipientEmail)
	if err != nil {
		return false, fmt.Sprintf("Email not sent: could not read recipient setting: %v", err)
	}
	if g.cfg.User == "" || g.cfg.Password == "" || recipient == "" {
		return false, "Email not sent: please configure SMTP credentials and a recipient address."
	}
	if len(critical) == 0 && len(warning) == 0 {
		return true, "No low stock items to report."
	}

	from := g.cfg.From
	if from == "" {
		from = g.cfg.User
	}

	var sb strings.Builder
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("To: " + recipient + "\r\n")
	sb.WriteString("Subject: Inventree - Low Stock Alert\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	sb.WriteString("<html><body><h2>Inventree Stock Alert</h2><p>The following items require your attention.</p>")
	writeTable(&sb, "Critically Low Stock", critical)
	writeTable(&sb, "Stock Warning", warning)
	sb.WriteString("<br><p><i>This is an automated message from Inventree.</i></p></body></html>")

	addr := fmt.Sprintf("%s:%s", g.cfg.Host, g.cfg.Port)
	auth := smtp.PlainAuth("", g.cfg.User, g.cfg.Password, g.cfg.Host)
	if err := smtp.SendMail(addr, auth, from, []string{recipient}, []byte(sb.String())); err != nil {
		return false, fmt.Sprintf("Failed to send email: %v", err)
	}
	return true, fmt.Sprintf("Low stock alert email sent successfully to %s", recipient)
}

func writeTable(sb *strings.Builder, title string, items []models.LowStockItem) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("<h3>" + title + "</h3>")
	sb.WriteString("<table border='1' cellpadding='5' cellspacing='0' style='border-collapse: collapse;'>")
	sb.WriteString("<tr><th>Item Name</th><th>Current Stock</th><th>Low Stock Level</th></tr>")
	for _, it := range items {
		sb.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%d</td><td>%d</td></tr>", it.Name, it.Stock, it.LowStock))
	}
	sb.WriteString("</table>")
}
