package notify

import (
	"testing"

	"github.com/rogerio-castellano/inventree/internal/config"
	"github.com/rogerio-castellano/inventree/internal/models"
)

type staticRecipient string

func (s staticRecipient) Get(key string) (string, error) { return string(s), nil }

func TestNotifyLowStock_UnconfiguredGateway(t *testing.T) {
	items := []models.LowStockItem{{Name: "Widget", Stock: 2, LowStock: 5}}

	tests := []struct {
		name      string
		cfg       config.SMTP
		recipient string
	}{
		{"no credentials", config.SMTP{}, "ops@example.com"},
		{"no recipient", config.SMTP{User: "mailer", Password: "hunter2"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewSMTPGateway(tt.cfg, staticRecipient(tt.recipient))
			sent, msg := g.NotifyLowStock(items, nil)
			if sent {
				t.Error("unconfigured gateway must not report the alert as sent")
			}
			if msg != "Email not sent: please configure SMTP credentials and a recipient address." {
				t.Errorf("unexpected message: %q", msg)
			}
		})
	}
}

func TestNotifyLowStock_NothingToReport(t *testing.T) {
	g := NewSMTPGateway(config.SMTP{User: "mailer", Password: "hunter2"}, staticRecipient("ops@example.com"))

	sent, msg := g.NotifyLowStock(nil, nil)
	if !sent {
		t.Error("an empty report is a successful no-op, not a failure")
	}
	if msg != "No low stock items to report." {
		t.Errorf("unexpected message: %q", msg)
	}
}
