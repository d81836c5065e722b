// Package alerts posts operator-visible webhook notifications when a
// receipt dispatch fails. Best effort and fully optional - when no webhook
// URL is configured every call is a no-op beyond the log.
package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

var (
	instance *AlertNotifier
	once     sync.Once
)

type AlertNotifier struct {
	webhookURL string
	appName    string
}

// Init initializes the global alert notifier instance
func Init(webhookURL string) {
	once.Do(func() {
		instance = &AlertNotifier{
			webhookURL: webhookURL,
			appName:    "printfeed",
		}
	})
}

// PrinterFailure sends a printer-failure alert to the configured webhook
func PrinterFailure(receiptID string, cause error) {
	if instance == nil {
		log.Printf("⚠️ Alert notifier not initialized, skipping alert for receipt %s", receiptID)
		return
	}

	instance.send(receiptID, cause)
}

func (a *AlertNotifier) send(receiptID string, cause error) {
	if a.webhookURL == "" {
		return // Alerts disabled
	}

	// Send notification asynchronously to avoid blocking the event loop
	go a.sendWebhookNotification(receiptID, cause)
}

func (a *AlertNotifier) sendWebhookNotification(receiptID string, cause error) {
	payload := map[string]any{
		"text": fmt.Sprintf("🖨️ *%s*: receipt %s failed to print\n```%v```\n_%s_",
			a.appName, receiptID, cause, time.Now().Format("2006-01-02 15:04:05 UTC")),
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		log.Printf("❌ Failed to marshal alert payload: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "POST", a.webhookURL, strings.NewReader(string(payloadBytes)))
	if err != nil {
		log.Printf("❌ Failed to create alert request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("❌ Failed to send printer alert: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("❌ Printer alert failed with status: %d", resp.StatusCode)
		return
	}

	log.Printf("📢 Printer alert sent for receipt %s", receiptID)
}
