package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

var notifyClient = &http.Client{Timeout: 5 * time.Second}

// SendVerificationNotice posts the verification link for an address to the
// configured webhook. Delivery is best effort; callers log and continue on
// failure.
func SendVerificationNotice(webhookURL, email, verifyURL string) error {
	if webhookURL == "" {
		return nil
	}

	payload, err := json.Marshal(map[string]string{
		"email":      email,
		"verify_url": verifyURL,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	resp, err := notifyClient.Post(webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("post notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification webhook returned %d", resp.StatusCode)
	}
	return nil
}
