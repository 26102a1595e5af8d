package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const twilioAPIBase = "https://api.twilio.com"

// TwilioMessenger sends SMS through the Twilio Messages REST API.
type TwilioMessenger struct {
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
	client     *http.Client
}

func NewTwilioMessenger(accountSID, authToken, fromNumber string) *TwilioMessenger {
	return &TwilioMessenger{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		baseURL:    twilioAPIBase,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// NewTwilioMessengerWithBaseURL is used by tests to point the client at a
// local server.
func NewTwilioMessengerWithBaseURL(accountSID, authToken, fromNumber, baseURL string) *TwilioMessenger {
	messenger := NewTwilioMessenger(accountSID, authToken, fromNumber)
	messenger.baseURL = baseURL
	return messenger
}

func (messenger *TwilioMessenger) SendAssignment(ctx context.Context, to, memberName, choreName, choreDescription, confirmURL, historyURL string) (string, error) {
	body := fmt.Sprintf("Hi %s! Your chore this week is: %s\n\n%s\n\nConfirm completion: %s\nView history: %s",
		memberName, choreName, choreDescription, confirmURL, historyURL)
	return messenger.send(ctx, to, body)
}

func (messenger *TwilioMessenger) SendReminder(ctx context.Context, to, memberName, choreName, confirmURL string) (string, error) {
	body := fmt.Sprintf("Reminder: Hi %s, your chore %q hasn't been confirmed yet. Please complete and confirm: %s",
		memberName, choreName, confirmURL)
	return messenger.send(ctx, to, body)
}

func (messenger *TwilioMessenger) SendAdminSummary(ctx context.Context, to, adminName, summary string) (string, error) {
	body := fmt.Sprintf("Weekly Chore Summary for %s:\n\n%s", adminName, summary)
	return messenger.send(ctx, to, body)
}

func (messenger *TwilioMessenger) send(ctx context.Context, to, body string) (string, error) {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", messenger.fromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", messenger.baseURL, messenger.accountSID)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building twilio request: %w", err)
	}
	request.SetBasicAuth(messenger.accountSID, messenger.authToken)
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := messenger.client.Do(request)
	if err != nil {
		return "", fmt.Errorf("sending twilio request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(response.Body, 4096))
		return "", fmt.Errorf("twilio returned status %d: %s", response.StatusCode, strings.TrimSpace(string(detail)))
	}

	var payload struct {
		SID string `json:"sid"`
	}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding twilio response: %w", err)
	}
	return payload.SID, nil
}
