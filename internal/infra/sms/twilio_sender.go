// Package sms delivers one-time passwords through the Twilio messaging API.
package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ayurfresh/config"
	"ayurfresh/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultBaseURL = "https://api.twilio.com"

// twilioSender is a concrete implementation of the SMSSender interface
// against the Twilio Messages endpoint.
type twilioSender struct {
	client     *http.Client
	baseURL    string
	accountSID string
	authToken  string
	from       string
}

// messageResponse is the subset of Twilio's response we read.
type messageResponse struct {
	SID          string `json:"sid"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// NewTwilioSender is the constructor for twilioSender.
func NewTwilioSender(cfg *config.Config) (service.SMSSender, error) {
	if cfg.SMS == nil || cfg.SMS.AccountSID == "" {
		return nil, errors.New("sms configuration must be provided")
	}

	baseURL := cfg.SMS.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &twilioSender{
		client:     &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		accountSID: cfg.SMS.AccountSID,
		authToken:  cfg.SMS.AuthToken,
		from:       cfg.SMS.From,
	}, nil
}

// Send posts one message and returns the provider's message SID.
func (s *twilioSender) Send(ctx context.Context, to, message string) (string, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.baseURL, s.accountSID)

	form := url.Values{}
	form.Set("To", "+91"+to)
	form.Set("From", s.from)
	form.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to build sms request")
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "sms request failed")
	}
	defer resp.Body.Close()

	var body messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errors.Wrap(err, "failed to decode sms response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("sms provider rejected message: status %d: %s", resp.StatusCode, body.ErrorMessage)
	}

	return body.SID, nil
}
