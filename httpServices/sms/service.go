package sms

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SMSClient talks to the external SMS gateway over HTTP
type SMSClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	sender     string
}

// NewClient creates a gateway client. An empty baseURL disables sending;
// Send then fails fast so callers can record the failure without a timeout.
func NewClient(baseURL, apiKey, sender string) *SMSClient {
	return &SMSClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		sender:  sender,
	}
}

// Send delivers one SMS through the gateway
func (c *SMSClient) Send(phone, message string) error {
	if c.baseURL == "" {
		return errors.New("SMS gateway is not configured")
	}

	body, err := json.Marshal(SendSMSRequest{
		To:      phone,
		From:    c.sender,
		Message: message,
	})
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequest("POST", c.baseURL+"/messages", bytes.NewBuffer(body))
	if err != nil {
		return err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return errors.New("SMS gateway returned non-OK status: " + resp.Status)
	}

	var apiResp SendSMSResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return err
	}

	if strings.ToLower(apiResp.Status) != "success" && strings.ToLower(apiResp.Status) != "queued" {
		return fmt.Errorf("SMS gateway rejected the message: %s", apiResp.Error)
	}

	return nil
}
