package notifications

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/sachinkumar2222/Productr/domain"
)

// TwilioSender delivers codes over SMS.
type TwilioSender struct {
	client     *twilio.RestClient
	fromNumber string
}

// NewTwilioSender creates a new Twilio SMS sender.
func NewTwilioSender(accountSID, authToken, fromNumber string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioSender{
		client:     client,
		fromNumber: fromNumber,
	}
}

// Deliver implements domain.NotificationSender for phone recipients.
func (t *TwilioSender) Deliver(_ context.Context, key domain.RecipientKey, code string) error {
	// If credentials are not configured, log instead of sending
	if t.fromNumber == "" {
		fmt.Printf("[MOCK SMS] To: %s, Code: %s\n", key.Value, code)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(key.Value)
	params.SetFrom(t.fromNumber)
	params.SetBody(fmt.Sprintf("Your Productr verification code is: %s", code))

	_, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	return nil
}

var _ domain.NotificationSender = (*TwilioSender)(nil)
