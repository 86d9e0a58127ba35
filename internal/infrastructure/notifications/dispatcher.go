package notifications

import (
	"context"
	"fmt"

	"github.com/sachinkumar2222/Productr/domain"
)

// Dispatcher routes a delivery to the sender for the recipient's channel.
type Dispatcher struct {
	email domain.NotificationSender
	sms   domain.NotificationSender
}

// NewDispatcher creates a channel-dispatching sender.
func NewDispatcher(email, sms domain.NotificationSender) *Dispatcher {
	return &Dispatcher{email: email, sms: sms}
}

// Deliver implements domain.NotificationSender.
func (d *Dispatcher) Deliver(ctx context.Context, key domain.RecipientKey, code string) error {
	switch key.Channel {
	case domain.ChannelEmail:
		return d.email.Deliver(ctx, key, code)
	case domain.ChannelPhone:
		return d.sms.Deliver(ctx, key, code)
	default:
		return fmt.Errorf("unknown recipient channel %q", key.Channel)
	}
}

var _ domain.NotificationSender = (*Dispatcher)(nil)
