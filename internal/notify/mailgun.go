package notify

import (
	"context"
	"fmt"

	"github.com/mailgun/mailgun-go/v4"
	"go.uber.org/zap"
)

// MailgunNotifier отправляет приглашения письмом через Mailgun
type MailgunNotifier struct {
	mg     mailgun.Mailgun
	sender string
	log    *zap.Logger
}

// NewMailgunNotifier создает уведомитель для домена Mailgun
func NewMailgunNotifier(domain, apiKey, sender string, log *zap.Logger) *MailgunNotifier {
	return &MailgunNotifier{
		mg:     mailgun.NewMailgun(domain, apiKey),
		sender: sender,
		log:    log.Named("notify"),
	}
}

// SendInvitation отправляет письмо о приглашении в команду
func (n *MailgunNotifier) SendInvitation(ctx context.Context, inv Invitation) error {
	message := n.mg.NewMessage(n.sender, inv.Subject(), inv.Text(), inv.Email)

	_, id, err := n.mg.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send invitation to %s: %w", inv.Email, err)
	}

	n.log.Debug("invitation sent", zap.String("team_id", inv.TeamID), zap.String("message_id", id))
	return nil
}
