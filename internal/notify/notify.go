// Package notify отправляет уведомления о приглашениях в команду
package notify

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
)

// Invitation приглашение в команду
type Invitation struct {
	TeamID    string
	TeamName  string
	Email     string
	Role      entity.Role
	InvitedBy string
}

// Subject тема письма
func (i Invitation) Subject() string {
	return fmt.Sprintf("You have been added to %s", i.TeamName)
}

// Text текст письма
func (i Invitation) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello,\n\nYou have been added to the team %q as %s", i.TeamName, i.Role)
	if i.InvitedBy != "" {
		fmt.Fprintf(&b, " by %s", i.InvitedBy)
	}
	b.WriteString(".\nSign in to StackFlow to see the team's projects.\n")
	return b.String()
}

type Notifier interface {
	SendInvitation(ctx context.Context, inv Invitation) error
}

// LogNotifier только пишет приглашение в лог
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogNotifier{log: log.Named("notify")}
}

func (n *LogNotifier) SendInvitation(_ context.Context, inv Invitation) error {
	n.log.Info("invitation",
		zap.String("team_id", inv.TeamID),
		zap.String("email", inv.Email),
		zap.String("role", string(inv.Role)),
	)
	return nil
}
