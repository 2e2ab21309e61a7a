package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
)

func TestInvitationText(t *testing.T) {
	inv := Invitation{TeamName: "Core", Email: "bob@example.com", Role: entity.RoleAdmin, InvitedBy: "alice@example.com"}

	assert.Equal(t, "You have been added to Core", inv.Subject())
	assert.Contains(t, inv.Text(), `"Core" as admin by alice@example.com.`)

	inv.InvitedBy = ""
	assert.Contains(t, inv.Text(), `"Core" as admin.`)
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core))

	err := n.SendInvitation(context.Background(), Invitation{TeamID: "t1", Email: "bob@example.com", Role: entity.RoleMember})
	assert.NoError(t, err)

	entries := logs.FilterMessage("invitation").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "t1", fields["team_id"])
		assert.Equal(t, "bob@example.com", fields["email"])
		assert.Equal(t, "member", fields["role"])
	}
}
