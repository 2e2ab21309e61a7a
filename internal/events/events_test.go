package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventJSON(t *testing.T) {
	event := New(ProjectShared, "p1", "u1", map[string]string{"team_id": "t1", "access_level": "edit"})

	body, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "project.shared", decoded["type"])
	assert.Equal(t, "p1", decoded["entity_id"])
	assert.Equal(t, "u1", decoded["actor_id"])
	assert.Equal(t, map[string]any{"team_id": "t1", "access_level": "edit"}, decoded["attributes"])
	assert.NotEmpty(t, decoded["occurred_at"])
}

func TestRecorder(t *testing.T) {
	ctx := context.Background()
	r := &Recorder{}

	require.NoError(t, r.Publish(ctx, New(IssueCreated, "i1", "u1", nil)))
	require.NoError(t, r.Publish(ctx, New(IssueDeleted, "i1", "u1", nil)))
	assert.Equal(t, []Type{IssueCreated, IssueDeleted}, r.Types())

	boom := errors.New("broker down")
	r.Fail(boom)
	assert.ErrorIs(t, r.Publish(ctx, New(TeamDeleted, "t1", "u1", nil)), boom)
	assert.Len(t, r.Events(), 2)
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	assert.NoError(t, p.Publish(context.Background(), New(TeamDeleted, "t1", "u1", nil)))
	assert.NoError(t, p.Close())
}
