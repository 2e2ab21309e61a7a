package workspace

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
	"github.com/DB3NJ4/StackFlow/internal/session"
)

const secret = "workspace-secret"

func signIn(t *testing.T, m *session.Manager) *entity.User {
	t.Helper()
	now := time.Now()
	user := entity.User{ID: uuid.NewString(), Email: "bob@example.com"}
	token, err := session.NewToken([]byte(secret), "", user, now.Add(-time.Minute), now.Add(time.Hour))
	require.NoError(t, err)

	authed, err := m.Authenticate(context.Background(), token)
	require.NoError(t, err)
	return authed
}

func TestRegistry_GetIsLazyAndStable(t *testing.T) {
	r := NewRegistry(nil, nil)

	first := r.Get("u1")
	second := r.Get("u1")
	other := r.Get("u2")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_SignOutDropsWorkspace(t *testing.T) {
	manager := session.NewManager(secret, "", nil)
	r := NewRegistry(manager, nil)
	defer r.Close()

	user := signIn(t, manager)
	ws := r.Get(user.ID)
	ws.Issues.Replace([]entity.Issue{{ID: "i1", Title: "a", Status: entity.IssueStatusTodo}})

	// запись начата до выхода и завершается после него
	var late error
	done := make(chan struct{})
	release := make(chan struct{})
	go func() {
		defer close(done)
		_, late = ws.Issues.Update(context.Background(), "i1",
			func(i entity.Issue) entity.Issue { i.Status = entity.IssueStatusDone; return i },
			func(ctx context.Context) (*entity.Issue, error) {
				<-release
				return nil, nil
			})
	}()

	require.Eventually(t, func() bool {
		got, _ := ws.Issues.Get("i1")
		return got.Status == entity.IssueStatusDone
	}, time.Second, time.Millisecond)

	require.NoError(t, manager.SignOut(session.WithUser(context.Background(), user)))
	close(release)
	<-done

	require.NoError(t, late)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0, ws.Issues.Len())

	_, err := ws.Issues.Update(context.Background(), "i1",
		func(i entity.Issue) entity.Issue { return i },
		func(ctx context.Context) (*entity.Issue, error) { return nil, nil })
	assert.ErrorIs(t, err, domainErrors.ErrClosed)

	assert.NotSame(t, ws, r.Get(user.ID), "a new session starts with a fresh workspace")
}

func TestRegistry_Close(t *testing.T) {
	manager := session.NewManager(secret, "", nil)
	r := NewRegistry(manager, nil)

	user := signIn(t, manager)
	ws := r.Get(user.ID)
	r.Close()

	assert.Equal(t, 0, r.Len())
	_, err := ws.Projects.Insert(context.Background(), func(ctx context.Context) (entity.VisibleProject, error) {
		return entity.VisibleProject{}, nil
	})
	assert.ErrorIs(t, err, domainErrors.ErrClosed)

	require.NoError(t, manager.SignOut(session.WithUser(context.Background(), user)))
	assert.Equal(t, 0, r.Len())
}
