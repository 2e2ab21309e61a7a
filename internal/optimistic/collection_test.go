package optimistic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
)

var errRemote = errors.New("remote write failed")

func issueID(i entity.Issue) string { return i.ID }

func newIssues(t *testing.T, issues ...entity.Issue) *Collection[entity.Issue] {
	t.Helper()
	c := NewCollection("issues", issueID, nil)
	c.Replace(issues)
	return c
}

func baseIssue() entity.Issue {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return entity.Issue{
		ID:        "i1",
		Title:     "Fix login",
		Status:    entity.IssueStatusReview,
		Priority:  entity.IssuePriorityHigh,
		ProjectID: "p1",
		CreatedBy: "u1",
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func setStatus(status entity.IssueStatus, now time.Time) func(entity.Issue) entity.Issue {
	return func(i entity.Issue) entity.Issue {
		return entity.IssuePatch{Status: &status}.Apply(i, now)
	}
}

func TestCollection_UpdateRollsBackOnFailure(t *testing.T) {
	original := baseIssue()
	c := newIssues(t, original)

	var seenDuringWrite entity.Issue
	got, err := c.Update(context.Background(), "i1", setStatus(entity.IssueStatusDone, time.Now()),
		func(ctx context.Context) (*entity.Issue, error) {
			seenDuringWrite, _ = c.Get("i1")
			return nil, errRemote
		})

	require.ErrorIs(t, err, errRemote)
	assert.Equal(t, entity.IssueStatusDone, seenDuringWrite.Status, "patch is visible while the write is in flight")
	assert.Equal(t, original, got)

	after, ok := c.Get("i1")
	require.True(t, ok)
	assert.Equal(t, original, after)
}

func TestCollection_UpdateReconcilesWithCanonicalRecord(t *testing.T) {
	c := newIssues(t, baseIssue())
	local := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	canonical := baseIssue()
	canonical.Status = entity.IssueStatusDone
	canonical.UpdatedAt = local.Add(3 * time.Second)

	got, err := c.Update(context.Background(), "i1", setStatus(entity.IssueStatusDone, local),
		func(ctx context.Context) (*entity.Issue, error) {
			return &canonical, nil
		})

	require.NoError(t, err)
	assert.Equal(t, canonical, got)

	after, _ := c.Get("i1")
	assert.Equal(t, canonical, after)
}

func TestCollection_UpdateKeepsLocalValueWithoutCanonicalRecord(t *testing.T) {
	c := newIssues(t, baseIssue())
	now := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	got, err := c.Update(context.Background(), "i1", setStatus(entity.IssueStatusDone, now),
		func(ctx context.Context) (*entity.Issue, error) {
			return nil, nil
		})

	require.NoError(t, err)
	assert.Equal(t, entity.IssueStatusDone, got.Status)
	assert.Equal(t, now, got.UpdatedAt)

	after, _ := c.Get("i1")
	assert.Equal(t, got, after)
}

func TestCollection_StatusMoveTouchesOnlyStatusAndUpdatedAt(t *testing.T) {
	original := baseIssue()
	c := newIssues(t, original)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	got, err := c.Update(context.Background(), "i1", setStatus(entity.IssueStatusDone, now),
		func(ctx context.Context) (*entity.Issue, error) { return nil, nil })
	require.NoError(t, err)

	expected := original
	expected.Status = entity.IssueStatusDone
	expected.UpdatedAt = now
	assert.Equal(t, expected, got)
}

func TestCollection_UpdateUnknownID(t *testing.T) {
	c := newIssues(t, baseIssue())
	called := false

	_, err := c.Update(context.Background(), "missing", setStatus(entity.IssueStatusDone, time.Now()),
		func(ctx context.Context) (*entity.Issue, error) {
			called = true
			return nil, nil
		})

	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
	assert.False(t, called)
}

func TestCollection_SupersededWriteDoesNotRollBack(t *testing.T) {
	c := newIssues(t, baseIssue())
	now := time.Now()

	_, err := c.Update(context.Background(), "i1", setStatus(entity.IssueStatusTodo, now),
		func(ctx context.Context) (*entity.Issue, error) {
			// второе обновление того же ключа завершается раньше первого
			_, innerErr := c.Update(ctx, "i1", setStatus(entity.IssueStatusDone, now),
				func(ctx context.Context) (*entity.Issue, error) { return nil, nil })
			require.NoError(t, innerErr)
			return nil, errRemote
		})
	require.ErrorIs(t, err, errRemote)

	after, _ := c.Get("i1")
	assert.Equal(t, entity.IssueStatusDone, after.Status)
}

func TestCollection_ReloadDuringWriteKeepsNewerUpdate(t *testing.T) {
	c := newIssues(t, baseIssue())
	now := time.Now()

	_, err := c.Update(context.Background(), "i1", setStatus(entity.IssueStatusDone, now),
		func(ctx context.Context) (*entity.Issue, error) {
			// список перезагружен, пока запись в полете
			c.Replace([]entity.Issue{baseIssue()})

			_, innerErr := c.Update(ctx, "i1", setStatus(entity.IssueStatusTodo, now),
				func(ctx context.Context) (*entity.Issue, error) { return nil, nil })
			require.NoError(t, innerErr)
			return nil, errRemote
		})
	require.ErrorIs(t, err, errRemote)

	after, ok := c.Get("i1")
	require.True(t, ok)
	assert.Equal(t, entity.IssueStatusTodo, after.Status)
}

func TestCollection_ReloadDuringWriteIgnoresStaleSuccess(t *testing.T) {
	c := newIssues(t, baseIssue())
	now := time.Now()

	canonical := baseIssue()
	canonical.Status = entity.IssueStatusDone

	_, err := c.Update(context.Background(), "i1", setStatus(entity.IssueStatusDone, now),
		func(ctx context.Context) (*entity.Issue, error) {
			c.Replace([]entity.Issue{baseIssue()})

			_, innerErr := c.Update(ctx, "i1", setStatus(entity.IssueStatusInProgress, now),
				func(ctx context.Context) (*entity.Issue, error) { return nil, nil })
			require.NoError(t, innerErr)
			return &canonical, nil
		})
	require.NoError(t, err)

	after, _ := c.Get("i1")
	assert.Equal(t, entity.IssueStatusInProgress, after.Status)
}

func TestCollection_ReplaceFiltersMalformedEntries(t *testing.T) {
	c := NewCollection("issues", issueID, nil)

	dropped := c.Replace([]entity.Issue{
		{ID: "a", Title: "first"},
		{ID: "", Title: "half loaded"},
		{ID: "b", Title: "second"},
		{ID: "a", Title: "duplicate"},
	})

	assert.Equal(t, 2, dropped)
	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Title)
	assert.Equal(t, "second", items[1].Title)
}

func TestCollection_InsertAppliedAfterConfirmation(t *testing.T) {
	c := newIssues(t, baseIssue())

	_, err := c.Insert(context.Background(), func(ctx context.Context) (entity.Issue, error) {
		assert.Equal(t, 1, c.Len(), "nothing is added before the store confirms")
		return entity.Issue{}, errRemote
	})
	require.ErrorIs(t, err, errRemote)
	assert.Equal(t, 1, c.Len())

	created, err := c.Insert(context.Background(), func(ctx context.Context) (entity.Issue, error) {
		return entity.Issue{ID: "i2", Title: "New"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "i2", created.ID)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "i2", items[0].ID, "new entries go first")
}

func TestCollection_RemoveAppliedAfterConfirmation(t *testing.T) {
	c := newIssues(t, baseIssue())

	err := c.Remove(context.Background(), "i1", func(ctx context.Context) error {
		_, ok := c.Get("i1")
		assert.True(t, ok)
		return errRemote
	})
	require.ErrorIs(t, err, errRemote)
	_, ok := c.Get("i1")
	assert.True(t, ok)

	require.NoError(t, c.Remove(context.Background(), "i1", func(ctx context.Context) error { return nil }))
	_, ok = c.Get("i1")
	assert.False(t, ok)
}

func TestCollection_WritesAfterCloseAreIgnored(t *testing.T) {
	c := newIssues(t, baseIssue())
	now := time.Now()

	canonical := baseIssue()
	canonical.Status = entity.IssueStatusDone

	got, err := c.Update(context.Background(), "i1", setStatus(entity.IssueStatusDone, now),
		func(ctx context.Context) (*entity.Issue, error) {
			c.Close()
			return &canonical, nil
		})

	require.NoError(t, err)
	assert.Equal(t, canonical, got)
	assert.Equal(t, 0, c.Len())

	_, err = c.Update(context.Background(), "i1", setStatus(entity.IssueStatusTodo, now),
		func(ctx context.Context) (*entity.Issue, error) { return nil, nil })
	assert.ErrorIs(t, err, domainErrors.ErrClosed)

	assert.Equal(t, 0, c.Replace([]entity.Issue{baseIssue()}))
	assert.Equal(t, 0, c.Len())
}
