package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
)

const (
	testSecret = "test-secret"
	testIssuer = "stackflow-auth"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestManager(t *testing.T) (*Manager, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	m := NewManager(testSecret, testIssuer, nil)
	m.now = c.now
	return m, c
}

func mint(t *testing.T, user entity.User, issuedAt time.Time, ttl time.Duration) string {
	t.Helper()
	token, err := NewToken([]byte(testSecret), testIssuer, user, issuedAt, issuedAt.Add(ttl))
	require.NoError(t, err)
	return token
}

func testUser() entity.User {
	return entity.User{ID: uuid.NewString(), Email: "ann@example.com"}
}

func TestManager_Authenticate(t *testing.T) {
	m, c := newTestManager(t)
	user := testUser()

	got, err := m.Authenticate(context.Background(), mint(t, user, c.t, time.Hour))

	require.NoError(t, err)
	assert.Equal(t, user, *got)
}

func TestManager_AuthenticateRejects(t *testing.T) {
	m, c := newTestManager(t)
	user := testUser()

	otherIssuer, err := NewToken([]byte(testSecret), "someone-else", user, c.t, c.t.Add(time.Hour))
	require.NoError(t, err)

	wrongKey, err := NewToken([]byte("other-secret"), testIssuer, user, c.t, c.t.Add(time.Hour))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID, Issuer: testIssuer},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noIssuedAt, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(c.t.Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(c.t.Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "expired", token: mint(t, user, c.t.Add(-2*time.Hour), time.Hour)},
		{name: "wrong key", token: wrongKey},
		{name: "wrong issuer", token: otherIssuer},
		{name: "no expiry", token: noExpiry},
		{name: "unexpected algorithm", token: hs512},
		{name: "subject is not an id", token: mint(t, entity.User{ID: "admin"}, c.t, time.Hour)},
		{name: "no issue time", token: noIssuedAt},
		{name: "lifetime too long", token: mint(t, user, c.t, MaxTokenLifetime+time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Authenticate(context.Background(), tt.token)

			assert.Nil(t, got)
			assert.ErrorIs(t, err, domainErrors.ErrUnauthenticated)

			var domainErr *domainErrors.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domainErrors.CodeUnauthenticated, domainErr.Code)
		})
	}
}

func TestManager_SignedInEmittedOncePerSession(t *testing.T) {
	m, c := newTestManager(t)
	user := testUser()

	var events []Event
	unsubscribe := m.OnAuthChange(func(e Event) { events = append(events, e) })
	defer unsubscribe()

	token := mint(t, user, c.t, time.Hour)
	for i := 0; i < 3; i++ {
		_, err := m.Authenticate(context.Background(), token)
		require.NoError(t, err)
	}

	require.Len(t, events, 1)
	assert.Equal(t, SignedIn, events[0].Type)
	assert.Equal(t, user.ID, events[0].User.ID)
}

func TestManager_SignOut(t *testing.T) {
	m, c := newTestManager(t)
	user := testUser()

	var events []Event
	m.OnAuthChange(func(e Event) { events = append(events, e) })

	oldToken := mint(t, user, c.t, time.Hour)
	authed, err := m.Authenticate(context.Background(), oldToken)
	require.NoError(t, err)

	ctx := WithUser(context.Background(), authed)
	require.NoError(t, m.SignOut(ctx))

	require.Len(t, events, 2)
	assert.Equal(t, SignedOut, events[1].Type)
	assert.Equal(t, user.ID, events[1].User.ID)

	_, err = m.Authenticate(context.Background(), oldToken)
	assert.ErrorIs(t, err, domainErrors.ErrUnauthenticated, "token issued before sign out is refused")

	c.t = c.t.Add(time.Minute)
	_, err = m.Authenticate(context.Background(), mint(t, user, c.t, time.Hour))
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, SignedIn, events[2].Type)
}

func TestManager_SignInWithinSignOutSecond(t *testing.T) {
	m, c := newTestManager(t)
	user := testUser()

	oldToken := mint(t, user, c.t.Add(-time.Minute), time.Hour)
	unseen := mint(t, user, c.t.Add(-30*time.Second), time.Hour)
	authed, err := m.Authenticate(context.Background(), oldToken)
	require.NoError(t, err)

	c.t = c.t.Add(600 * time.Millisecond)
	require.NoError(t, m.SignOut(WithUser(context.Background(), authed)))

	_, err = m.Authenticate(context.Background(), oldToken)
	assert.ErrorIs(t, err, domainErrors.ErrUnauthenticated)
	_, err = m.Authenticate(context.Background(), unseen)
	assert.ErrorIs(t, err, domainErrors.ErrUnauthenticated, "token issued before sign out is refused")

	c.t = c.t.Add(100 * time.Millisecond)
	_, err = m.Authenticate(context.Background(), mint(t, user, c.t, time.Hour))
	assert.NoError(t, err, "token issued in the same second as sign out is accepted")
}

func TestManager_SignOutRecordsArePruned(t *testing.T) {
	m, c := newTestManager(t)
	first, second := testUser(), testUser()

	require.NoError(t, m.SignOut(WithUser(context.Background(), &first)))
	require.Len(t, m.signedOut, 1)

	c.t = c.t.Add(MaxTokenLifetime + time.Minute)
	require.NoError(t, m.SignOut(WithUser(context.Background(), &second)))

	require.Len(t, m.signedOut, 1)
	_, ok := m.signedOut[second.ID]
	assert.True(t, ok)
}

func TestManager_SignOutWithoutUser(t *testing.T) {
	m, _ := newTestManager(t)

	err := m.SignOut(context.Background())

	assert.ErrorIs(t, err, domainErrors.ErrUnauthenticated)
}

func TestManager_Unsubscribe(t *testing.T) {
	m, c := newTestManager(t)

	calls := 0
	unsubscribe := m.OnAuthChange(func(Event) { calls++ })
	unsubscribe()
	unsubscribe()

	_, err := m.Authenticate(context.Background(), mint(t, testUser(), c.t, time.Hour))
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestManager_CurrentUser(t *testing.T) {
	m, _ := newTestManager(t)
	user := testUser()

	_, err := m.CurrentUser(context.Background())
	assert.ErrorIs(t, err, domainErrors.ErrUnauthenticated)

	got, err := m.CurrentUser(WithUser(context.Background(), &user))
	require.NoError(t, err)
	assert.Equal(t, user, *got)

	_, err = m.CurrentUser(WithUser(context.Background(), &entity.User{}))
	assert.ErrorIs(t, err, domainErrors.ErrUnauthenticated)
}
