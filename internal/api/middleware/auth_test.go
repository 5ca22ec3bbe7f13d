package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

type stubResolver struct {
	userID domain.UserID
	err    error
}

func (s *stubResolver) AuthorizedUserID(ctx context.Context, token domain.SessionToken) (domain.UserID, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.userID, nil
}

func runAuthenticated(t *testing.T, resolver middleware.SessionResolver, cookie string) (*httptest.ResponseRecorder, domain.UserID, bool) {
	t.Helper()

	var (
		gotUserID domain.UserID
		gotOK     bool
		reached   bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		gotUserID, gotOK = middleware.GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.NewAuthMiddleware(resolver).Authenticate(next)

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: cookie})
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !reached {
		return rec, 0, false
	}
	return rec, gotUserID, gotOK
}

func TestAuthenticatePassesUserID(t *testing.T) {
	token, err := domain.NewSessionToken()
	require.NoError(t, err)

	rec, userID, ok := runAuthenticated(t, &stubResolver{userID: 7}, token.String())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ok)
	assert.Equal(t, domain.UserID(7), userID)
}

func TestAuthenticateRejectsMissingCookie(t *testing.T) {
	rec, _, ok := runAuthenticated(t, &stubResolver{userID: 7}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)
}

func TestAuthenticateRejectsMalformedToken(t *testing.T) {
	rec, _, ok := runAuthenticated(t, &stubResolver{userID: 7}, "short")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)
}

func TestAuthenticateRejectsUnknownSession(t *testing.T) {
	resolver := &stubResolver{err: store.ErrSessionNotFound}

	rec, _, ok := runAuthenticated(t, resolver, "00000000000000000000000000000000")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)
}

func TestAuthenticateSurfacesResolverFailure(t *testing.T) {
	resolver := &stubResolver{err: errors.New("connection reset")}

	rec, _, ok := runAuthenticated(t, resolver, "00000000000000000000000000000000")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, ok)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
