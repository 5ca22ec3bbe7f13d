package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-api/internal/api"
	"github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/service/auth"
	"github.com/taskboard/taskboard-api/internal/service/tasks"
	"github.com/taskboard/taskboard-api/internal/store/memory"
)

// testEnv wires the full HTTP surface over in-memory stores.
type testEnv struct {
	server *httptest.Server
	auth   *auth.Service
	tasks  *tasks.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := memory.NewUserStore()
	sessions := memory.NewSessionStore()
	taskStore := memory.NewTaskStore()

	taskService := tasks.NewService(taskStore, nil)
	authService := auth.NewService(users, sessions, taskService, nil, nil)

	router := api.NewRouter(
		api.NewAuthHandler(authService),
		api.NewTaskHandler(taskService),
		middleware.NewAuthMiddleware(authService),
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{server: server, auth: authService, tasks: taskService}
}

// envelope mirrors the wire format with the data payload left raw.
type envelope struct {
	ErrorCode string          `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

// doJSON issues a request with an optional JSON body and optional session
// cookie, and decodes the response envelope.
func (e *testEnv) doJSON(
	t *testing.T,
	method, path string,
	body interface{},
	sessionCookie string,
) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionCookie != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: sessionCookie})
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, resp.Body.Close())
	}()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

// register creates a user through the API and returns the session token
// from the Set-Cookie header.
func (e *testEnv) register(t *testing.T, username, password string) string {
	t.Helper()

	raw, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	require.NoError(t, err)

	resp, err := http.Post(
		e.server.URL+"/api/auth/register",
		"application/json",
		bytes.NewReader(raw),
	)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, resp.Body.Close())
	}()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.Empty(t, env.ErrorCode)

	for _, c := range resp.Cookies() {
		if c.Name == "session" {
			require.True(t, c.HttpOnly)
			return c.Value
		}
	}
	t.Fatal("no session cookie in register response")
	return ""
}
