package leadform

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/alicia-green/storefront/internal/handlers"
	"github.com/alicia-green/storefront/internal/models"
	"github.com/alicia-green/storefront/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreAnyFunction("net/http.(*persistConn).writeLoop"),
	)
}

func TestClient_SubmitLead(t *testing.T) {
	var path, contentType string
	var body map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", srv.Client())
	resp, err := c.SubmitLead(context.Background(), DefaultFields().request(""))
	require.NoError(t, err)

	assert.True(t, resp.Success())
	assert.Equal(t, LeadPath, path)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "Restaurant", body["type"])
	assert.Equal(t, []any{}, body["flavorPrefs"])
}

func TestClient_SubmitLead_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"message":"Name is required."}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL, srv.Client()).SubmitLead(context.Background(), models.LeadRequest{})
	require.NoError(t, err)

	assert.False(t, resp.Success())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Name is required.", resp.Body.Message)
}

func TestClient_SubmitLead_UndecodableResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).SubmitLead(context.Background(), models.LeadRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

type recordingNotifier struct {
	mu    sync.Mutex
	texts []string
}

func (n *recordingNotifier) Notify(ctx context.Context, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.texts = append(n.texts, text)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.texts)
}

func newLeadServer(t *testing.T, n service.Notifier) *httptest.Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handlers.NewLeadHandler(service.NewLeadService(n, nil, log), nil, 64<<10, log)

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+LeadPath, h.SubmitLead)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestForm_AgainstLeadEndpoint(t *testing.T) {
	n := &recordingNotifier{}
	srv := newLeadServer(t, n)
	f := New(NewClient(srv.URL, srv.Client()))

	f.Edit(func(fields *Fields) {
		fields.Name = "Ana"
		fields.Company = "Bistro"
		fields.Email = "not-an-email"
	})
	state, err := f.Submit(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, State{Status: StatusFailure, Notice: "Email looks invalid."}, state)
	assert.Zero(t, n.count())

	f.Edit(func(fields *Fields) { fields.Email = "ana@bistro.com" })
	f.ToggleFlavor(models.FlavorMild)
	state, err = f.Submit(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, State{Status: StatusSuccess, Notice: MsgSuccess}, state)

	require.Equal(t, 1, n.count())
	assert.Contains(t, n.texts[0], "Name: Ana")
	assert.Contains(t, n.texts[0], "Flavor prefs: Mild")
}

func TestForm_HoneypotAgainstLeadEndpoint(t *testing.T) {
	n := &recordingNotifier{}
	srv := newLeadServer(t, n)
	f := New(NewClient(srv.URL, srv.Client()))
	f.Edit(fillValid)

	state, err := f.Submit(context.Background(), "http://spam.example")
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, state.Status)
	assert.Zero(t, n.count())
}
