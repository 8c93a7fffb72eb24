package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhealth/intake/pkg/models"
)

func testNotification() models.Notification {
	return models.Notification{
		ID:           "ntf-1",
		SessionToken: "sess-1",
		AdminUserID:  "adm-1",
		Priority:     models.PriorityUrgent,
		Title:        "URGENT: high suicide risk detected in intake session",
		Body:         "Session sess-1 raised high_suicide_risk.",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestNewWebhookSinkDisabledWithoutURL(t *testing.T) {
	assert.Nil(t, NewWebhookSink(Config{}))
}

func TestDeliverPostsPayload(t *testing.T) {
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sink := NewWebhookSink(Config{WebhookURL: srv.URL})
	require.NotNil(t, sink)

	admin := models.AdminUser{ID: "adm-1", Email: "oncall@clinic.example", Active: true}
	require.NoError(t, sink.Deliver(t.Context(), admin, testNotification()))

	assert.Equal(t, "oncall@clinic.example", got.AdminEmail)
	assert.Equal(t, "sess-1", got.SessionToken)
	assert.Equal(t, "urgent", got.Priority)
	assert.Contains(t, got.Title, "high suicide risk")
}

func TestDeliverRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sink := NewWebhookSink(Config{WebhookURL: srv.URL})
	err := sink.Deliver(t.Context(), models.AdminUser{ID: "adm-1"}, testNotification())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestDeliverTimesOut(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	sink := NewWebhookSink(Config{WebhookURL: srv.URL, Timeout: 50 * time.Millisecond})
	err := sink.Deliver(t.Context(), models.AdminUser{ID: "adm-1"}, testNotification())
	require.Error(t, err)
}
