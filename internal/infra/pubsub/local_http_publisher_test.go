package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"boutique/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishCatalogEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		requestID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())

	event := &service.CatalogEvent{
		RequestID: "req-1",
		EventID:   "evt-1",
		Type:      service.CatalogEventTypePublished,
		ProductID: "prod-1",
		Name:      "Linen Shirt",
		Category:  "shirts",
	}

	err := publisher.PublishCatalogEvent(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, service.CatalogEventTypePublished, received.Message.Attributes["type"])
	assert.Equal(t, "prod-1", received.Message.Attributes["product_id"])

	decoded, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var payload service.CatalogEvent
	require.NoError(t, json.Unmarshal(decoded, &payload))
	assert.Equal(t, "Linen Shirt", payload.Name)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())

	err := publisher.PublishCatalogEvent(context.Background(), &service.CatalogEvent{EventID: "evt-1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status")
}
