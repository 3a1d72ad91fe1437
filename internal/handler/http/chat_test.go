package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/trade-ledger-pro/internal/service"
)

type mockAssistantService struct {
	chatFn func(ctx context.Context, userID int64, message string) (string, error)
}

func (m *mockAssistantService) Chat(ctx context.Context, userID int64, message string) (string, error) {
	return m.chatFn(ctx, userID, message)
}

func TestChat(t *testing.T) {
	assistant := &mockAssistantService{
		chatFn: func(_ context.Context, userID int64, message string) (string, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, "How am I doing?", message)
			return "You are up 150 overall.", nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: sessionAuth(), AssistantService: assistant})

	body := jsonBody(t, map[string]string{"message": "How am I doing?"})
	w := serve(h, authedRequest(http.MethodPost, "/api/chat", body))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reply":"You are up 150 overall."`)
}

func TestChat_AssistantUnavailable(t *testing.T) {
	assistant := &mockAssistantService{
		chatFn: func(_ context.Context, _ int64, _ string) (string, error) {
			return "", service.ErrAssistantUnavailable
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: sessionAuth(), AssistantService: assistant})

	body := jsonBody(t, map[string]string{"message": "hello"})
	w := serve(h, authedRequest(http.MethodPost, "/api/chat", body))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestNews_UnconfiguredFeedIsEmptyList(t *testing.T) {
	// The default test handler carries an unconfigured fetcher.
	h := newTestHandler(t, &service.Services{AuthService: sessionAuth()})

	r := authedRequest(http.MethodGet, "/api/news", "")
	w := serve(h, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
