package chat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func postChat(t *testing.T, handler http.HandlerFunc, body string) (*httptest.ResponseRecorder, chatResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	var resp chatResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestChatHandlerRepliesWith200(t *testing.T) {
	bot := newTestBot(newFakeStore(), testNow)
	handler := ChatHandler(bot, zap.NewNop())

	rec, resp := postChat(t, handler, `{"message":"remind me to call mom at 6 PM"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, resp.Reply, "call mom")
	assert.Contains(t, resp.Reply, "browser")

	// Command failures are still 200 with an explanatory reply.
	rec, resp = postChat(t, handler, `{"message":"delete task 9"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, replyBadOrdinal, resp.Reply)
}

func TestChatHandlerAbsentMessageGetsHelp(t *testing.T) {
	bot := newTestBot(newFakeStore(), testNow)
	handler := ChatHandler(bot, zap.NewNop())

	rec, resp := postChat(t, handler, `{"phone":"+15551234567"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, replyHelp, resp.Reply)
}

func TestChatHandlerMalformedBody(t *testing.T) {
	bot := newTestBot(newFakeStore(), testNow)
	handler := ChatHandler(bot, zap.NewNop())

	rec, _ := postChat(t, handler, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatHandlerRejectsGet(t *testing.T) {
	bot := newTestBot(newFakeStore(), testNow)
	handler := ChatHandler(bot, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	handler := HealthHandler(true, false)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.True(t, resp.Notifications["sms"])
	assert.False(t, resp.Notifications["email"])
}
