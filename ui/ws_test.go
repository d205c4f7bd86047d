package ui

import (
	"net/http"
	"strings"
	"testing"

	"scicalc/models"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wsURL(serverURL string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") + "/ws"
}

func TestWebSocketEvaluate(t *testing.T) {
	server := setupTestServer(t, false)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server.URL), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(models.EvaluateRequest{ID: "1", Expression: "sqrt(16) + 2"}))
	var out models.EvaluateResponse
	require.NoError(t, conn.ReadJSON(&out))
	assert.Equal(t, "1", out.ID)
	require.NotNil(t, out.Result)
	assert.Equal(t, 6.0, *out.Result)

	// ошибка не закрывает соединение
	require.NoError(t, conn.WriteJSON(models.EvaluateRequest{ID: "2", Expression: "log(-1)"}))
	out = models.EvaluateResponse{}
	require.NoError(t, conn.ReadJSON(&out))
	assert.Equal(t, "2", out.ID)
	assert.Equal(t, "domain_error", out.Kind)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	out = models.EvaluateResponse{}
	require.NoError(t, conn.ReadJSON(&out))
	assert.Equal(t, "invalid message", out.Error)

	require.NoError(t, conn.WriteJSON(models.EvaluateRequest{ID: "3", Expression: "-3 + 5"}))
	out = models.EvaluateResponse{}
	require.NoError(t, conn.ReadJSON(&out))
	require.NotNil(t, out.Result)
	assert.Equal(t, 2.0, *out.Result)
}

func TestWebSocketRequiresToken(t *testing.T) {
	server := setupTestServer(t, true)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(server.URL), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
