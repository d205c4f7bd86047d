package ui

import (
	"encoding/json"
	"errors"
	"net/http"

	"scicalc/metrics"
	"scicalc/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const maxMessageSize = 4096

// handleWebSocket - каждое сообщение {id, expression} вычисляется отдельно,
// ошибка одного выражения не закрывает соединение
func (w *WebInterface) handleWebSocket(wr http.ResponseWriter, r *http.Request) {
	if w.cfg.AuthEnabled {
		if _, err := w.verifyToken(bearerToken(r)); err != nil {
			http.Error(wr, "Invalid token", http.StatusUnauthorized)
			return
		}
	}

	conn, err := w.upgrader.Upgrade(wr, r, nil)
	if err != nil {
		w.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	session := uuid.New().String()
	logger := w.log.WithField("session", session)
	logger.Info("websocket connected")

	metrics.ActiveWebSocketConnections.Inc()
	defer metrics.ActiveWebSocketConnections.Dec()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WithError(err).Warn("websocket read failed")
			}
			break
		}

		if err := conn.WriteJSON(w.evaluateMessage(data, logger)); err != nil {
			logger.WithError(err).Warn("websocket write failed")
			break
		}
	}

	logger.Info("websocket disconnected")
}

func (w *WebInterface) evaluateMessage(data []byte, logger *logrus.Entry) models.EvaluateResponse {
	var req models.EvaluateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		logger.WithError(err).Debug("bad websocket message")
		return errorResponse("", errors.New("invalid message"))
	}

	result, err := w.interpreter.Evaluate(req.Expression)
	if err != nil {
		return errorResponse(req.ID, err)
	}
	return models.NewEvaluateResponse(req.ID, result)
}
