package ui

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"scicalc/config"
	"scicalc/core/evaluator"
	"scicalc/core/interpreter"
	"scicalc/metrics"
	"scicalc/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const tokenTTL = 60 * time.Minute

type WebInterface struct {
	interpreter *interpreter.Interpreter
	cfg         *config.Config
	log         *logrus.Entry
	upgrader    websocket.Upgrader
}

func NewWebInterface(i *interpreter.Interpreter, cfg *config.Config, log *logrus.Entry) *WebInterface {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &WebInterface{
		interpreter: i,
		cfg:         cfg,
		log:         log.WithField("component", "web"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Middleware для метрик и идентификатора запроса
func (w *WebInterface) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(wr http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		wr.Header().Set("X-Request-ID", requestID)

		// Wrapper для захвата статус кода
		wrapped := &responseWriter{ResponseWriter: wr, statusCode: 200}

		next(wrapped, r)

		duration := time.Since(start).Seconds()

		metrics.HttpRequestsTotal.WithLabelValues(
			r.Method,
			r.URL.Path,
			strconv.Itoa(wrapped.statusCode),
		).Inc()

		metrics.HttpRequestDuration.WithLabelValues(
			r.Method,
			r.URL.Path,
		).Observe(duration)

		w.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     wrapped.statusCode,
			"duration":   duration,
		}).Debug("request")
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// api - метрики плюс проверка токена, если она включена
func (w *WebInterface) api(next http.HandlerFunc) http.HandlerFunc {
	if w.cfg.AuthEnabled {
		next = w.authMiddleware(next)
	}
	return w.metricsMiddleware(next)
}

// Handler - все маршруты, обернутые в CORS
func (w *WebInterface) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/auth/login", w.metricsMiddleware(w.handleLogin))
	mux.HandleFunc("/api/evaluate", w.api(w.handleEvaluate))
	mux.HandleFunc("/api/execute", w.api(w.handleExecute))
	mux.HandleFunc("/api/memory", w.api(w.handleMemory))
	mux.HandleFunc("/api/history", w.api(w.handleHistory))
	mux.HandleFunc("/api/clear-history", w.api(w.handleClearHistory))
	mux.HandleFunc("/ws", w.handleWebSocket)

	// Prometheus metrics endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Health check endpoint
	mux.HandleFunc("/health", func(wr http.ResponseWriter, r *http.Request) {
		wr.WriteHeader(http.StatusOK)
		wr.Write([]byte("OK"))
	})

	// Static files
	if info, err := os.Stat(w.cfg.StaticDir); err == nil && info.IsDir() {
		mux.Handle("/", http.FileServer(http.Dir(w.cfg.StaticDir)))
	}

	return cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}).Handler(mux)
}

func (w *WebInterface) Start(addr string) error {
	w.log.WithFields(logrus.Fields{"addr": addr, "auth": w.cfg.AuthEnabled}).Info("HTTP server starting")
	return http.ListenAndServe(addr, w.Handler())
}

func writeJSON(wr http.ResponseWriter, status int, v interface{}) {
	wr.Header().Set("Content-Type", "application/json")
	wr.WriteHeader(status)
	json.NewEncoder(wr).Encode(v)
}

// errorResponse - ответ с описанием ошибки и ее видом, если он известен
func errorResponse(id string, err error) models.EvaluateResponse {
	return models.EvaluateResponse{
		ID:    id,
		Error: err.Error(),
		Kind:  string(evaluator.KindOf(err)),
	}
}

func (w *WebInterface) handleEvaluate(wr http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(wr, "only POST", http.StatusMethodNotAllowed)
		return
	}

	var req models.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(wr, http.StatusBadRequest, models.EvaluateResponse{Error: "invalid request body"})
		return
	}

	result, err := w.interpreter.Evaluate(req.Expression)
	if err != nil {
		writeJSON(wr, http.StatusUnprocessableEntity, errorResponse(req.ID, err))
		return
	}

	writeJSON(wr, http.StatusOK, models.NewEvaluateResponse(req.ID, result))
}

func (w *WebInterface) handleExecute(wr http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(wr, "only POST", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Input string `json:"input"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(wr, http.StatusBadRequest, models.EvaluateResponse{Error: "invalid request body"})
		return
	}

	result, err := w.interpreter.Execute(req.Input)
	if err != nil {
		writeJSON(wr, http.StatusUnprocessableEntity, errorResponse("", err))
		return
	}

	if v, ok := result.(float64); ok {
		writeJSON(wr, http.StatusOK, models.NewEvaluateResponse("", v))
		return
	}
	writeJSON(wr, http.StatusOK, map[string]interface{}{"result": result})
}

func (w *WebInterface) handleMemory(wr http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(wr, http.StatusOK, models.MemoryResponse{Value: w.interpreter.MemoryRecall()})
		return
	case http.MethodPost:
	default:
		http.Error(wr, "only GET or POST", http.StatusMethodNotAllowed)
		return
	}

	var req models.MemoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(wr, http.StatusBadRequest, models.EvaluateResponse{Error: "invalid request body"})
		return
	}

	var err error
	switch strings.ToLower(req.Op) {
	case "add":
		_, err = w.interpreter.MemoryAdd(req.Expression)
	case "subtract":
		_, err = w.interpreter.MemorySubtract(req.Expression)
	case "clear":
		w.interpreter.MemoryClear()
	default:
		err = fmt.Errorf("unknown memory op %q", req.Op)
	}
	if err != nil {
		writeJSON(wr, http.StatusUnprocessableEntity, errorResponse("", err))
		return
	}

	writeJSON(wr, http.StatusOK, models.MemoryResponse{Value: w.interpreter.MemoryRecall()})
}

func (w *WebInterface) handleHistory(wr http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("q"); q != "" {
		writeJSON(wr, http.StatusOK, w.interpreter.SearchHistory(q))
		return
	}

	limit := 10
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		limit = l
	}
	writeJSON(wr, http.StatusOK, w.interpreter.GetHistory(limit))
}

func (w *WebInterface) handleClearHistory(wr http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(wr, "only POST", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(wr, http.StatusOK, map[string]int{"cleared": w.interpreter.ClearHistory()})
}

func (w *WebInterface) createToken(username string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(w.cfg.JWTSecret))
}

func (w *WebInterface) verifyToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(w.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}

// bearerToken - токен из заголовка Authorization или параметра token (для websocket)
func bearerToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return r.URL.Query().Get("token")
}

func (w *WebInterface) authMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(wr http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			http.Error(wr, "Missing authorization header", http.StatusUnauthorized)
			return
		}

		username, err := w.verifyToken(tokenString)
		if err != nil {
			http.Error(wr, "Invalid token", http.StatusUnauthorized)
			return
		}

		r.Header.Set("X-Username", username)
		next(wr, r)
	}
}

func (w *WebInterface) handleLogin(wr http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(wr, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(wr, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Username != w.cfg.Username || req.Password != w.cfg.Password {
		w.log.WithField("username", req.Username).Warn("login rejected")
		http.Error(wr, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := w.createToken(req.Username)
	if err != nil {
		http.Error(wr, "Failed to create token", http.StatusInternalServerError)
		return
	}

	w.log.WithField("username", req.Username).Info("user logged in")
	writeJSON(wr, http.StatusOK, models.LoginResponse{Token: token})
}
