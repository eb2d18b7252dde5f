package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	boardservice "taskboard/contexts/taskboard/board-service"
	domainerrors "taskboard/contexts/taskboard/board-service/domain/errors"
	"taskboard/contexts/taskboard/board-service/domain/entities"
	httptransport "taskboard/contexts/taskboard/board-service/transport/http"

	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "taskboard/internal/platform/httpserver/docs"
)

type Server struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	addr        string
	corsOrigins []string
	board       boardservice.Module
}

func New(board boardservice.Module, logger *slog.Logger, addr string, corsOrigins []string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:         http.NewServeMux(),
		logger:      logger,
		addr:        addr,
		corsOrigins: corsOrigins,
	}
	s.board = board
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.handler())
}

// handler wraps the mux with the CORS and request-id middleware chain.
func (s *Server) handler() http.Handler {
	corsMiddleware := cors.Handler(cors.Options{
		AllowedOrigins:   s.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	return s.withRequestID(corsMiddleware(s.mux))
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /tokens/auth", s.handleCreateToken)

	s.mux.HandleFunc("POST /users", s.handleCreateUser)
	s.mux.HandleFunc("GET /users", s.handleListUsers)
	s.mux.HandleFunc("GET /users/me", s.handleMe)
	s.mux.HandleFunc("GET /users/{userId}", s.handleGetUser)
	s.mux.HandleFunc("PUT /users/{userId}", s.handleUpdateUser)
	s.mux.HandleFunc("DELETE /users/{userId}", s.handleDeleteUser)

	s.mux.HandleFunc("POST /users/{userId}/columns", s.handleCreateColumn)
	s.mux.HandleFunc("GET /users/{userId}/columns", s.handleListColumns)
	s.mux.HandleFunc("GET /users/{userId}/columns/{columnId}", s.handleGetColumn)
	s.mux.HandleFunc("PUT /users/{userId}/columns/{columnId}", s.handleUpdateColumn)
	s.mux.HandleFunc("DELETE /users/{userId}/columns/{columnId}", s.handleDeleteColumn)

	s.mux.HandleFunc("POST /users/{userId}/columns/{columnId}/cards", s.handleCreateCard)
	s.mux.HandleFunc("GET /users/{userId}/columns/{columnId}/cards", s.handleListCards)
	s.mux.HandleFunc("GET /users/{userId}/columns/{columnId}/cards/{cardId}", s.handleGetCard)
	s.mux.HandleFunc("PUT /users/{userId}/columns/{columnId}/cards/{cardId}", s.handleUpdateCard)
	s.mux.HandleFunc("DELETE /users/{userId}/columns/{columnId}/cards/{cardId}", s.handleDeleteCard)

	s.mux.HandleFunc("POST /users/{userId}/columns/{columnId}/cards/{cardId}/comments", s.handleCreateComment)
	s.mux.HandleFunc("GET /users/{userId}/columns/{columnId}/cards/{cardId}/comments", s.handleListComments)
	s.mux.HandleFunc("GET /users/{userId}/columns/{columnId}/cards/{cardId}/comments/{commentId}", s.handleGetComment)
	s.mux.HandleFunc("PUT /users/{userId}/columns/{columnId}/cards/{cardId}/comments/{commentId}", s.handleUpdateComment)
	s.mux.HandleFunc("DELETE /users/{userId}/columns/{columnId}/cards/{cardId}/comments/{commentId}", s.handleDeleteComment)
}

// requireRequestor resolves the bearer token into the authenticated caller.
// It writes the 401 response itself when resolution fails.
func (s *Server) requireRequestor(w http.ResponseWriter, r *http.Request) (entities.Requestor, bool) {
	header := r.Header.Get("Authorization")
	rawToken, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(rawToken) == "" {
		writeError(w, http.StatusUnauthorized, "not_logged_in", "bearer token is required")
		return entities.Requestor{}, false
	}
	requestor, err := s.board.Handler.ResolveRequestorHandler(r.Context(), strings.TrimSpace(rawToken))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not_logged_in", "invalid or expired token")
		return entities.Requestor{}, false
	}
	return requestor, true
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domainerrors.ErrUserNotFound),
		errors.Is(err, domainerrors.ErrColumnNotFound),
		errors.Is(err, domainerrors.ErrCardNotFound),
		errors.Is(err, domainerrors.ErrCommentNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domainerrors.ErrEmailAlreadyInUse):
		writeError(w, http.StatusConflict, "email_already_in_use", err.Error())
	case errors.Is(err, domainerrors.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, domainerrors.ErrInvalidUserInput),
		errors.Is(err, domainerrors.ErrInvalidColumnInput),
		errors.Is(err, domainerrors.ErrInvalidCardInput),
		errors.Is(err, domainerrors.ErrInvalidCommentInput):
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, domainerrors.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "not_logged_in", err.Error())
	default:
		s.logger.Error("unhandled domain error",
			"event", "http_internal_error",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, httptransport.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
