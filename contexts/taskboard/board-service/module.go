package boardservice

import (
	"log/slog"
	"time"

	authadapter "taskboard/contexts/taskboard/board-service/adapters/auth"
	httpadapter "taskboard/contexts/taskboard/board-service/adapters/http"
	"taskboard/contexts/taskboard/board-service/adapters/memory"
	"taskboard/contexts/taskboard/board-service/application"
	"taskboard/contexts/taskboard/board-service/ports"
)

// Module is the composition surface for the board service. Runtime wiring
// should consume Handler; Store is exposed for tests/inspection.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Users    ports.UserRepository
	Columns  ports.ColumnRepository
	Cards    ports.CardRepository
	Comments ports.CommentRepository
	Hasher   ports.PasswordHasher
	Tokens   ports.TokenIssuer
	Logger   *slog.Logger
}

// NewModule wires the board use cases against explicit ports.
func NewModule(deps Dependencies) Module {
	service := application.Service{
		Users:    deps.Users,
		Columns:  deps.Columns,
		Cards:    deps.Cards,
		Comments: deps.Comments,
		Hasher:   deps.Hasher,
		Tokens:   deps.Tokens,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule wires the board service against the in-memory store with
// a fixed dev signing secret. This is the test and local-development
// bootstrap path.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Users:    store,
		Columns:  store,
		Cards:    store,
		Comments: store,
		Hasher:   authadapter.NewBcryptHasher(),
		Tokens:   authadapter.NewJWTIssuer("taskboard-dev-secret", 24*time.Hour),
		Logger:   logger,
	})
	module.Store = store
	return module
}
