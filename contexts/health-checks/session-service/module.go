package sessionservice

import (
	"log/slog"

	httpadapter "pulsecheck/contexts/health-checks/session-service/adapters/http"
	"pulsecheck/contexts/health-checks/session-service/adapters/memory"
	"pulsecheck/contexts/health-checks/session-service/application/commands"
	"pulsecheck/contexts/health-checks/session-service/application/queries"
	"pulsecheck/contexts/health-checks/session-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Sessions      ports.SessionRepository
	Cards         ports.CardRepository
	Participation ports.ParticipationSource
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	sessionUseCase := commands.SessionUseCase{
		Sessions: deps.Sessions,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		Logger:   deps.Logger,
	}
	sessionQueries := queries.SessionQueries{
		Sessions:      deps.Sessions,
		Cards:         deps.Cards,
		Participation: deps.Participation,
		Logger:        deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Sessions: sessionUseCase,
			Queries:  sessionQueries,
			Logger:   deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Sessions:      store,
		Cards:         store,
		Participation: store,
		Clock:         store,
		IDGen:         store,
		Logger:        logger,
	})
	module.Store = store
	return module
}
