package votingservice

import (
	"log/slog"

	httpadapter "pulsecheck/contexts/health-checks/voting-service/adapters/http"
	"pulsecheck/contexts/health-checks/voting-service/adapters/memory"
	"pulsecheck/contexts/health-checks/voting-service/application/commands"
	"pulsecheck/contexts/health-checks/voting-service/application/queries"
	"pulsecheck/contexts/health-checks/voting-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Votes      ports.VoteRepository
	Users      ports.MemberDirectory
	Cards      ports.CardCatalog
	Sessions   ports.SessionDirectory
	Recomputer ports.SummaryRecomputer
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	voteUseCase := commands.VoteUseCase{
		Votes:      deps.Votes,
		Users:      deps.Users,
		Cards:      deps.Cards,
		Sessions:   deps.Sessions,
		Recomputer: deps.Recomputer,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	voteQueries := queries.VoteQueries{
		Votes:    deps.Votes,
		Sessions: deps.Sessions,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Votes:   voteUseCase,
			Queries: voteQueries,
			Logger:  deps.Logger,
		},
	}
}

// NewInMemoryModule wires the module against the in-memory store. The
// recomputer is injected by the caller so tests can pair this module with an
// in-memory summary engine.
func NewInMemoryModule(recomputer ports.SummaryRecomputer, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Votes:      store,
		Users:      store,
		Cards:      store,
		Sessions:   store,
		Recomputer: recomputer,
		Clock:      store,
		IDGen:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
