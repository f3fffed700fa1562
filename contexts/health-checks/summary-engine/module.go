package summaryengine

import (
	"log/slog"

	httpadapter "pulsecheck/contexts/health-checks/summary-engine/adapters/http"
	"pulsecheck/contexts/health-checks/summary-engine/adapters/memory"
	"pulsecheck/contexts/health-checks/summary-engine/application/commands"
	"pulsecheck/contexts/health-checks/summary-engine/application/queries"
	"pulsecheck/contexts/health-checks/summary-engine/ports"
)

type Module struct {
	Handler   httpadapter.Handler
	Recompute commands.RecomputeUseCase
	Store     *memory.Store
}

type Dependencies struct {
	Summaries ports.SummaryRepository
	Votes     ports.VoteSource
	Sessions  ports.SessionDirectory
	Clock     ports.Clock
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	recompute := commands.RecomputeUseCase{
		Summaries: deps.Summaries,
		Votes:     deps.Votes,
		Sessions:  deps.Sessions,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	dashboards := queries.DashboardUseCase{
		Summaries: deps.Summaries,
		Votes:     deps.Votes,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Dashboards: dashboards,
			Logger:     deps.Logger,
		},
		Recompute: recompute,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Summaries: store,
		Votes:     store,
		Sessions:  store,
		Clock:     store,
		Logger:    logger,
	})
	module.Store = store
	return module
}
