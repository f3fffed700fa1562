package directoryservice

import (
	"log/slog"

	httpadapter "pulsecheck/contexts/organization/directory-service/adapters/http"
	"pulsecheck/contexts/organization/directory-service/adapters/memory"
	"pulsecheck/contexts/organization/directory-service/application/queries"
	"pulsecheck/contexts/organization/directory-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Queries queries.DirectoryQueries
	Store   *memory.Store
}

type Dependencies struct {
	Directory ports.DirectoryRepository
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	directoryQueries := queries.DirectoryQueries{
		Repo:   deps.Directory,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Queries: directoryQueries,
			Logger:  deps.Logger,
		},
		Queries: directoryQueries,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Directory: store,
		Logger:    logger,
	})
	module.Store = store
	return module
}
