package container

import (
	"database/sql"

	"github.com/XenomaCode/MVP-CATERING/internal/events"
	"github.com/XenomaCode/MVP-CATERING/internal/export"
	"github.com/XenomaCode/MVP-CATERING/internal/inventory"
	"github.com/XenomaCode/MVP-CATERING/internal/repository"
	"github.com/XenomaCode/MVP-CATERING/internal/users"
	"github.com/XenomaCode/MVP-CATERING/pkg/security"

	"go.uber.org/zap"
)

type Container struct {
	Repository    *repository.Repository
	LoginHandler  *security.LoginHandler
	ItemHandler   *inventory.ItemHandler
	EventHandler  *events.EventHandler
	ExportHandler *export.Handler
	UserHandler   *users.UsersHandler
}

func NewAppContainer(db *sql.DB, log *zap.Logger) *Container {
	repo := repository.NewRepository(db)
	itemRepo := inventory.NewRepository(repo)
	eventRepo := events.NewRepository(repo)
	userRepo := users.NewRepository(repo)

	loginHandler := security.NewLoginHandler(repo)
	itemHandler := inventory.NewItemHandler(itemRepo, log)
	eventHandler := events.NewEventHandler(eventRepo, log)
	exporter := export.NewExporter(eventRepo)
	exportHandler := export.NewHandler(exporter, log)
	userHandler := users.NewHandler(userRepo)

	return &Container{
		Repository:    repo,
		LoginHandler:  loginHandler,
		ItemHandler:   itemHandler,
		EventHandler:  eventHandler,
		ExportHandler: exportHandler,
		UserHandler:   userHandler,
	}
}
