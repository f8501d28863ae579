// Package wire provides dependency injection for the patrol application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"log"
	"sync"

	cliadapter "github.com/example/patrol/internal/adapters/cli"
	"github.com/example/patrol/internal/adapters/emailjs"
	"github.com/example/patrol/internal/adapters/persistence"
	"github.com/example/patrol/internal/adapters/sqlite"
	"github.com/example/patrol/internal/app"
	"github.com/example/patrol/internal/config"
	"github.com/example/patrol/internal/db"
	"github.com/example/patrol/internal/ports/primary"
)

var (
	patrolService  primary.PatrolService
	historyService primary.HistoryService
	once           sync.Once
)

// PatrolService returns the singleton PatrolService instance, restored
// from the current-state store.
func PatrolService() primary.PatrolService {
	once.Do(initServices)
	return patrolService
}

// HistoryService returns the singleton HistoryService instance.
func HistoryService() primary.HistoryService {
	once.Do(initServices)
	return historyService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	dir, err := config.DefaultDir()
	if err != nil {
		log.Fatalf("failed to resolve patrol directory: %v", err)
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Secondary adapters
	patrolRepo := sqlite.NewPatrolRepository(database)
	sender := emailjs.NewSender(emailjs.Config{
		ServiceID:  cfg.EmailJSServiceID,
		TemplateID: cfg.EmailJSTemplate,
		PublicKey:  cfg.EmailJSPublicKey,
		ToEmail:    cfg.SendToEmail,
	})
	selections := persistence.NewConfigSelectionStore(dir)
	confirmer := cliadapter.NewStdinConfirmer()

	// Services (primary ports implementation)
	svc := app.NewPatrolService(patrolRepo, sender, confirmer, selections)
	if err := svc.Restore(context.Background()); err != nil {
		log.Fatalf("failed to restore patrol state: %v", err)
	}
	patrolService = svc
	historyService = app.NewHistoryService(patrolRepo)
}
