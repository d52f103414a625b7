package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"bucket-manager/core/config"
	"bucket-manager/core/database"
	"bucket-manager/core/logger"
	"bucket-manager/core/storage"
	"bucket-manager/feature/audit"
	"bucket-manager/feature/bucket"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// environment is what every CLI subcommand needs to talk to the bucket.
type environment struct {
	cfg    *config.Config
	logger *zap.Logger
	client storage.Client
	db     *gorm.DB
}

// loadEnvironment loads configuration, builds the logger and the storage client
// and, when enabled, connects the audit database.
func loadEnvironment() (*environment, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	env := &environment{cfg: cfg, logger: logg, client: client}
	if cfg.Database.Enabled {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Audit database unavailable, continuing without audit trail", zap.Error(err))
		} else {
			env.db = conn
		}
	}
	return env, nil
}

// bucket returns the --bucket flag or the configured default.
func (e *environment) bucket() string {
	if bucketFlag != "" {
		return bucketFlag
	}
	return e.cfg.Storage.Bucket
}

// recorder returns the audit store when a database is connected.
func (e *environment) recorder() (audit.Recorder, error) {
	if e.db == nil {
		return audit.NopRecorder{}, nil
	}
	store := audit.NewStore(e.db)
	if err := store.Migrate(); err != nil {
		return nil, err
	}
	return store, nil
}

// bucketService builds the bucket service with audit recording for CLI mutations.
func (e *environment) bucketService() (*bucket.Service, error) {
	rec, err := e.recorder()
	if err != nil {
		return nil, err
	}
	return bucket.NewService(e.client, rec, e.logger), nil
}

// cliContext tags audit entries written from the CLI.
func cliContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return audit.WithRayID(ctx, "cli")
}

// confirmDestructiveAction prompts the user for confirmation unless yes is set.
func confirmDestructiveAction(yes bool) bool {
	if yes {
		return true
	}

	fmt.Print("Type 'yes' to confirm: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
