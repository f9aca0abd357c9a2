package commands

import (
	"fmt"

	"go.uber.org/zap"

	"packrat/internal/catalog"
	"packrat/internal/classify"
	"packrat/internal/config"
	"packrat/internal/store"
)

// openEngine builds an engine over the configured store and classifier.
// The caller must Close the returned store.
func openEngine(cfg *config.Config) (*catalog.Engine, store.Store, classify.Config, error) {
	classifierCfg := classify.DefaultConfig()
	if cfg.ClassifierConfigPath != "" {
		var err error
		classifierCfg, err = classify.LoadConfig(cfg.ClassifierConfigPath)
		if err != nil {
			return nil, nil, classifierCfg, fmt.Errorf("loading classifier config: %w", err)
		}
	}

	st, err := openStore(cfg)
	if err != nil {
		return nil, nil, classifierCfg, fmt.Errorf("opening store: %w", err)
	}

	engine := catalog.New(st, classify.New(classifierCfg), zap.NewNop())
	return engine, st, classifierCfg, nil
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return store.NewMemory(), nil
	case config.BackendFile:
		return store.NewFile(cfg.DataDir)
	case config.BackendSQLite:
		return store.NewSQLite(cfg.SQLitePath)
	case config.BackendPostgres:
		return store.NewPostgres(cfg.DatabaseURL)
	case config.BackendRedis:
		return store.NewRedis(cfg.RedisURL)
	default:
		return store.NewMemory(), nil
	}
}
