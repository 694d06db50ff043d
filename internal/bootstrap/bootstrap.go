// Package bootstrap builds the shared runtime pieces of the commands: the
// logger and the configured store backend.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"user-hobbies/internal/config"
	"user-hobbies/internal/repository"
	"user-hobbies/internal/repository/memory"
	"user-hobbies/internal/repository/mongodb"
	"user-hobbies/internal/repository/sqlite"
)

// NewLogger returns a text logger at the configured level.
func NewLogger(cfg config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("unknown log level %q, using info", cfg.Log.Level)
	}
	return logger
}

// OpenStore opens the backend named by cfg.Store.Driver.
func OpenStore(ctx context.Context, cfg config.Config, logger logrus.FieldLogger) (repository.Store, error) {
	switch cfg.Store.Driver {
	case "mongo":
		store, err := mongodb.OpenStore(ctx, mongodb.Config{
			URI:          cfg.Mongo.URI,
			Database:     cfg.Mongo.Database,
			Timeout:      cfg.Mongo.Timeout,
			Transactions: cfg.Mongo.Transactions,
		})
		if err != nil {
			return repository.Store{}, err
		}
		if !cfg.Mongo.Transactions {
			logger.Warn("mongo transactions disabled: hobby writes and owner list updates commit separately")
		}
		logger.Infof("using mongodb database %s", cfg.Mongo.Database)
		return store, nil
	case "sqlite":
		store, err := sqlite.OpenStore(ctx, cfg.SQLite.Path)
		if err != nil {
			return repository.Store{}, err
		}
		logger.Infof("using sqlite database %s", cfg.SQLite.Path)
		return store, nil
	case "memory":
		logger.Warn("using in-memory store: data is lost on exit")
		return memory.New(), nil
	default:
		return repository.Store{}, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
