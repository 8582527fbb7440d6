// Package setup wires the resources shared by the api and the messaging binaries
package setup

import (
	"github.com/ribgsilva/notebook-api/business/v1/note"
	pnote "github.com/ribgsilva/notebook-api/persistence/v1/note"
	"github.com/ribgsilva/notebook-api/platform/cache"
	"github.com/ribgsilva/notebook-api/platform/database"
	"github.com/ribgsilva/notebook-api/platform/env"
	"github.com/ribgsilva/notebook-api/platform/events"
	"github.com/ribgsilva/notebook-api/sys"
	"go.uber.org/zap"
)

// StorageConfigs reads the database, cache and notebook env vars into sys.Configs
func StorageConfigs(log *zap.SugaredLogger) {
	sys.Configs.Database.Driver = env.OrDefault(log, "DATABASE_DRIVER", "mysql")
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@tcp(localhost:3306)/notebook?parseTime=true")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	sys.Configs.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	sys.Configs.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "1s")
	sys.Configs.Cache.CacheTTL = env.DurationDefault(log, "CACHE_TTL", "24h")
	sys.Configs.Notebook.PruneOwnerIndex = env.BoolDefault(log, "NOTEBOOK_PRUNE_OWNER_INDEX", "f")
}

// Store opens the configured storage and fills sys.R, the returned func releases it.
// An empty cache url runs the sql store without cache. sys.R.Log must be set.
func Store() (note.Store, func(), error) {
	log := sys.R.Log

	if sys.Configs.Database.Driver == database.Memory {
		log.Warnw("startup", "storage", "memory, notes are lost on restart")
		return pnote.NewMemory(), func() {}, nil
	}

	db, err := database.Open(sys.Configs.Database.Driver, sys.Configs.Database.ConnectionURL, sys.Configs.Database.PingTimeout)
	if err != nil {
		return nil, nil, err
	}
	sys.R.Database = db

	closeAll := func() {
		if err := db.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}

	if sys.Configs.Cache.ConnectionURL != "" {
		rdb, err := cache.Open(sys.Configs.Cache.ConnectionURL, sys.Configs.Cache.User, sys.Configs.Cache.Pass, sys.Configs.Cache.PingTimeout)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		sys.R.Cache = rdb

		closeDB := closeAll
		closeAll = func() {
			if err := rdb.Close(); err != nil {
				log.Errorf("could not close redis conn gracefully: %s", err)
			}
			closeDB()
		}
	}

	store := pnote.NewSQL(log, sys.R.Database, sys.R.Cache, pnote.Config{
		OperationTimeout:      sys.Configs.Database.OperationTimeout,
		CacheOperationTimeout: sys.Configs.Cache.OperationTimeout,
		CacheTTL:              sys.Configs.Cache.CacheTTL,
	})
	return store, closeAll, nil
}

// Repository builds the note repository over store with the logger and events topic in sys.R,
// no events are emitted while sys.R.Events is unset
func Repository(store note.Store) *note.Repository {
	var emitter note.Emitter
	if sys.R.Events != nil {
		emitter = events.NewTopic(sys.R.Events)
	}
	return note.New(sys.R.Log, store, emitter, Options())
}

// Options maps the notebook configs to repository options
func Options() note.Options {
	return note.Options{PruneOwnerIndex: sys.Configs.Notebook.PruneOwnerIndex}
}
