package root

import (
	"context"
	"database/sql"

	"arcadia/internal/config"
	"arcadia/internal/engine"
	"arcadia/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	cfgPath, err := config.DefaultPath()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	bal, err := config.Load(cfgPath)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return engine.NewService(db, bal, logger), cleanup, nil
}
