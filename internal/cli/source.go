package cli

import (
	"database/sql"
	"fmt"
	"log"

	"terrafinance/internal/app"
)

// openMessageSource picks the footer message provider for cfg. The returned
// closer releases any database handle and is never nil.
func openMessageSource(cfg app.Config) (app.MessageSource, func(), error) {
	noop := func() {}
	if cfg.DSN == "" {
		return app.StaticMessage(cfg.Message), noop, nil
	}

	db, err := app.NewDB(cfg)
	if err != nil {
		return nil, noop, fmt.Errorf("open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, noop, fmt.Errorf("ping db: %w", err)
	}

	var src app.MessageSource = app.NewDBMessageSource(db)
	if cfg.MessageCacheTTL > 0 {
		src = app.NewCachedMessageSource(src, cfg.MessageCacheTTL)
	}
	return src, closeDB(db), nil
}

func closeDB(db *sql.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			log.Printf("close db: %v", err)
		}
	}
}
