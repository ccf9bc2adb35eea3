// Package pg provides the PostgreSQL connection helper for shield's persisted
// state, primarily the authz.PostgresSettingStore holding the permission
// matrix.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    // database unreachable after all retries
//	}
//	store := authz.NewPostgresSettingStore(pool)
//
// Connect retries with linear backoff so a restarting database does not take
// the auth layer down with it.
package pg
