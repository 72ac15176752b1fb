// Package pg connects to PostgreSQL through a pgx pool and applies goose
// migrations from an fs.FS.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, auth.Migrations, "migrations", log); err != nil {
//		return err
//	}
//
// Connect retries failed attempts RetryAttempts times. IsDuplicateKeyError
// and IsNotFoundError classify driver errors for storage layers.
package pg
