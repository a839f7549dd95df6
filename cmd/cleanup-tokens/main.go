// Command cleanup-tokens deletes expired and revoked refresh tokens. Run it
// periodically (cron) to keep the table small; a grace window can retain
// recently expired rows for auditing.
//
// Flags:
//
//	--grace    keep rows expired or revoked less than this long ago (default 0)
//	--dry-run  report the row count without deleting
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	grace := flag.Duration("grace", 0, "retain rows expired/revoked less than this long ago")
	dryRun := flag.Bool("dry-run", false, "report the row count without deleting")
	flag.Parse()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	cutoff := time.Now().Add(-*grace)

	if *dryRun {
		var n int64
		err := pool.QueryRow(ctx,
			"SELECT count(*) FROM refresh_tokens WHERE expires_at < $1 OR revoked_at < $1",
			cutoff,
		).Scan(&n)
		if err != nil {
			log.Fatalf("count tokens: %v", err)
		}
		fmt.Printf("Would delete %d expired/revoked refresh tokens.\n", n)
		return
	}

	tag, err := pool.Exec(ctx,
		"DELETE FROM refresh_tokens WHERE expires_at < $1 OR revoked_at < $1",
		cutoff,
	)
	if err != nil {
		log.Fatalf("cleanup tokens: %v", err)
	}

	fmt.Printf("Deleted %d expired/revoked refresh tokens.\n", tag.RowsAffected())
}
