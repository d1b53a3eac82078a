// Package migrations embeds the schema files so cmd/seed can bring a fresh
// database up to date. Statements are idempotent (IF NOT EXISTS).
package migrations

import (
	"context"
	"embed"
	"fmt"
	"sort"

	"github.com/verlof-hq/leave-backend-go/internal/pkg/database"
)

//go:embed *.sql
var files embed.FS

// Apply runs every embedded migration file in lexical order.
func Apply(ctx context.Context, db *database.DB) error {
	entries, err := files.ReadDir(".")
	if err != nil {
		return err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		sql, err := files.ReadFile(name)
		if err != nil {
			return err
		}
		if _, err := db.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}

	return nil
}
