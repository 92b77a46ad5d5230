package postgresql

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/magang-absensi/attendance-backend-go/internal/pkg/database"
)

//go:embed schema/schema.sql
var schemaSQL string

// ApplySchema creates missing tables and indexes. Every statement is
// idempotent, so it is safe to run on each start.
func ApplySchema(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
