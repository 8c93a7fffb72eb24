package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateJSONIndexes creates PostgreSQL GIN indexes on the JSONB columns of
// intake_sessions. Ent does not express these, so they run after migrations.
func CreateJSONIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Symptom-domain containment queries for cohort review.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_intake_sessions_symptoms_gin
		ON intake_sessions USING gin(symptoms_detected jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create symptoms_detected GIN index: %w", err)
	}

	// Risk-flag triage queries across sessions.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_intake_sessions_risk_flags_gin
		ON intake_sessions USING gin(risk_flags jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create risk_flags GIN index: %w", err)
	}

	return nil
}
