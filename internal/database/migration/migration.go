package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ubuntuhub/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Steps are applied in order and recorded by name in schema_migrations.
// Append new steps; never edit an applied one.
var steps = []migrationStep{
	{
		Name: "create_table_organizations",
		SQL: `CREATE TABLE IF NOT EXISTS organizations (
  id            UUID        PRIMARY KEY,
  name          TEXT        NOT NULL,
  description   TEXT        NOT NULL DEFAULT '',
  location      TEXT        NOT NULL DEFAULT '',
  contact_email TEXT        NOT NULL DEFAULT '',
  website       TEXT        NOT NULL DEFAULT '',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_facilities",
		SQL: `CREATE TABLE IF NOT EXISTS facilities (
  id              UUID        PRIMARY KEY,
  organization_id UUID        NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
  name            TEXT        NOT NULL,
  description     TEXT        NOT NULL DEFAULT '',
  location        TEXT        NOT NULL DEFAULT '',
  capacity        INTEGER     NOT NULL DEFAULT 0 CHECK (capacity >= 0),
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_facility_bookings",
		SQL: `CREATE TABLE IF NOT EXISTS facility_bookings (
  id          UUID        PRIMARY KEY,
  facility_id UUID        NOT NULL REFERENCES facilities(id) ON DELETE CASCADE,
  user_id     UUID        NOT NULL,
  title       TEXT        NOT NULL DEFAULT '',
  start_time  TIMESTAMPTZ NOT NULL,
  end_time    TIMESTAMPTZ NOT NULL,
  status      TEXT        NOT NULL DEFAULT 'confirmed' CHECK (status IN ('pending', 'confirmed', 'cancelled')),
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  CHECK (end_time > start_time)
);`,
	},
	{
		Name: "create_index_facility_bookings_active",
		SQL: `CREATE INDEX IF NOT EXISTS idx_facility_bookings_active
  ON facility_bookings (facility_id, start_time, end_time) WHERE status <> 'cancelled';`,
	},
	{
		Name: "create_table_events",
		SQL: `CREATE TABLE IF NOT EXISTS events (
  id              UUID        PRIMARY KEY,
  organization_id UUID        NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
  title           TEXT        NOT NULL,
  description     TEXT        NOT NULL DEFAULT '',
  location        TEXT        NOT NULL DEFAULT '',
  starts_at       TIMESTAMPTZ NOT NULL,
  ends_at         TIMESTAMPTZ NOT NULL,
  capacity        INTEGER     NOT NULL DEFAULT 0 CHECK (capacity >= 0),
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  CHECK (ends_at >= starts_at)
);`,
	},
	{
		Name: "create_table_event_registrations",
		SQL: `CREATE TABLE IF NOT EXISTS event_registrations (
  id         UUID        PRIMARY KEY,
  event_id   UUID        NOT NULL REFERENCES events(id) ON DELETE CASCADE,
  user_id    UUID        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (event_id, user_id)
);`,
	},
	{
		Name: "create_table_campaigns",
		SQL: `CREATE TABLE IF NOT EXISTS campaigns (
  id              UUID        PRIMARY KEY,
  organization_id UUID        NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
  title           TEXT        NOT NULL,
  description     TEXT        NOT NULL DEFAULT '',
  goal_cents      BIGINT      NOT NULL CHECK (goal_cents > 0),
  raised_cents    BIGINT      NOT NULL DEFAULT 0 CHECK (raised_cents >= 0),
  ends_at         TIMESTAMPTZ,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_donations",
		SQL: `CREATE TABLE IF NOT EXISTS donations (
  id           UUID        PRIMARY KEY,
  campaign_id  UUID        NOT NULL REFERENCES campaigns(id) ON DELETE CASCADE,
  user_id      UUID,
  donor_name   TEXT        NOT NULL DEFAULT '',
  amount_cents BIGINT      NOT NULL CHECK (amount_cents > 0),
  message      TEXT        NOT NULL DEFAULT '',
  anonymous    BOOLEAN     NOT NULL DEFAULT false,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_polls",
		SQL: `CREATE TABLE IF NOT EXISTS polls (
  id              UUID        PRIMARY KEY,
  organization_id UUID        NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
  question        TEXT        NOT NULL,
  description     TEXT        NOT NULL DEFAULT '',
  closes_at       TIMESTAMPTZ,
  created_by      UUID        NOT NULL,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_poll_options",
		SQL: `CREATE TABLE IF NOT EXISTS poll_options (
  id         UUID    PRIMARY KEY,
  poll_id    UUID    NOT NULL REFERENCES polls(id) ON DELETE CASCADE,
  label      TEXT    NOT NULL,
  position   INTEGER NOT NULL,
  vote_count INTEGER NOT NULL DEFAULT 0 CHECK (vote_count >= 0),
  UNIQUE (poll_id, position)
);`,
	},
	{
		Name: "create_table_poll_votes",
		SQL: `CREATE TABLE IF NOT EXISTS poll_votes (
  id         UUID        PRIMARY KEY,
  poll_id    UUID        NOT NULL REFERENCES polls(id) ON DELETE CASCADE,
  option_id  UUID        NOT NULL REFERENCES poll_options(id) ON DELETE CASCADE,
  user_id    UUID        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (poll_id, user_id)
);`,
	},
	{
		Name: "create_table_volunteer_opportunities",
		SQL: `CREATE TABLE IF NOT EXISTS volunteer_opportunities (
  id              UUID        PRIMARY KEY,
  organization_id UUID        NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
  title           TEXT        NOT NULL,
  description     TEXT        NOT NULL DEFAULT '',
  location        TEXT        NOT NULL DEFAULT '',
  starts_at       TIMESTAMPTZ NOT NULL,
  spots_available INTEGER     NOT NULL CHECK (spots_available > 0),
  spots_filled    INTEGER     NOT NULL DEFAULT 0,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  CHECK (spots_filled >= 0 AND spots_filled <= spots_available)
);`,
	},
	{
		Name: "create_table_volunteer_signups",
		SQL: `CREATE TABLE IF NOT EXISTS volunteer_signups (
  id             UUID        PRIMARY KEY,
  opportunity_id UUID        NOT NULL REFERENCES volunteer_opportunities(id) ON DELETE CASCADE,
  user_id        UUID        NOT NULL,
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (opportunity_id, user_id)
);`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id              UUID        PRIMARY KEY,
  organization_id UUID        NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
  filename        TEXT        NOT NULL,
  original_name   TEXT        NOT NULL DEFAULT '',
  storage_path    TEXT        NOT NULL UNIQUE,
  size            BIGINT      NOT NULL CHECK (size >= 0),
  content_type    TEXT        NOT NULL,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_documents_organization_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_organization_created_at ON documents (organization_id, created_at);`,
	},
	{
		Name: "create_table_businesses",
		SQL: `CREATE TABLE IF NOT EXISTS businesses (
  id              UUID        PRIMARY KEY,
  organization_id UUID        NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
  name            TEXT        NOT NULL,
  description     TEXT        NOT NULL DEFAULT '',
  category        TEXT        NOT NULL DEFAULT '',
  contact_email   TEXT        NOT NULL DEFAULT '',
  phone           TEXT        NOT NULL DEFAULT '',
  website         TEXT        NOT NULL DEFAULT '',
  address         TEXT        NOT NULL DEFAULT '',
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_business_cards",
		SQL: `CREATE TABLE IF NOT EXISTS business_cards (
  id          UUID        PRIMARY KEY,
  business_id UUID        NOT NULL REFERENCES businesses(id) ON DELETE CASCADE,
  headline    TEXT        NOT NULL,
  body        TEXT        NOT NULL DEFAULT '',
  link_url    TEXT        NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_groups",
		SQL: `CREATE TABLE IF NOT EXISTS groups (
  id              UUID        PRIMARY KEY,
  organization_id UUID        NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
  name            TEXT        NOT NULL,
  description     TEXT        NOT NULL DEFAULT '',
  is_private      BOOLEAN     NOT NULL DEFAULT false,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (organization_id, name)
);`,
	},
	{
		Name: "create_table_membership_plans",
		SQL: `CREATE TABLE IF NOT EXISTS membership_plans (
  id              UUID        PRIMARY KEY,
  organization_id UUID        NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
  name            TEXT        NOT NULL,
  description     TEXT        NOT NULL DEFAULT '',
  price_cents     BIGINT      NOT NULL CHECK (price_cents >= 0),
  billing_period  TEXT        NOT NULL CHECK (billing_period IN ('monthly', 'yearly', 'once')),
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

const (
	createLedger = `CREATE TABLE IF NOT EXISTS schema_migrations (
  name       TEXT        PRIMARY KEY,
  applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`
	selectApplied = `SELECT name FROM schema_migrations`
	insertApplied = `INSERT INTO schema_migrations (name) VALUES ($1)`
)

// Pending returns the names of steps not present in applied, in order.
func Pending(applied map[string]bool) []string {
	var out []string
	for _, s := range steps {
		if !applied[s.Name] {
			out = append(out, s.Name)
		}
	}
	return out
}

// EnsureMigrated applies every step missing from schema_migrations. Each step runs in
// its own transaction together with its ledger row.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *logging.Logger, dbHost string) error {
	start := time.Now()

	log.Log(map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	if _, err := db.ExecContext(ctx, createLedger); err != nil {
		log.Log(failure(dbHost, start, "", fmt.Sprintf("failed to create migration ledger: %v", err)))
		return fmt.Errorf("failed to create migration ledger: %w", err)
	}

	applied, err := loadApplied(ctx, db)
	if err != nil {
		log.Log(failure(dbHost, start, "", fmt.Sprintf("failed to read migration ledger: %v", err)))
		return fmt.Errorf("failed to read migration ledger: %w", err)
	}

	pending := Pending(applied)
	if len(pending) == 0 {
		log.Log(map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema up to date, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	log.Log(map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"pending":   len(pending),
		"db_host":   dbHost,
	})

	for _, step := range steps {
		if applied[step.Name] {
			continue
		}
		stepStart := time.Now()
		if err := applyStep(ctx, db, step); err != nil {
			entry := failure(dbHost, start, step.Name, err.Error())
			entry["step_duration_ms"] = time.Since(stepStart).Milliseconds()
			log.Log(entry)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Log(map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	log.Log(map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"applied":     len(pending),
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func loadApplied(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, selectApplied)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		applied[name] = true
	}
	return applied, rows.Err()
}

func applyStep(ctx context.Context, db *sql.DB, step migrationStep) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, step.SQL); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, insertApplied, step.Name); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func failure(dbHost string, start time.Time, step, msg string) map[string]any {
	entry := map[string]any{
		"component":     "database",
		"event":         "db_migration_failed",
		"status":        "error",
		"error_message": msg,
		"db_host":       dbHost,
		"duration_ms":   time.Since(start).Milliseconds(),
	}
	if step != "" {
		entry["migration_step"] = step
	}
	return entry
}
