package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upCreateOrphans, downCreateOrphans)
}

func upCreateOrphans(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE orphans (
		id BIGSERIAL PRIMARY KEY,
		kind VARCHAR(16) NOT NULL,
		remote_id VARCHAR(64) NOT NULL,
		bucket_id VARCHAR(64) NOT NULL DEFAULT '',
		note TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		resolved_at TIMESTAMPTZ
	);
	CREATE INDEX orphans_open_idx ON orphans (kind, created_at) WHERE resolved_at IS NULL;
	`)
	if err != nil {
		return err
	}
	return nil
}

func downCreateOrphans(tx *sql.Tx) error {
	_, err := tx.Exec(`
	DROP TABLE orphans;
	`)
	if err != nil {
		return err
	}
	return nil
}
