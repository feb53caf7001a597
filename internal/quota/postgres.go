package quota

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresStore keeps the ledger in a quota_ledger table. Atomicity of
// the increment-and-check is delegated to the database: a single
// conditional upsert, so concurrent writers for one (user, date) key
// serialise on the row and the limit cannot be overshot.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	s := &PostgresStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("quota schema: %w", err)
	}
	return s, nil
}

// OpenPostgres dials the database and verifies connectivity before the
// store is handed to anyone.
func OpenPostgres(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

func (s *PostgresStore) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS quota_ledger (
		user_id TEXT NOT NULL,
		quota_date DATE NOT NULL,
		message_count INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, quota_date)
	)`)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, userID, date string) (Record, bool, error) {
	var rec Record
	err := s.db.QueryRowContext(ctx,
		`SELECT user_id, to_char(quota_date, 'YYYY-MM-DD'), message_count, updated_at
		 FROM quota_ledger WHERE user_id = $1 AND quota_date = $2`,
		userID, date,
	).Scan(&rec.UserID, &rec.Date, &rec.MessageCount, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("select quota row: %w", err)
	}
	return rec, true, nil
}

func (s *PostgresStore) IncrementIfBelow(ctx context.Context, userID, date string, limit int) (Record, bool, error) {
	var rec Record
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO quota_ledger (user_id, quota_date, message_count, updated_at)
		 VALUES ($1, $2, 1, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id, quota_date) DO UPDATE
		 SET message_count = quota_ledger.message_count + 1,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE quota_ledger.message_count < $3
		 RETURNING user_id, to_char(quota_date, 'YYYY-MM-DD'), message_count, updated_at`,
		userID, date, limit,
	).Scan(&rec.UserID, &rec.Date, &rec.MessageCount, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// The conditional upsert matched nothing: the row exists and is
		// already at the limit. Read it back for the caller's status.
		existing, ok, gerr := s.Get(ctx, userID, date)
		if gerr != nil {
			return Record{}, false, gerr
		}
		if !ok {
			return Record{}, false, fmt.Errorf("quota row for %s/%s vanished mid-increment", userID, date)
		}
		return existing, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("increment quota row: %w", err)
	}
	return rec, true, nil
}

func (s *PostgresStore) DeleteBefore(ctx context.Context, date string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quota_ledger WHERE quota_date < $1`, date)
	if err != nil {
		return 0, fmt.Errorf("delete expired quota rows: %w", err)
	}
	return res.RowsAffected()
}
