package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ContactHit is the outcome of recording one hit against a throttle key.
type ContactHit struct {
	Allowed bool
	// Count is the number of hits inside the window, including this one when allowed.
	Count int
	// OldestAt is the oldest hit still inside the window.
	OldestAt time.Time
}

const sqlLockThrottleKey = `SELECT pg_advisory_xact_lock(hashtext($1))`

const sqlPruneContactHits = `DELETE FROM contact_throttles WHERE throttle_key = $1 AND hit_at <= $2`

const sqlWindowContactHits = `
SELECT COUNT(*) AS count, COALESCE(MIN(hit_at), $2) AS oldest
FROM contact_throttles
WHERE throttle_key = $1`

const sqlInsertContactHit = `INSERT INTO contact_throttles (throttle_key, hit_at) VALUES ($1, $2)`

// RecordContactHit applies a sliding window of length window to key. The hit
// is only stored when it is allowed, so rejected attempts do not extend the block.
func (s *Store) RecordContactHit(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (ContactHit, error) {
	var hit ContactHit
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlLockThrottleKey, key); err != nil {
			return fmt.Errorf("failed to lock throttle key: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sqlPruneContactHits, key, now.Add(-window)); err != nil {
			return fmt.Errorf("failed to prune throttle hits: %w", err)
		}

		var row struct {
			Count  int       `db:"count"`
			Oldest time.Time `db:"oldest"`
		}
		if err := tx.GetContext(ctx, &row, sqlWindowContactHits, key, now); err != nil {
			return fmt.Errorf("failed to count throttle hits: %w", err)
		}

		hit.Count = row.Count
		hit.OldestAt = row.Oldest
		if row.Count >= limit {
			return nil
		}

		if _, err := tx.ExecContext(ctx, sqlInsertContactHit, key, now); err != nil {
			return fmt.Errorf("failed to insert throttle hit: %w", err)
		}
		hit.Allowed = true
		hit.Count++
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "failed to record contact hit", err)
		return ContactHit{}, err
	}
	return hit, nil
}
