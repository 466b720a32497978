package core

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/jackc/pgx/v5"
)

// groupLockKey hashes a grouping key into the signed 64-bit space used by
// pg_advisory_xact_lock. Parts are NUL-separated so ("a","bc") and ("ab","c")
// hash differently.
func groupLockKey(parts ...string) int64 {
	h := fnv.New64a()
	for i, p := range parts {
		if i > 0 {
			_, _ = h.Write([]byte{0})
		}
		_, _ = h.Write([]byte(p))
	}
	return int64(h.Sum64())
}

// acquireGroupLocks takes transaction-scoped advisory locks for the given
// grouping keys. Keys are locked in sorted order so concurrent callers that
// share any subset of keys cannot deadlock. The locks serialize the
// count-then-write sequences against the same grouping key and are released
// automatically at commit or rollback.
func acquireGroupLocks(ctx context.Context, tx pgx.Tx, keys ...int64) error {
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for i, k := range keys {
		if i > 0 && keys[i-1] == k {
			continue
		}
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", k); err != nil {
			return fmt.Errorf("acquire group lock: %w", err)
		}
	}
	return nil
}
