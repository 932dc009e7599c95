// Package bbolt implements the ports.ActivityStore interface using bbolt
// (embedded B+ tree). Each workspace gets its own top-level bucket with an
// "activity" sub-bucket holding JSON-serialized query events keyed by
// insert sequence. Writes are transactional, so a crash mid-write cannot
// corrupt previously committed data.
package bbolt

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/tyfind/tyfind/internal/ports"
)

var bucketActivity = []byte("activity")

// Store implements ports.ActivityStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path, creating
// the parent directory on demand.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// eventJSON is the JSON-serializable form of ports.QueryEvent. Durations
// are stored as integer milliseconds, timestamps as Unix nanoseconds.
type eventJSON struct {
	Op         string `json:"op"`
	File       string `json:"file,omitempty"`
	Detail     string `json:"detail,omitempty"`
	Results    int    `json:"results"`
	Outcome    string `json:"outcome"`
	DurationMs int64  `json:"duration_ms"`
	At         int64  `json:"at"`
}

// seqKey encodes a sequence number big-endian so bucket iteration walks
// events in insert order.
func seqKey(seq uint64) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], seq)
	return k[:]
}

// RecordQuery appends one query event for a workspace.
func (s *Store) RecordQuery(workspaceID string, ev ports.QueryEvent) error {
	data, err := json.Marshal(eventJSON{
		Op:         ev.Op,
		File:       ev.File,
		Detail:     ev.Detail,
		Results:    ev.Results,
		Outcome:    string(ev.Outcome),
		DurationMs: ev.Duration.Milliseconds(),
		At:         ev.At.UnixNano(),
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		ws, err := tx.CreateBucketIfNotExists([]byte(workspaceID))
		if err != nil {
			return err
		}
		ab, err := ws.CreateBucketIfNotExists(bucketActivity)
		if err != nil {
			return err
		}
		seq, err := ab.NextSequence()
		if err != nil {
			return err
		}
		return ab.Put(seqKey(seq), data)
	})
}

// Stats aggregates recorded events for a workspace.
// Returns nil, nil if nothing has been recorded yet.
func (s *Store) Stats(workspaceID string) (*ports.ActivityStats, error) {
	var events []eventJSON

	err := s.db.View(func(tx *bolt.Tx) error {
		ws := tx.Bucket([]byte(workspaceID))
		if ws == nil {
			return nil
		}
		ab := ws.Bucket(bucketActivity)
		if ab == nil {
			return nil
		}
		// Unmarshal inside the transaction: decoding copies everything out
		// of the bbolt-owned value slices.
		return ab.ForEach(func(k, v []byte) error {
			var e eventJSON
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("unmarshal event %x: %w", k, err)
			}
			events = append(events, e)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}

	stats := &ports.ActivityStats{
		Total:   len(events),
		ByOp:    make(map[string]ports.OpStats),
		FirstAt: time.Unix(0, events[0].At),
		LastAt:  time.Unix(0, events[len(events)-1].At),
	}
	for _, e := range events {
		op := stats.ByOp[e.Op]
		op.Count++
		op.Results += e.Results
		if ports.Outcome(e.Outcome) != ports.OutcomeOK {
			op.Errors++
		}
		op.Duration += time.Duration(e.DurationMs) * time.Millisecond
		stats.ByOp[e.Op] = op
	}
	return stats, nil
}

// DeleteWorkspace removes all recorded data for a workspace.
// Idempotent: deleting a nonexistent workspace is not an error.
func (s *Store) DeleteWorkspace(workspaceID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(workspaceID)); err == bolt.ErrBucketNotFound {
			return nil // idempotent
		} else {
			return err
		}
	})
}
