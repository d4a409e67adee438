// Package history keeps a bounded log of evaluated expressions on disk.
package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"bigcalc/internal/bignum"
	"bigcalc/internal/calc"
)

// Current schema version - increment when the payload format changes.
const schemaVersion uint16 = 1

// DefaultLimit is the number of entries kept when no limit is configured.
const DefaultLimit = 100

const fileName = "history.mp"

// Entry is one recorded evaluation.
type Entry struct {
	Time time.Time `msgpack:"time"`
	// Source is the expression as the user typed it, or "a, b" for a
	// console report.
	Source string     `msgpack:"source"`
	A      bignum.Int `msgpack:"a"`
	B      bignum.Int `msgpack:"b"`
	Rows   []calc.Row `msgpack:"rows"`
}

type payload struct {
	Schema  uint16  `msgpack:"schema"`
	Entries []Entry `msgpack:"entries"`
}

// Store persists entries in a single msgpack file.
// Thread-safe for concurrent access. A nil *Store discards writes and
// loads nothing.
type Store struct {
	mu    sync.RWMutex
	dir   string
	limit int
}

// Open returns a store under $XDG_CACHE_HOME/<app>, falling back to
// ~/.cache/<app>. A limit <= 0 selects DefaultLimit.
func Open(app string, limit int) (*Store, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDir(filepath.Join(base, app), limit)
}

// OpenDir returns a store rooted at dir.
func OpenDir(dir string, limit int) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{dir: dir, limit: limit}, nil
}

// Path is the history file location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return filepath.Join(s.dir, fileName)
}

// Append records e, dropping the oldest entries beyond the limit.
func (s *Store) Append(e Entry) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	entries = append(entries, e)
	if over := len(entries) - s.limit; over > 0 {
		entries = entries[over:]
	}
	return s.write(entries)
}

// Load returns the stored entries, oldest first. A file written with another
// schema version reads as empty.
func (s *Store) Load() ([]Entry, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read()
}

// Clear removes every entry.
func (s *Store) Clear() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) read() ([]Entry, error) {
	f, err := os.Open(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var p payload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return nil, fmt.Errorf("history %s: %w", s.Path(), err)
	}
	if p.Schema != schemaVersion {
		return nil, nil
	}
	return p.Entries, nil
}

func (s *Store) write(entries []Entry) error {
	f, err := os.CreateTemp(s.dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	ok := false
	defer func() {
		if !ok {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(payload{Schema: schemaVersion, Entries: entries}); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace.
	if err := os.Rename(tmp, s.Path()); err != nil {
		return err
	}
	ok = true
	return nil
}

// FromReport builds an entry from a console report.
func FromReport(rep calc.Report) Entry {
	return Entry{
		Source: rep.Left.String() + ", " + rep.Right.String(),
		A:      rep.Left,
		B:      rep.Right,
		Rows:   rep.Rows,
	}
}

// FromExpr builds an entry from a single evaluated expression.
func FromExpr(e calc.Expr, v bignum.Int, err error) Entry {
	row := calc.Row{Op: e.Op, Symbol: e.Op.String(), Name: e.Op.Name()}
	if err != nil {
		row.Error = err.Error()
	} else {
		r := calc.Render(v)
		row.Result = &r
		row.Value = v
	}
	return Entry{Source: e.String(), A: e.A, B: e.B, Rows: []calc.Row{row}}
}
