package favicon

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// index is the sqlite lookup table behind the favicon cache. It keys on the
// full URL, so two URLs whose cache filenames collide still keep separate
// rows, and it remembers negative results so misses are not refetched on
// every link add.
type index struct {
	db *sql.DB
}

func openIndex(path string) (*index, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening icon index: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing icon index schema: %w", err)
	}
	return &index{db: db}, nil
}

func (x *index) close() error {
	return x.db.Close()
}

// lookup returns the recorded result for url. found is false when the URL
// has never been checked.
func (x *index) lookup(url string) (path string, ok bool, checkedAt time.Time, found bool, err error) {
	var okInt int
	var unix int64
	row := x.db.QueryRow(`SELECT path, ok, checked_at FROM icons WHERE url = ?`, url)
	switch err := row.Scan(&path, &okInt, &unix); err {
	case nil:
		return path, okInt != 0, time.Unix(unix, 0), true, nil
	case sql.ErrNoRows:
		return "", false, time.Time{}, false, nil
	default:
		return "", false, time.Time{}, false, err
	}
}

// record upserts the result of a lookup attempt.
func (x *index) record(url, path string, ok bool) error {
	okInt := 0
	if ok {
		okInt = 1
	}
	_, err := x.db.Exec(
		`INSERT INTO icons (url, path, ok, checked_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(url) DO UPDATE SET path = excluded.path, ok = excluded.ok, checked_at = excluded.checked_at`,
		url, path, okInt, time.Now().Unix())
	return err
}
