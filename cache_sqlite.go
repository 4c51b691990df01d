package main

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

/* ==================================================================================== *\
    cache_sqlite.go

    Optional artifact cache backend, selected with --cache-backend sqlite:
    one shared database file instead of one JSON file per size-tuple,
    useful when the planner's shared sub-tuples are read by many concurrent
    runs. Uses database/sql with the mattn/go-sqlite3 driver registered via
    a blank import; the connection is opened and closed per call rather
    than held open across the process.
\* ==================================================================================== */

type sqliteCacheStore struct {
	path string
}

func new_sqlite_cache_store(path string) (*sqliteCacheStore, error) {
	s := &sqliteCacheStore{path: path}
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite cache %s: %w", s.path, err)
	}
	defer db.Close()
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS fdts_cache (
		sizes_key TEXT NOT NULL,
		fair_up_to INTEGER NOT NULL,
		payload TEXT NOT NULL,
		PRIMARY KEY (sizes_key, fair_up_to)
	)`)
	if err != nil {
		return nil, fmt.Errorf("initializing sqlite cache %s: %w", s.path, err)
	}
	return s, nil
}

func sizes_key(sizes []int) string {
	key := ""
	for i, s := range sizes {
		if i > 0 {
			key += ","
		}
		key += itoaFast(s)
	}
	return key
}

func (s *sqliteCacheStore) load(sizes []int, fairUpTo int) (*FDTS, error) {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite cache %s: %w", s.path, err)
	}
	defer db.Close()

	row := db.QueryRow(`SELECT payload FROM fdts_cache WHERE sizes_key = ? AND fair_up_to = ?`, sizes_key(sizes), fairUpTo)
	var payload string
	switch err := row.Scan(&payload); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		f, err := decode_stored_fdts([]byte(payload), s.path)
		if err != nil {
			return nil, err
		}
		if err := check_loaded_fdts(f, sizes, fairUpTo, s.path); err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("reading sqlite cache %s: %w", s.path, err)
	}
}

func (s *sqliteCacheStore) save(f *FDTS) error {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return fmt.Errorf("opening sqlite cache %s: %w", s.path, err)
	}
	defer db.Close()

	data, err := encode_stored_fdts(f)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT OR REPLACE INTO fdts_cache (sizes_key, fair_up_to, payload) VALUES (?, ?, ?)`,
		sizes_key(f.sizes), f.fair_up_to, string(data))
	if err != nil {
		return fmt.Errorf("writing sqlite cache %s: %w", s.path, err)
	}
	return nil
}
