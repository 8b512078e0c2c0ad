package book

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/domino14/shogimove/move"
)

const schema = `
CREATE TABLE IF NOT EXISTS book_moves (
	position_key INTEGER NOT NULL,
	move         INTEGER NOT NULL,
	weight       INTEGER NOT NULL,
	PRIMARY KEY (position_key, move)
)`

// SaveSQLite writes the book to a SQLite database, replacing any book
// already there. Moves are stored in their packed form.
func (b *Book) SaveSQLite(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.Exec(schema); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM book_moves"); err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT INTO book_moves (position_key, move, weight) VALUES (?, ?, ?) " +
		"ON CONFLICT(position_key, move) DO UPDATE SET weight = weight + excluded.weight")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for key, choices := range b.entries {
		for _, c := range choices {
			// SQLite integers are signed; the key round-trips through int64.
			if _, err := stmt.Exec(int64(key), int64(c.Move), c.Weight); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// LoadSQLite reads a book written by SaveSQLite. Every stored move is
// checked again, since the file may not have been written by us.
func LoadSQLite(path string) (*Book, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT position_key, move, weight FROM book_moves ORDER BY position_key, rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	b := &Book{entries: map[uint64][]Choice{}}
	for rows.Next() {
		var key, packed int64
		var weight int
		if err := rows.Scan(&key, &packed, &weight); err != nil {
			return nil, err
		}
		m := move.Move(uint32(packed))
		if int64(m) != packed || !m.IsOk() || !m.IsRealMove() || weight < 0 {
			return nil, fmt.Errorf("bad book row: move %#x weight %d", packed, weight)
		}
		b.add(uint64(key), Choice{Move: m, Weight: weight})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	log.Debug().Int("positions", len(b.entries)).Str("path", path).Msg("loaded-sqlite-book")
	return b, nil
}
