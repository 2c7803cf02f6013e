package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// pageTimeLayout has fixed-width fractions so text order matches time order.
const pageTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Page is a published game page: a named share link to one game.
type Page struct {
	UUID      string
	GameSlug  string
	PageName  string
	Email     string
	CreatedAt time.Time
}

// InsertPage stores a new page. The UUID must be unique.
func (s *Store) InsertPage(p Page) error {
	_, err := s.db.Exec(
		`INSERT INTO pages (uuid, game_slug, page_name, email, created_at) VALUES (?, ?, ?, ?, ?)`,
		p.UUID, p.GameSlug, p.PageName, p.Email, p.CreatedAt.UTC().Format(pageTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot insert page: %w", err)
	}
	return nil
}

// PagesByEmail lists the pages owned by email, newest first.
func (s *Store) PagesByEmail(email string) ([]Page, error) {
	rows, err := s.db.Query(
		`SELECT uuid, game_slug, page_name, email, created_at
		 FROM pages
		 WHERE email = ?
		 ORDER BY created_at DESC`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query pages: %w", err)
	}
	defer rows.Close()

	var pages []Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return pages, nil
}

// PageByUUID returns the page with the given UUID.
// The boolean is false when no such page exists.
func (s *Store) PageByUUID(uuid string) (Page, bool, error) {
	row := s.db.QueryRow(
		`SELECT uuid, game_slug, page_name, email, created_at FROM pages WHERE uuid = ?`,
		uuid,
	)
	p, err := scanPage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Page{}, false, nil
	}
	if err != nil {
		return Page{}, false, err
	}
	return p, true, nil
}

// DeletePage removes the page only if it is owned by email.
// It reports whether a page was removed.
func (s *Store) DeletePage(uuid, email string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM pages WHERE uuid = ? AND email = ?", uuid, email)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete page: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot count deleted pages: %w", err)
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(r rowScanner) (Page, error) {
	var p Page
	var createdAt string
	if err := r.Scan(&p.UUID, &p.GameSlug, &p.PageName, &p.Email, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, err
		}
		return p, fmt.Errorf("storage: cannot scan page: %w", err)
	}
	p.CreatedAt = parseTime(createdAt)
	return p, nil
}
