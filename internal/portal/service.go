package portal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-portal/internal/logging"
	"github.com/vovakirdan/arcade-portal/internal/storage"
)

var (
	ErrMissingField = errors.New("portal: gameSlug, pageName and email are required")
	ErrInvalidEmail = errors.New("portal: invalid email address")
	ErrUnknownGame  = errors.New("portal: game not found")
	ErrNotFound     = errors.New("portal: page not found or not owned by you")
)

// PageStore persists published pages. *storage.Store implements it.
type PageStore interface {
	InsertPage(p storage.Page) error
	PagesByEmail(email string) ([]storage.Page, error)
	PageByUUID(uuid string) (storage.Page, bool, error)
	DeletePage(uuid, email string) (bool, error)
}

// Service publishes and manages pages.
type Service struct {
	store  PageStore
	logger *log.Logger
	now    func() time.Time
	newID  func() string
}

// NewService wraps store. A nil logger discards.
func NewService(store PageStore, logger *log.Logger) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Publish creates a page for gameSlug owned by email.
func (s *Service) Publish(gameSlug, pageName, email string) (storage.Page, error) {
	gameSlug = strings.TrimSpace(gameSlug)
	pageName = strings.TrimSpace(pageName)
	email = strings.TrimSpace(email)
	if gameSlug == "" || pageName == "" || email == "" {
		return storage.Page{}, ErrMissingField
	}
	if !strings.Contains(email, "@") {
		return storage.Page{}, ErrInvalidEmail
	}
	if _, ok := Lookup(gameSlug); !ok {
		return storage.Page{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownGame, gameSlug, strings.Join(slugs(), ", "))
	}

	p := storage.Page{
		UUID:      s.newID(),
		GameSlug:  gameSlug,
		PageName:  pageName,
		Email:     strings.ToLower(email),
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.InsertPage(p); err != nil {
		return storage.Page{}, err
	}
	s.logger.Info("page published", "uuid", p.UUID, "game", p.GameSlug, "email", p.Email)
	return p, nil
}

// PagesByEmail lists the pages owned by email, newest first.
func (s *Service) PagesByEmail(email string) ([]storage.Page, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrMissingField
	}
	return s.store.PagesByEmail(email)
}

// PageByUUID returns a page, or ErrNotFound.
func (s *Service) PageByUUID(id string) (storage.Page, error) {
	p, ok, err := s.store.PageByUUID(strings.TrimSpace(id))
	if err != nil {
		return storage.Page{}, err
	}
	if !ok {
		return storage.Page{}, ErrNotFound
	}
	return p, nil
}

// Delete removes a page owned by email.
func (s *Service) Delete(id, email string) error {
	id = strings.TrimSpace(id)
	email = strings.ToLower(strings.TrimSpace(email))
	if id == "" || email == "" {
		return ErrMissingField
	}
	ok, err := s.store.DeletePage(id, email)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	s.logger.Info("page deleted", "uuid", id, "email", email)
	return nil
}

// ShareLink builds the public address of a page.
func ShareLink(base, id string) string {
	return strings.TrimRight(base, "/") + "/p/" + id
}

func slugs() []string {
	out := make([]string, len(Catalog))
	for i, e := range Catalog {
		out[i] = e.Slug
	}
	return out
}
