package portal

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/arcade-portal/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "portal.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewService(store, nil)
}

func TestPublishValidation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		game     string
		page     string
		email    string
		expected error
	}{
		{"missing game", "", "My page", "a@b.c", ErrMissingField},
		{"missing name", "space-shooter", "  ", "a@b.c", ErrMissingField},
		{"missing email", "space-shooter", "My page", "", ErrMissingField},
		{"email without at", "space-shooter", "My page", "nobody", ErrInvalidEmail},
		{"unknown game", "tetris", "My page", "a@b.c", ErrUnknownGame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Publish(tt.game, tt.page, tt.email)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Publish() error = %v, expected %v", err, tt.expected)
			}
		})
	}
}

func TestPublishStoresPage(t *testing.T) {
	svc := newTestService(t)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("IDT", 3*3600))
	svc.now = func() time.Time { return fixed }

	p, err := svc.Publish("space-shooter", "Class 3B", "Lee@School.org")
	if err != nil {
		t.Fatalf("Publish() failed: %v", err)
	}
	if p.UUID == "" {
		t.Error("expected a UUID")
	}
	if p.Email != "lee@school.org" {
		t.Errorf("Email = %q, expected lowercase", p.Email)
	}
	if p.CreatedAt.Location() != time.UTC || !p.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, expected %v in UTC", p.CreatedAt, fixed)
	}

	got, err := svc.PageByUUID(p.UUID)
	if err != nil {
		t.Fatalf("PageByUUID() failed: %v", err)
	}
	if got.PageName != "Class 3B" || got.GameSlug != "space-shooter" {
		t.Errorf("PageByUUID() = %+v", got)
	}

	pages, err := svc.PagesByEmail("LEE@school.org")
	if err != nil {
		t.Fatalf("PagesByEmail() failed: %v", err)
	}
	if len(pages) != 1 || pages[0].UUID != p.UUID {
		t.Errorf("PagesByEmail() = %+v, expected the published page", pages)
	}
}

func TestPagesNewestFirst(t *testing.T) {
	svc := newTestService(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	step := 0
	svc.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}

	first, _ := svc.Publish("space-shooter", "first", "a@b.c")
	second, _ := svc.Publish("fruit-ninja", "second", "a@b.c")
	if _, err := svc.Publish("restaurant", "other", "x@y.z"); err != nil {
		t.Fatalf("Publish() failed: %v", err)
	}

	pages, err := svc.PagesByEmail("a@b.c")
	if err != nil {
		t.Fatalf("PagesByEmail() failed: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if pages[0].UUID != second.UUID || pages[1].UUID != first.UUID {
		t.Errorf("pages not ordered newest first: %s, %s", pages[0].PageName, pages[1].PageName)
	}
}

func TestDeleteRequiresOwner(t *testing.T) {
	svc := newTestService(t)
	p, err := svc.Publish("space-shooter", "mine", "owner@b.c")
	if err != nil {
		t.Fatalf("Publish() failed: %v", err)
	}

	if err := svc.Delete(p.UUID, "intruder@b.c"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() by stranger = %v, expected ErrNotFound", err)
	}
	if _, err := svc.PageByUUID(p.UUID); err != nil {
		t.Errorf("page should survive a foreign delete: %v", err)
	}

	if err := svc.Delete(p.UUID, "OWNER@b.c"); err != nil {
		t.Errorf("Delete() by owner failed: %v", err)
	}
	if _, err := svc.PageByUUID(p.UUID); !errors.Is(err, ErrNotFound) {
		t.Errorf("PageByUUID() after delete = %v, expected ErrNotFound", err)
	}
	if err := svc.Delete(p.UUID, "owner@b.c"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() = %v, expected ErrNotFound", err)
	}
}

func TestShareLink(t *testing.T) {
	tests := []struct {
		base     string
		expected string
	}{
		{"https://arcade.example", "https://arcade.example/p/abc"},
		{"https://arcade.example/", "https://arcade.example/p/abc"},
		{"", "/p/abc"},
	}
	for _, tt := range tests {
		if got := ShareLink(tt.base, "abc"); got != tt.expected {
			t.Errorf("ShareLink(%q) = %q, expected %q", tt.base, got, tt.expected)
		}
	}
}
