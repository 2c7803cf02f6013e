// Package portal holds the game catalog and published pages: named share
// links that point at one game of the catalog.
package portal

import "github.com/vovakirdan/arcade-portal/internal/registry"

// Entry describes one game of the portal catalog.
type Entry struct {
	Slug        string
	Title       string
	Emoji       string
	Description string
}

// Catalog lists every game the portal knows about, oldest first.
// Only some of them have a playable implementation in this build.
var Catalog = []Entry{
	{
		Slug:        "space-shooter",
		Title:       "Space Shooter",
		Emoji:       "🚀",
		Description: "Fly a spaceship and blast enemies in space!",
	},
	{
		Slug:        "balloon-popper",
		Title:       "Balloon Popper",
		Emoji:       "🎈",
		Description: "Pop as many balloons as you can! Upgrade characters and unlock new abilities.",
	},
	{
		Slug:        "fruit-ninja",
		Title:       "Fruit Ninja",
		Emoji:       "🍉",
		Description: "Swipe to slice flying fruits! Avoid bombs and chain combos for high scores.",
	},
	{
		Slug:        "restaurant",
		Title:       "Robot Chef",
		Emoji:       "🤖",
		Description: "Pick ingredients, chop them on a cutting board, and serve to a robot judge!",
	},
	{
		Slug:        "english-learning",
		Title:       "Learn English",
		Emoji:       "📚",
		Description: "Learn English words with pictures, sounds, and Hebrew translations!",
	},
}

// Lookup finds a catalog entry by slug.
func Lookup(slug string) (Entry, bool) {
	for _, e := range Catalog {
		if e.Slug == slug {
			return e, true
		}
	}
	return Entry{}, false
}

// Latest returns the most recently added game.
func Latest() Entry {
	return Catalog[len(Catalog)-1]
}

// Playable reports whether slug has a registered implementation.
func Playable(slug string) bool {
	return registry.Exists(slug)
}
