package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-portal/internal/portal"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the portal's games",
	Long:  `Shows the portal catalog and which games can be played from this program.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	maxSlug := len("ID")
	for _, e := range portal.Catalog {
		maxSlug = max(maxSlug, len(e.Slug))
	}

	fmt.Println("Games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-16s  %s\n", maxSlug, "ID", "Title", "Where")
	fmt.Printf("  %-*s  %-16s  %s\n", maxSlug, "--", "-----", "-----")
	for _, e := range portal.Catalog {
		where := "web"
		if portal.Playable(e.Slug) {
			where = "here"
		}
		fmt.Printf("  %-*s  %-16s  %s\n", maxSlug, e.Slug, e.Title, where)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' or 'arcade window <id>' to play a game.")
}
