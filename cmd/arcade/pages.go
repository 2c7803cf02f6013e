package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-portal/internal/platform/tui"
	"github.com/vovakirdan/arcade-portal/internal/portal"
	"github.com/vovakirdan/arcade-portal/internal/storage"
)

const defaultBaseURL = "http://localhost:3000"

var (
	flagPageName  string
	flagEmail     string
	flagBaseURL   string
	flagPagesText bool
	flagOpenTerm  bool
)

var publishCmd = &cobra.Command{
	Use:   "publish <game>",
	Short: "Publish a page for a game",
	Long: `Create a named page that links to a game and print its share link.

Examples:
  arcade publish space-shooter --name "Class 3B" --email lee@school.org`,
	Args: cobra.ExactArgs(1),
	RunE: runPublish,
}

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Browse your published pages",
	Long: `List the pages published with an email, newest first. In a terminal
this opens a table where Enter plays a page's game and X unpublishes it.

Examples:
  arcade pages --email lee@school.org
  arcade pages --email lee@school.org --plain`,
	RunE: runPages,
}

var unpublishCmd = &cobra.Command{
	Use:   "unpublish <uuid>",
	Short: "Delete one of your pages",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnpublish,
}

var openCmd = &cobra.Command{
	Use:   "open <uuid>",
	Short: "Play the game behind a page",
	Long: `Look up a published page and start its game, in a desktop window by
default or in the terminal with --terminal.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	publishCmd.Flags().StringVar(&flagPageName, "name", "", "Page name")
	publishCmd.Flags().StringVar(&flagEmail, "email", "", "Owner email")
	_ = publishCmd.MarkFlagRequired("name")
	_ = publishCmd.MarkFlagRequired("email")

	pagesCmd.Flags().StringVar(&flagEmail, "email", "", "Owner email")
	pagesCmd.Flags().BoolVar(&flagPagesText, "plain", false, "Print a plain list instead of the table")
	_ = pagesCmd.MarkFlagRequired("email")

	unpublishCmd.Flags().StringVar(&flagEmail, "email", "", "Owner email")
	_ = unpublishCmd.MarkFlagRequired("email")

	openCmd.Flags().BoolVar(&flagOpenTerm, "terminal", false, "Play in the terminal instead of a window")

	for _, c := range []*cobra.Command{publishCmd, pagesCmd} {
		c.Flags().StringVar(&flagBaseURL, "base-url", defaultBaseURL, "Portal address used in share links")
	}
}

func openService() (*portal.Service, *storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return portal.NewService(store, logger), store, nil
}

func runPublish(_ *cobra.Command, args []string) error {
	svc, store, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	p, err := svc.Publish(args[0], flagPageName, flagEmail)
	if err != nil {
		return err
	}
	fmt.Printf("Published %q (%s)\n", p.PageName, p.UUID)
	fmt.Println(portal.ShareLink(flagBaseURL, p.UUID))
	return nil
}

func runPages(_ *cobra.Command, _ []string) error {
	svc, store, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagPagesText {
		pages, err := svc.PagesByEmail(flagEmail)
		if err != nil {
			return err
		}
		if len(pages) == 0 {
			fmt.Println("No pages yet.")
			return nil
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tGAME\tCREATED\tLINK")
		for _, p := range pages {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				p.PageName, p.GameSlug, p.CreatedAt.Local().Format("2006-01-02 15:04"), portal.ShareLink(flagBaseURL, p.UUID))
		}
		return tw.Flush()
	}

	cfg := runtimeConfig()
	res, err := tui.RunPages(svc, flagEmail, flagBaseURL, cfg.ScreenW, cfg.ScreenH)
	if err != nil {
		return err
	}
	if res.Open == nil {
		return nil
	}
	sound, done := openSound()
	defer done()
	return playInTerminal(res.Open.GameSlug, store, sound, cfg)
}

func runUnpublish(_ *cobra.Command, args []string) error {
	svc, store, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := svc.Delete(args[0], flagEmail); err != nil {
		return err
	}
	fmt.Println("Page deleted.")
	return nil
}

func runOpen(_ *cobra.Command, args []string) error {
	svc, store, err := openService()
	if err != nil {
		return err
	}
	p, err := svc.PageByUUID(args[0])
	store.Close()
	if err != nil {
		return err
	}
	if err := requirePlayable(p.GameSlug); err != nil {
		return fmt.Errorf("page %q: %w", p.PageName, err)
	}

	logger.Info("opening page", "uuid", p.UUID, "game", p.GameSlug)
	if !flagOpenTerm {
		return playInWindow(p.GameSlug)
	}

	store = openStore()
	if store != nil {
		defer store.Close()
	}
	sound, done := openSound()
	defer done()
	return playInTerminal(p.GameSlug, store, sound, runtimeConfig())
}
