package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/newsdex/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse stored articles interactively",
	Long: `Launch the interactive terminal browser over stored articles.

Controls:
  ↑/↓       - Move between articles
  PgUp/PgDn - Scroll the article body
  Enter     - Run the typed search
  Esc       - Clear the search
  Ctrl-C    - Quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	// Recover with a stack trace; a panicked TUI leaves the terminal
	// in a bad state otherwise.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in browser: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if err := ensureServices(); err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(docStore), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}

	return nil
}
