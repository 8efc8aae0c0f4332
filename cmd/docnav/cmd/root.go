package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docnav/internal/adapters/filesystem"
	"docnav/internal/ports"
)

var (
	store     ports.DocumentStore
	discovery ports.Discovery
)

var rootCmd = &cobra.Command{
	Use:   "docnav",
	Short: "Merge Word documents with a clickable navigation menu",
	Long: `docnav merges multiple Word (.docx) files into a single document,
prefixed with a clickable menu that groups entries by category.

Categories come from filenames: "Finance_Q1 Report.docx" files under a
"Finance" heading. Each merged document gets a bookmarked heading the
menu links to, plus a back-to-menu link of its own.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		repo := filesystem.NewRepository()
		store = repo
		discovery = repo
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
