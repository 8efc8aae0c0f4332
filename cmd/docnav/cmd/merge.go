package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docnav/internal/adapters/display"
	"docnav/internal/application/commands"
	"docnav/internal/config"
	"docnav/internal/domain"
)

var (
	mergeInputs     []string
	mergeDir        string
	mergeOutput     string
	mergeMenuTitle  string
	mergeBackLabel  string
	mergeSeparator  string
	mergeTOCDepth   int
	mergeKeepStyles bool
	mergeDryRun     bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge documents into one navigable file",
	Long: `Merge multiple Word (.docx) files with a clickable navigation menu.

If no input files are specified with --inputs, all .docx files in the
directory given by --dir (default: current directory) are merged,
excluding the output file itself and editor lock files.

Examples:
  docnav merge
  docnav merge --dir reports --output reports/combined.docx
  docnav merge --inputs Finance_Q1.docx --inputs HR_Handbook.docx
  docnav merge --dry-run`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		files := mergeInputs
		if len(files) == 0 {
			collected, err := discovery.Collect(mergeDir, mergeOutput)
			if err != nil {
				return err
			}
			files = collected
		}

		if len(files) == 0 {
			fmt.Fprintln(os.Stderr, "No input files found.")
			fmt.Fprintln(os.Stderr, "Place .docx files in the directory or specify files with --inputs")
			os.Exit(1)
		}

		fmt.Print(display.FileList(files))

		opts := domain.Options{
			MenuTitle:  mergeMenuTitle,
			BackLabel:  mergeBackLabel,
			Separator:  mergeSeparator,
			TOCDepth:   mergeTOCDepth,
			KeepStyles: mergeKeepStyles,
		}

		cmd := commands.NewMergeCommand(store, files, mergeOutput, opts)

		if mergeDryRun {
			// No reporter: the plan is rendered below instead.
			fmt.Println("\n--- DRY RUN MODE ---")
			cmd.DryRun = true
			result, err := cmd.Execute(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(result.Message)
			fmt.Println()
			fmt.Print(display.Plan(result.Plan))
			return nil
		}

		cmd.Reporter = os.Stderr
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(display.Success.Render("Successfully created: " + result.OutputPath))
		if result.Skipped > 0 {
			fmt.Println(display.Warn.Render(fmt.Sprintf("Skipped %d files (see warnings above)", result.Skipped)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringArrayVar(&mergeInputs, "inputs", nil,
		"explicit list of .docx files to merge; repeatable")
	mergeCmd.Flags().StringVar(&mergeDir, "dir", ".",
		"directory to discover .docx files in when --inputs is not given")
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", config.Output(),
		"output file path")
	mergeCmd.Flags().StringVar(&mergeMenuTitle, "menu-title", "Menu",
		"heading text for the clickable menu")
	mergeCmd.Flags().StringVar(&mergeBackLabel, "back-label", "Back to menu",
		"label for the backlink at the start of each section")
	mergeCmd.Flags().StringVar(&mergeSeparator, "category-sep", config.Separator(),
		"separator between category and document name in filenames")
	mergeCmd.Flags().IntVar(&mergeTOCDepth, "toc-depth", 2,
		"menu depth; below 2 the category sub-headings are omitted")
	mergeCmd.Flags().BoolVar(&mergeKeepStyles, "keep-styles", true,
		"preserve the source documents' styles")
	mergeCmd.Flags().BoolVar(&mergeDryRun, "dry-run", false,
		"show what would be merged without writing output")
}
