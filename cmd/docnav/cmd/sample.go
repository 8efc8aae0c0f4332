package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docnav/internal/application/commands"
)

var sampleCmd = &cobra.Command{
	Use:   "sample [dir]",
	Short: "Create a sample document corpus",
	Long: `Create a small set of sample .docx files (Finance, HR, and Marketing
categories) to try a merge on. Files are written to the given directory,
or the current directory when omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		cmd := commands.NewSampleCommand(dir)
		cmd.Reporter = os.Stdout
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}
