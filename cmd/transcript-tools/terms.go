package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yagregx/literate-octo-telegram/internal/extract"
	"github.com/yagregx/literate-octo-telegram/internal/transcript"
)

var termsCmd = &cobra.Command{
	Use:   "terms <transcript.pdf>",
	Short: "List the terms detected in a transcript PDF",
	Long: `Terms extracts the text layer of a transcript PDF and prints every
detected term in chronological order with its grade points and credits.
With --out it also writes a YAML or JSON report of the parsed terms.`,
	Args: cobra.ExactArgs(1),
	RunE: runTerms,
}

func runTerms(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	text, err := extract.PDFExtractor{}.ExtractText(args[0])
	if err != nil {
		return err
	}

	list := transcript.Parse(text, os.Stderr)
	if list.Len() == 0 {
		return fmt.Errorf("no terms found in %s", args[0])
	}
	chrono := list.Chronological()

	for i, t := range chrono {
		fmt.Fprintf(out, "%d. %s | Grade Points: %s | Credits: %s\n",
			i+1, t.Name, fieldText(t.GradePoints), fieldText(t.Credits))
	}

	if reportPath, _ := cmd.Flags().GetString("out"); reportPath != "" {
		if err := transcript.WriteReport(reportPath, transcript.NewReport(args[0], chrono)); err != nil {
			return err
		}
		fmt.Fprintf(out, "Report written to %s\n", reportPath)
	}
	return nil
}

func init() {
	termsCmd.Flags().String("out", "", "write a YAML or JSON term report to this path")

	rootCmd.AddCommand(termsCmd)
}
