// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yagregx/literate-octo-telegram/internal/extract"
	"github.com/yagregx/literate-octo-telegram/internal/transcript"
)

var gpaCmd = &cobra.Command{
	Use:   "gpa [transcript.pdf]",
	Short: "Compute a cumulative GPA over a range of transcript terms",
	Long: `Gpa extracts the text layer of a transcript PDF, lists every detected
term in chronological order, and computes the cumulative GPA over the term
range you pick (1-based, inclusive).

Terms missing grade points or credits can be filled in interactively; a term
still missing either value is skipped and reported. When the credit total of
the selection is zero no GPA is computed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGPA,
}

func init() {
	gpaCmd.Flags().String("report", "", "write a YAML or JSON term report to this path")
	gpaCmd.Flags().Bool("no-prompt", false, "do not ask for missing grade points or credits")

	rootCmd.AddCommand(gpaCmd)
}

func runGPA(cmd *cobra.Command, args []string) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		fmt.Fprint(out, "Enter transcript PDF path: ")
		line, err := readLine(in)
		if err != nil {
			return err
		}
		path = strings.TrimSpace(line)
	}

	noPrompt, _ := cmd.Flags().GetBool("no-prompt")
	reportPath, _ := cmd.Flags().GetString("report")

	return gpaSession(extract.PDFExtractor{}, path, !noPrompt && viper.GetBool("gpa.prompt"), reportPath, in, out)
}

// gpaSession runs the interactive flow: list terms, read the range, fill
// missing values, print totals and the GPA.
func gpaSession(x extract.Extractor, path string, prompt bool, reportPath string, in *bufio.Scanner, out io.Writer) error {
	text, err := x.ExtractText(path)
	if err != nil {
		return err
	}

	list := transcript.Parse(text, os.Stderr)
	if list.Len() == 0 {
		return fmt.Errorf("no terms found in %s", path)
	}
	chrono := list.Chronological()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Detected terms (chronological order):")
	for i, t := range chrono {
		fmt.Fprintf(out, "%d. %s | Grade Points: %s | Credits: %s\n",
			i+1, t.Name, fieldText(t.GradePoints), fieldText(t.Credits))
	}

	start, err := promptIndex(in, out, "\nEnter start term number: ")
	if err != nil {
		return err
	}
	end, err := promptIndex(in, out, "Enter end term number: ")
	if err != nil {
		return err
	}

	sel := transcript.Range{Start: start - 1, End: end - 1}
	if err := sel.Validate(len(chrono)); err != nil {
		return err
	}
	selected := sel.Slice(chrono)

	if prompt {
		p := &consolePrompter{in: in, out: out}
		if err := transcript.FillMissing(selected, p); err != nil {
			return err
		}
	}

	summary := transcript.Aggregate(selected)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Selected terms:")
	for _, t := range selected {
		fmt.Fprintf(out, " - %s: Grade Points: %s | Credits: %s\n",
			t.Name, fieldText(t.GradePoints), fieldText(t.Credits))
	}
	if len(summary.Skipped) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "WARNING: still missing values for these terms:")
		for _, name := range summary.Skipped {
			fmt.Fprintln(out, "  -", name)
		}
	}

	fmt.Fprintf(out, "\nTotals -> Grade Points: %.2f   Credits: %.2f\n", summary.GradePoints, summary.Credits)
	if gpa, ok := summary.GPA(); ok {
		fmt.Fprintf(out, "Cumulative GPA for selected range: %.4f\n", gpa)
	} else {
		fmt.Fprintln(out, "Cannot compute GPA: total credits = 0.")
	}

	if reportPath != "" {
		if err := transcript.WriteReport(reportPath, transcript.NewReport(path, chrono)); err != nil {
			return err
		}
		fmt.Fprintf(out, "Report written to %s\n", reportPath)
	}
	return nil
}

// consolePrompter asks for missing term values on the interactive session.
// Blank input skips the field; non-numeric input is rejected and asked again.
type consolePrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *consolePrompter) Prompt(termName, field string) (float64, bool, error) {
	for {
		fmt.Fprintf(p.out, "%s is missing %s. Enter value (or press Enter to skip): ", termName, field)
		line, err := readLine(p.in)
		if err != nil {
			return 0, false, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return 0, false, nil
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid number. Try again.")
			continue
		}
		return v, true, nil
	}
}

// promptIndex reads a 1-based term number from the session.
func promptIndex(in *bufio.Scanner, out io.Writer, prompt string) (int, error) {
	fmt.Fprint(out, prompt)
	line, err := readLine(in)
	if err != nil {
		return 0, err
	}
	line = strings.TrimSpace(line)
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid term number %q", line)
	}
	return n, nil
}

// readLine returns the next input line, or io.EOF when input ends.
func readLine(in *bufio.Scanner) (string, error) {
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return in.Text(), nil
}

// fieldText formats an optional numeric field for display.
func fieldText(v *float64) string {
	if v == nil {
		return "MISSING"
	}
	return fmt.Sprintf("%.2f", *v)
}
