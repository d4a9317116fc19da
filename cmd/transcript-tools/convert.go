package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yagregx/literate-octo-telegram/internal/tabular"
)

var convertCmd = &cobra.Command{
	Use:   "convert <json-to-csv|csv-to-json> <input> <output>",
	Short: "Convert a tabular data file between JSON and CSV",
	Long: `Convert translates a whole file between JSON and CSV.

json-to-csv takes a JSON array of objects (or a single object) and writes a
CSV table whose columns are the sorted union of all keys; records missing a
key get an empty cell. csv-to-json takes a CSV table with a header row and
writes an indented JSON array of objects with every value kept as text.`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	direction, input, output := strings.ToLower(args[0]), args[1], args[2]

	if _, err := os.Stat(input); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input file %q not found", input)
		}
		return err
	}

	switch direction {
	case "json-to-csv":
		_, err := tabular.JSONToCSV(input, output, cmd.OutOrStdout())
		return err
	case "csv-to-json":
		_, err := tabular.CSVToJSON(input, output, cmd.OutOrStdout())
		return err
	default:
		return fmt.Errorf("unknown direction %q: use json-to-csv or csv-to-json", direction)
	}
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
