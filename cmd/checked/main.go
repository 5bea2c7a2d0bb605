// Command checked is a development companion for the checked primitives:
// it runs one-shot validated numeric conversions and prints the unit
// whitelists the parser accepts.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/checked"
	"github.com/hupe1980/checked/numparse"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	parseType string
	category  string
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "checked",
		Short: "Defensive stdlib-replacement primitives",
	}
	rootCmd.AddCommand(newParseCmd(), newUnitsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse VALUE",
		Short: "Run a validated numeric conversion",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().StringVarP(&parseType, "type", "t", "uint64", "target type (uint8..uint64, int8..int64, int, uint, float32, float64)")
	cmd.Flags().StringVarP(&category, "category", "c", "none", "unit category (none, datasize, sectortype, time, power, volts, amps, temperature)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log the conversion at debug level")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	text := args[0]

	cat, err := categoryByName(category)
	if err != nil {
		return err
	}

	logger := checked.NoopLogger()
	if verbose {
		logger = checked.NewTextLogger(slog.LevelDebug)
	}

	// A unit slot only makes sense when a category was requested.
	var unit string
	slot := &unit
	if cat == numparse.None {
		slot = nil
	}

	value, perr := parseValue(text, parseType, slot, cat)
	logger.LogParse(context.Background(), text, cat.String(), perr)
	if perr != nil {
		var re *checked.RangeError
		if errors.As(perr, &re) {
			fmt.Printf("%s (out of range, clamped)\n", re.Clamped)
		}
		return perr
	}

	out := value
	if unit != "" {
		out += " " + unit
	}
	if bytes, ok := dataSizeBytes(value, unit, cat); ok {
		out += fmt.Sprintf(" = %s", humanize.IBytes(bytes))
	}
	fmt.Println(out)
	return nil
}

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "units [CATEGORY]",
		Short:     "Print the accepted unit suffixes",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: categoryNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := numparse.Categories()
			if len(args) == 1 {
				cat, err := categoryByName(args[0])
				if err != nil {
					return err
				}
				cats = []numparse.Category{cat}
			}

			table := tablewriter.NewTable(os.Stdout)
			table.Header([]string{"Category", "Units"})
			var rows [][]string
			for _, cat := range cats {
				row := []string{cat.String(), ""}
				for i, u := range numparse.Units(cat) {
					if i > 0 {
						row[1] += " "
					}
					row[1] += u
				}
				rows = append(rows, row)
			}
			table.Bulk(rows)
			table.Render()
			return nil
		},
	}
}

// parseValue dispatches to the requested width and renders the result in
// decimal, matching the clamp the parser reports on range failure.
func parseValue(text, typ string, unit *string, cat numparse.Category) (string, error) {
	switch typ {
	case "uint8":
		v, err := numparse.Uint8(text, unit, cat)
		return strconv.FormatUint(uint64(v), 10), err
	case "uint16":
		v, err := numparse.Uint16(text, unit, cat)
		return strconv.FormatUint(uint64(v), 10), err
	case "uint32":
		v, err := numparse.Uint32(text, unit, cat)
		return strconv.FormatUint(uint64(v), 10), err
	case "uint64":
		v, err := numparse.Uint64(text, unit, cat)
		return strconv.FormatUint(v, 10), err
	case "uint":
		v, err := numparse.Uint(text, unit, cat)
		return strconv.FormatUint(uint64(v), 10), err
	case "int8":
		v, err := numparse.Int8(text, unit, cat)
		return strconv.FormatInt(int64(v), 10), err
	case "int16":
		v, err := numparse.Int16(text, unit, cat)
		return strconv.FormatInt(int64(v), 10), err
	case "int32":
		v, err := numparse.Int32(text, unit, cat)
		return strconv.FormatInt(int64(v), 10), err
	case "int64":
		v, err := numparse.Int64(text, unit, cat)
		return strconv.FormatInt(v, 10), err
	case "int":
		v, err := numparse.Int(text, unit, cat)
		return strconv.FormatInt(int64(v), 10), err
	case "float32":
		v, err := numparse.Float32(text, unit, cat)
		return strconv.FormatFloat(float64(v), 'g', -1, 32), err
	case "float64":
		v, err := numparse.Float64(text, unit, cat)
		return strconv.FormatFloat(v, 'g', -1, 64), err
	default:
		return "", fmt.Errorf("%w: unknown type %q", checked.ErrInvalidArgument, typ)
	}
}

func categoryByName(name string) (numparse.Category, error) {
	for _, cat := range append([]numparse.Category{numparse.None}, numparse.Categories()...) {
		if cat.String() == name {
			return cat, nil
		}
	}
	return numparse.None, fmt.Errorf("%w: unknown category %q", checked.ErrInvalidArgument, name)
}

func categoryNames() []string {
	var names []string
	for _, cat := range numparse.Categories() {
		names = append(names, cat.String())
	}
	return names
}

// dataSizeBytes resolves a parsed data-size value to a byte count for
// display. BLOCKS and SECTORS have no fixed width and are skipped.
func dataSizeBytes(value, unit string, cat numparse.Category) (uint64, bool) {
	if cat != numparse.DataSize {
		return 0, false
	}
	mult := map[string]uint64{
		"B":   1,
		"KB":  1000,
		"KiB": 1 << 10,
		"MB":  1000 * 1000,
		"MiB": 1 << 20,
		"GB":  1000 * 1000 * 1000,
		"GiB": 1 << 30,
		"TB":  1000 * 1000 * 1000 * 1000,
		"TiB": 1 << 40,
	}
	m, ok := mult[unit]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil || v > ^uint64(0)/m {
		return 0, false
	}
	return v * m, true
}
