package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/vdobler/plotgrid"
)

// NewDescribeCommand creates the describe command.
func NewDescribeCommand() *cobra.Command {
	var rows int
	cmd := &cobra.Command{
		Use:   "describe [file]",
		Short: "Print summary statistics of every numeric column",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, df, err := setup(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if rows > 0 {
				df.Head(rows).Print(out)
			}
			writeSummaries(out, df.Name, plotgrid.Describe(df))
			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 0, "also print the first n rows of the data")
	return cmd
}

func writeSummaries(w io.Writer, name string, sums []plotgrid.ColumnSummary) {
	if len(sums) == 0 {
		_, _ = fmt.Fprintln(w, plotgrid.NoNumericColumns)
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.SetTitle(name)
	t.AppendHeader(table.Row{"column", "type", "count", "distinct", "mean", "std", "min", "25%", "50%", "75%", "max"})
	for _, s := range sums {
		t.AppendRow(table.Row{
			s.Name, s.Type.String(), s.Count, s.Distinct,
			num(s.Mean), num(s.Std), num(s.Min), num(s.Q1), num(s.Median), num(s.Q3), num(s.Max),
		})
	}
	t.Render()
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'g', 6, 64)
}
