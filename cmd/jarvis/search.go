package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/uidejarvis/jarvis/internal/domain/search"
)

func newSearchCmd() *cobra.Command {
	var target int

	cmd := &cobra.Command{
		Use:   "search --target N v1 v2 ...",
		Short: "Run a traced binary search over an ascending sequence",
		Long: `Runs the same binary search as POST /binary-search and prints every
probe. Negative values must follow a "--" separator.

Example:
  jarvis search --target 7 1 3 5 7 9 11`,
		Args: usageArgs(cobra.ArbitraryArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("target") {
				return &usageError{err: errors.New(`required flag "target" not set`)}
			}
			seq, err := parseSequence(args)
			if err != nil {
				return &usageError{err: err}
			}
			if err := search.ValidateSequence(seq); err != nil {
				return err
			}
			res := search.Search(seq, target)
			return renderTrace(cmd.OutOrStdout(), seq, res)
		},
	}
	cmd.Flags().IntVarP(&target, "target", "t", 0, "value to look for (required)")
	return cmd
}

func parseSequence(args []string) ([]int, error) {
	seq := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", a)
		}
		seq = append(seq, v)
	}
	return seq, nil
}

func renderTrace(out io.Writer, seq []int, res search.Result) error {
	header := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	gray := color.New(color.FgHiBlack)

	header.Fprintln(out, "Búsqueda binaria") //nolint:errcheck

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "paso\tlow\thigh\tmid\tarr[mid]\tcomparación") //nolint:errcheck
	for i, st := range res.Steps {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%s\n", //nolint:errcheck
			i+1, st.Low, st.High, st.Mid, st.MidValue, st.Comparison.Label())
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render trace: %w", err)
	}

	if res.Found {
		green.Fprintf(out, "Encontrado en el índice %d\n", *res.Index) //nolint:errcheck
	} else {
		yellow.Fprintln(out, "No encontrado") //nolint:errcheck
	}
	gray.Fprintf(out, "%d pasos (máximo %d para %d elementos)\n", //nolint:errcheck
		len(res.Steps), search.MaxSteps(len(seq)), len(seq))
	return nil
}
