// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/lvlp/lpfile"
	"github.com/katalvlaran/lvlp/runner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const formatText = "text"

// ErrSolveFailed is returned when the solve ended in a non-optimal state.
// The result has already been written when it is returned.
var ErrSolveFailed = errors.New("solve failed")

func newSolveCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve -f FILE",
		Short: "Solve a problem document (YAML or JSON; - reads stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(v, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	fs := cmd.Flags()
	fs.StringP(keyFile, "f", "", "problem document, - for stdin")
	fs.StringP(keyOutput, "o", formatText, "output format: text, json or yaml")
	addSolverFlags(fs)

	return cmd
}

func runSolve(v *viper.Viper, in io.Reader, out io.Writer) error {
	cfg, err := solverConfig(v)
	if err != nil {
		return err
	}
	format := v.GetString(keyOutput)
	if format != formatText && format != lpfile.FormatJSON && format != lpfile.FormatYAML {
		return fmt.Errorf("output format %q: %w", format, lpfile.ErrBadFormat)
	}

	doc, err := readDocument(v.GetString(keyFile), in)
	if err != nil {
		return err
	}

	r, err := runner.New(cfg, nil)
	if err != nil {
		return err
	}
	res, solveErr := r.Run(doc)

	if err = writeResult(out, res, format); err != nil {
		return err
	}
	if solveErr != nil {
		return fmt.Errorf("%w: %w", ErrSolveFailed, solveErr)
	}

	return nil
}

func readDocument(path string, in io.Reader) (*lpfile.Document, error) {
	switch path {
	case "":
		return nil, errors.New("no problem document: pass -f FILE or -f -")
	case "-":
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return lpfile.Decode(data)
	default:
		return lpfile.Load(path)
	}
}

func writeResult(out io.Writer, res lpfile.Result, format string) error {
	if format != formatText {
		b, err := lpfile.Encode(res, format)
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if res.Name != "" {
		fmt.Fprintf(tw, "problem:\t%s\n", res.Name)
	}
	fmt.Fprintf(tw, "status:\t%s\n", res.Status)
	if res.Value != nil {
		fmt.Fprintf(tw, "objective:\t%g\n", *res.Value)
	}
	fmt.Fprintf(tw, "pivots:\t%d (%d degenerate)\n", res.Iterations, res.DegeneratePivots)
	if res.Feasible != nil && !*res.Feasible {
		fmt.Fprintf(tw, "warning:\t%s\n", res.Violation)
	}
	if res.Error != "" {
		fmt.Fprintf(tw, "error:\t%s\n", res.Error)
	}
	for _, a := range res.Variables {
		fmt.Fprintf(tw, "  %s\t%g\n", a.Name, a.Value)
	}

	return tw.Flush()
}
