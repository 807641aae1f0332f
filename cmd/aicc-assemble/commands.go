package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"aicc-assembler/internal/assemble"
	"aicc-assembler/internal/diagnostic"
	"aicc-assembler/internal/model"
	"aicc-assembler/internal/tables"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <tables.yaml>...",
		Short: "Assemble course tables and print a manifest summary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.assembleAll(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0

			for _, r := range results {
				if r.err != nil {
					failed++
					printFailure(out, r)

					continue
				}

				printSummary(out, r.path, r.manifest)
			}

			return failures(failed, len(results))
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <tables.yaml>...",
		Short: "Assemble course tables and report diagnostics only",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.assembleAll(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0

			for _, r := range results {
				if r.err != nil {
					failed++
					printFailure(out, r)

					continue
				}

				fmt.Fprintf(out, "ok %s\n", r.path)
				printDiagnostics(out, r.manifest.Diagnostics())
			}

			return failures(failed, len(results))
		},
	}
}

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <tables.yaml>",
		Short: "Assemble course tables and print the enriched manifest as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := tables.LoadFile(args[0])
			if err != nil {
				return err
			}

			m, err := a.assembler().Assemble(f.Tables())
			if err != nil {
				printFailure(cmd.OutOrStdout(), result{path: args[0], err: err})
				return failures(1, 1)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)

			if err := enc.Encode(m); err != nil {
				return fmt.Errorf("failed to encode manifest: %w", err)
			}

			return enc.Close()
		},
	}
}

func failures(failed, total int) error {
	if failed == 0 {
		return nil
	}

	return fmt.Errorf("%d of %d course(s) failed to assemble", failed, total)
}

func printFailure(w io.Writer, r result) {
	fmt.Fprintf(w, "FAIL %s\n", r.path)

	var pe *assemble.ParseError
	if errors.As(r.err, &pe) {
		printDiagnostics(w, pe.Issues())
		return
	}

	fmt.Fprintf(w, "  error: %v\n", r.err)
}

func printDiagnostics(w io.Writer, diags []diagnostic.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(w, "  %s: %s\n", d.Severity, d.String())
	}
}

func printSummary(w io.Writer, path string, m *model.Manifest) {
	fmt.Fprintf(w, "%s\n", path)
	fmt.Fprintf(w, "  course:      %s %q", m.Identifier(), m.Title())

	if v := m.Version(); v != "" {
		fmt.Fprintf(w, " (version %s)", v)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  root:        %s\n", m.RootID())
	fmt.Fprintf(w, "  launch:      %s\n", m.LaunchURL())
	fmt.Fprintf(w, "  description: %s\n", m.Description())
	fmt.Fprintf(w, "  units:       %d\n", len(m.AssignableUnits()))

	for _, u := range m.AssignableUnits() {
		fmt.Fprintf(w, "    - %s\n", describeUnit(&u))
	}

	printDiagnostics(w, m.Diagnostics())
}

func describeUnit(u *model.AssignableUnit) string {
	parts := []string{u.SystemID, u.FileName}

	if s, ok := u.MasteryScoreValue(); ok {
		parts = append(parts, fmt.Sprintf("mastery=%.2f", s))
	}

	if d, ok := u.MaxTimeAllowedValue(); ok {
		parts = append(parts, "max_time="+d.String())
	}

	if len(u.TimeLimitActions) > 0 {
		parts = append(parts, "actions="+strings.Join(u.TimeLimitActions, ","))
	}

	parts = append(parts, fmt.Sprintf("mandatory=%t", u.IsMandatory()))

	if c := u.Completion; c != nil {
		parts = append(parts, fmt.Sprintf("completion=%s/%s/%s", dash(c.Action), dash(c.LessonStatus), dash(c.ResultStatus)))
	}

	return strings.Join(parts, " ")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
