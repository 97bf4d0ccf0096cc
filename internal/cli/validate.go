package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tonemill/tonemill/internal/document"
	"github.com/tonemill/tonemill/internal/validate"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// newValidateCmd builds the validate command.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the theme artifact for structural and accessibility faults",
		Long: `Check the generated theme artifact against five independent rules:
structure, colour format, WCAG contrast, player count, and cross-variant
consistency. Every rule runs to completion and every violation is reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("Validating theme...")
			cmd.Println()

			doc, err := document.LoadTheme(themePath)
			if err != nil {
				return err
			}

			results := validate.All(doc)
			printResults(cmd.OutOrStdout(), results)

			cmd.Println()
			if !validate.AllOK(results) {
				return fmt.Errorf("validation failed")
			}
			cmd.Println("Validation complete.")
			return nil
		},
	}
}

// printResults writes one line per result, coloured when stdout is a
// terminal.
func printResults(w io.Writer, results []validate.Result) {
	styled := isTerminal(os.Stdout)
	for _, r := range results {
		msg := r.Message
		if styled {
			if r.OK {
				msg = passStyle.Render(msg)
			} else {
				msg = failStyle.Render(msg)
			}
		}
		fmt.Fprintln(w, msg)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
