package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tonemill/tonemill/internal/document"
)

// coreTokens is the set of syntax tokens a complete Zed theme is expected to
// style.
var coreTokens = []string{
	"attribute", "boolean", "comment", "comment.doc", "constant", "constructor",
	"embedded", "emphasis", "emphasis.strong", "enum", "function", "hint",
	"keyword", "label", "link_text", "link_uri", "number", "operator",
	"predictive", "preproc", "property", "punctuation", "string", "tag",
	"text.literal", "title", "type", "variable", "variant",
}

// newCoverageCmd builds the coverage command.
func newCoverageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coverage",
		Short: "Check syntax token coverage against the core Zed token set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.LoadTheme(themePath)
			if err != nil {
				return err
			}

			ours := themeSyntaxTokens(doc)

			var missing, covered []string
			for _, token := range coreTokens {
				if _, ok := ours[token]; ok {
					covered = append(covered, token)
				} else {
					missing = append(missing, token)
				}
			}

			extra := 0
			core := make(map[string]struct{}, len(coreTokens))
			for _, t := range coreTokens {
				core[t] = struct{}{}
			}
			for t := range ours {
				if _, ok := core[t]; !ok {
					extra++
				}
			}

			cmd.Println("Token Coverage")
			cmd.Println("========================================")
			cmd.Printf("Our tokens:     %d\n", len(ours))
			cmd.Printf("Core tokens:    %d/%d covered\n", len(covered), len(coreTokens))

			if len(missing) > 0 {
				cmd.Println()
				cmd.Println("Missing core tokens:")
				sort.Strings(missing)
				for _, t := range missing {
					cmd.Printf("  - %s\n", t)
				}
			} else {
				cmd.Println()
				cmd.Println("All core tokens covered!")
			}

			cmd.Println()
			cmd.Printf("Language-specific: %d extra tokens\n", extra)

			if len(missing) > 0 {
				return fmt.Errorf("%d core tokens missing", len(missing))
			}
			return nil
		},
	}
}

// themeSyntaxTokens extracts the first variant's syntax token set from a
// generic theme document.
func themeSyntaxTokens(doc map[string]any) map[string]struct{} {
	tokens := make(map[string]struct{})

	themes, _ := doc["themes"].([]any)
	if len(themes) == 0 {
		return tokens
	}
	first, _ := themes[0].(map[string]any)
	style, _ := first["style"].(map[string]any)
	syntax, _ := style["syntax"].(map[string]any)

	for t := range syntax {
		tokens[t] = struct{}{}
	}
	return tokens
}
