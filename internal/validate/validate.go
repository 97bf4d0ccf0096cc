// Package validate checks a generated theme document against structural,
// colour-format, contrast, player-count, and cross-variant consistency rules.
//
// Every rule runs to completion and reports every violation it finds: a
// validation run never short-circuits, and malformed input produces fail
// results rather than errors.
package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/tonemill/tonemill/internal/colour"
)

const (
	// TextContrastMin is the WCAG AA minimum for body text.
	TextContrastMin = 4.5
	// CommentContrastMin is the minimum for comment tokens (large-text AA).
	CommentContrastMin = 3.0
	// PlayerMin is the minimum number of collaborator colours per variant.
	PlayerMin = 8
	// colourReportCap bounds how many malformed colours a single run reports.
	colourReportCap = 10
)

// hexPattern matches a six-digit hex colour with an optional alpha suffix.
var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$`)

// Result is one pass/fail record with a human-readable message.
type Result struct {
	OK      bool
	Message string
}

// Success builds a passing result.
func Success(format string, args ...any) Result {
	return Result{OK: true, Message: "OK: " + fmt.Sprintf(format, args...)}
}

// Failure builds a failing result.
func Failure(format string, args ...any) Result {
	return Result{OK: false, Message: "FAIL: " + fmt.Sprintf(format, args...)}
}

// AllOK reports whether every result passed.
func AllOK(results []Result) bool {
	for _, r := range results {
		if !r.OK {
			return false
		}
	}
	return true
}

// All runs every rule against the document and concatenates their results.
func All(doc map[string]any) []Result {
	var results []Result
	results = append(results, Structure(doc)...)
	results = append(results, Colours(doc)...)
	results = append(results, Contrast(doc)...)
	results = append(results, Players(doc)...)
	results = append(results, Consistency(doc)...)
	return results
}

// Structure checks that the required top-level keys and per-variant keys are
// present.
func Structure(doc map[string]any) []Result {
	var failures []Result

	for _, key := range []string{"$schema", "themes"} {
		if _, ok := doc[key]; !ok {
			failures = append(failures, Failure("Missing %s", key))
		}
	}

	for i, t := range themeList(doc) {
		for _, key := range []string{"name", "appearance", "style"} {
			if _, ok := t[key]; !ok {
				failures = append(failures, Failure("Theme %d: missing %s", i, key))
			}
		}
	}

	if len(failures) == 0 {
		return []Result{Success("Valid structure")}
	}
	return failures
}

// Colours checks that every #-prefixed string in the document is a valid hex
// colour, reporting each offender with its structural path. Reports are
// capped so one systemic fault cannot flood the run.
func Colours(doc map[string]any) []Result {
	var failures []Result
	walkColours(doc, "", func(path, value string) {
		if len(failures) < colourReportCap && !hexPattern.MatchString(value) {
			failures = append(failures, Failure("%s: invalid '%s'", path, value))
		}
	})

	if len(failures) == 0 {
		return []Result{Success("All colors valid hex format")}
	}
	return failures
}

// walkColours visits every #-prefixed string value reachable through nested
// maps and slices, in sorted key order so reports are stable.
func walkColours(v any, path string, visit func(path, value string)) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			walkColours(val[k], path+"."+k, visit)
		}
	case []any:
		for i, item := range val {
			walkColours(item, fmt.Sprintf("%s.%d", path, i), visit)
		}
	case string:
		if strings.HasPrefix(val, "#") {
			visit(path, val)
		}
	}
}

// Contrast checks WCAG ratios per variant: text against the editor
// background, and the comment token when one is present.
func Contrast(doc map[string]any) []Result {
	var results []Result

	for _, t := range themeList(doc) {
		name, _ := t["name"].(string)
		style, _ := t["style"].(map[string]any)

		bg := firstString(style, "editor.background", "background")
		fg := firstString(style, "editor.foreground", "foreground")
		comment := commentColour(style)

		if bg != "" && fg != "" {
			ratio := colour.HexContrastRatio(bg, fg)
			if ratio >= TextContrastMin {
				results = append(results, Success("%s text contrast %.1f:1", name, ratio))
			} else {
				results = append(results, Failure("%s: text contrast %.1f:1 < %.1f:1", name, ratio, TextContrastMin))
			}
		}

		if bg != "" && comment != "" {
			ratio := colour.HexContrastRatio(bg, comment)
			if ratio >= CommentContrastMin {
				results = append(results, Success("%s comment contrast %.1f:1", name, ratio))
			} else {
				results = append(results, Failure("%s: comment contrast %.1f:1 < %.1f:1", name, ratio, CommentContrastMin))
			}
		}
	}

	return results
}

// Players checks that each variant carries at least the minimum number of
// player colours.
func Players(doc map[string]any) []Result {
	var results []Result

	for _, t := range themeList(doc) {
		name, _ := t["name"].(string)
		style, _ := t["style"].(map[string]any)
		players, _ := style["players"].([]any)

		if len(players) >= PlayerMin {
			results = append(results, Success("%s has %d player colors", name, len(players)))
		} else {
			results = append(results, Failure("%s: only %d players", name, len(players)))
		}
	}

	return results
}

// Consistency checks that every variant exposes the same style key set as
// the first variant.
func Consistency(doc map[string]any) []Result {
	themes := themeList(doc)
	if len(themes) < 2 {
		return []Result{Success("Single theme")}
	}

	baseKeys := styleKeySet(themes[0])

	var failures []Result
	for _, t := range themes[1:] {
		name, _ := t["name"].(string)
		keys := styleKeySet(t)

		if missing := keyDiff(baseKeys, keys); len(missing) > 0 {
			failures = append(failures, Failure("%s: missing %s", name, strings.Join(missing, ", ")))
		}
		if extra := keyDiff(keys, baseKeys); len(extra) > 0 {
			failures = append(failures, Failure("%s: extra %s", name, strings.Join(extra, ", ")))
		}
	}

	if len(failures) == 0 {
		return []Result{Success("All %d variants consistent", len(themes))}
	}
	return failures
}

// themeList extracts the themes array as a slice of maps, skipping entries
// of the wrong shape.
func themeList(doc map[string]any) []map[string]any {
	raw, _ := doc["themes"].([]any)
	themes := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if t, ok := item.(map[string]any); ok {
			themes = append(themes, t)
		}
	}
	return themes
}

// firstString returns the first of the named keys holding a string value.
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			return s
		}
	}
	return ""
}

// commentColour digs the comment token colour out of the syntax map, if any.
func commentColour(style map[string]any) string {
	syntax, _ := style["syntax"].(map[string]any)
	comment, _ := syntax["comment"].(map[string]any)
	c, _ := comment["color"].(string)
	return c
}

// styleKeySet collects a variant's style keys.
func styleKeySet(t map[string]any) map[string]struct{} {
	style, _ := t["style"].(map[string]any)
	keys := make(map[string]struct{}, len(style))
	for k := range style {
		keys[k] = struct{}{}
	}
	return keys
}

// keyDiff returns the sorted keys present in a but not in b.
func keyDiff(a, b map[string]struct{}) []string {
	var diff []string
	for k := range a {
		if _, ok := b[k]; !ok {
			diff = append(diff, k)
		}
	}
	sort.Strings(diff)
	return diff
}
