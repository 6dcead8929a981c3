package render

import (
	"regexp"
	"sort"
	"strings"

	"github.com/retrowire/termframe/internal/frame"
	"github.com/retrowire/termframe/pkg/errors"
)

// Template is a reusable screen description: a frame plus named placeholders
// of the form {{name}} that must all be supplied at render time.
type Template struct {
	Width      int
	Style      frame.Style
	Padding    int
	Title      string
	TitleColor string
	Content    []frame.Line
	Variables  []string
}

// escapeSearchPattern escapes a literal placeholder name for use inside a
// regular expression, so names containing pattern metacharacters still match
// verbatim.
func escapeSearchPattern(literal string) string {
	return regexp.QuoteMeta(literal)
}

// escapeReplacement escapes a literal value for use as a regexp replacement,
// so values containing $-sequences are inserted verbatim instead of being
// expanded as backreferences.
func escapeReplacement(literal string) string {
	return strings.ReplaceAll(literal, "$", "$$")
}

// substitute replaces every {{name}} placeholder in the template's content
// lines. Both the placeholder name and the value are escaped, so neither can
// disturb the matching.
func (t Template) substitute(values map[string]string) []frame.Line {
	lines := make([]frame.Line, len(t.Content))
	copy(lines, t.Content)
	for _, name := range t.Variables {
		pattern := regexp.MustCompile(escapeSearchPattern("{{" + name + "}}"))
		replacement := escapeReplacement(values[name])
		for i := range lines {
			lines[i].Text = pattern.ReplaceAllString(lines[i].Text, replacement)
		}
	}
	return lines
}

// missingVariables returns the declared variables absent from values, sorted
// for stable diagnostics.
func (t Template) missingVariables(values map[string]string) []string {
	var missing []string
	for _, name := range t.Variables {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// options converts the template's frame fields into build options.
func (t Template) options() frame.Options {
	return frame.Options{Width: t.Width, Style: t.Style, Padding: t.Padding}
}

// checkValues verifies that every declared variable has a supplied value.
func (t Template) checkValues(values map[string]string) error {
	if missing := t.missingVariables(values); len(missing) > 0 {
		return errors.NewMissingVariablesError(missing)
	}
	return nil
}
