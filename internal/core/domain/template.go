package domain

import (
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// ScriptSubstitution is replaced by the script body when a template is expanded.
	ScriptSubstitution = "script"

	// ExprTemplateName is the template used for expressions when none is requested.
	ExprTemplateName = "expr"

	// FileTemplateName is the template used for script files.
	FileTemplateName = "file"

	// LoopTemplateName is the template used for loop closures.
	LoopTemplateName = "loop"

	// LoopCountTemplateName is the template used for loop closures that take a line number.
	LoopCountTemplateName = "loop_count"
)

// PreludeItems turns unstable feature names into sorted crate attributes.
func PreludeItems(unstableFeatures []string) []string {
	if len(unstableFeatures) == 0 {
		return nil
	}
	items := make([]string, 0, len(unstableFeatures))
	for _, feature := range unstableFeatures {
		items = append(items, "#![feature("+feature+")]")
	}
	slices.Sort(items)
	return items
}

var substitutionRe = regexp.MustCompile(`#\{([A-Za-z_][A-Za-z0-9_]*)}`)

// ExpandTemplate replaces every #{name} in src with subs[name].
// A name missing from subs is an error.
func ExpandTemplate(src string, subs map[string]string) (string, error) {
	var out strings.Builder
	out.Grow(len(src))

	anchor := 0
	for _, m := range substitutionRe.FindAllStringSubmatchIndex(src, -1) {
		name := src[m[2]:m[3]]
		value, ok := subs[name]
		if !ok {
			return "", zerr.With(zerr.Wrap(ErrUnknownSubstitution, ""), "substitution", name)
		}
		out.WriteString(src[anchor:m[0]])
		out.WriteString(value)
		anchor = m[1]
	}
	out.WriteString(src[anchor:])

	return out.String(), nil
}
