// Package manifest locates and (de)serializes the Cargo manifest embedded in scripts.
package manifest

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
	"go.trai.ch/zerr"
)

const fragmentLanguage = "cargo"

var (
	shebangRe = regexp.MustCompile(`^#![^\[].*?(\r\n|\n)`)
	marginRe  = regexp.MustCompile(`^\s*\*( |$)`)
	spaceRe   = regexp.MustCompile(`^(\s+)`)
	nestingRe = regexp.MustCompile(`/\*|\*/`)
	commentRe = regexp.MustCompile(`^\s*//(!|/)`)
)

var _ ports.ManifestExtractor = (*Extractor)(nil)

// Extractor finds the manifest fragment in a leading doc comment.
type Extractor struct {
	md goldmark.Markdown
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{md: goldmark.New()}
}

// Extract strips a leading shebang and returns the first cargo fence of the
// leading doc comment, if any. The comment must open at the very start of the
// remaining source.
func (e *Extractor) Extract(source string) (domain.ScriptParts, error) {
	parts := domain.ScriptParts{Body: source}
	if loc := shebangRe.FindStringIndex(source); loc != nil {
		parts.Body = source[loc[1]:]
		parts.Shebang = true
	}

	comment, ok, err := extractComment(parts.Body)
	if err != nil || !ok {
		return parts, err
	}

	parts.Fragment, parts.HasFragment = e.scrapeFence(comment)
	return parts, nil
}

// scrapeFence returns the text of the first fenced block tagged cargo.
func (e *Extractor) scrapeFence(markdown string) (string, bool) {
	src := []byte(markdown)
	doc := e.md.Parser().Parse(text.NewReader(src))

	var out bytes.Buffer
	found := false
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok || block.Info == nil {
			return ast.WalkContinue, nil
		}
		info := strings.TrimSpace(string(block.Info.Segment.Value(src)))
		if strings.ToLower(info) != fragmentLanguage {
			return ast.WalkContinue, nil
		}

		lines := block.Lines()
		for i := range lines.Len() {
			seg := lines.At(i)
			out.Write(seg.Value(src))
		}
		found = true
		return ast.WalkStop, nil
	})

	return out.String(), found
}

// extractComment returns the text of a doc comment opening at offset 0,
// with comment markers, margins and common indentation removed.
func extractComment(s string) (string, bool, error) {
	switch {
	case strings.HasPrefix(s, "/*!"):
		body, err := extractBlock(s[len("/*!"):])
		return body, err == nil, err
	case strings.HasPrefix(s, "//!"), strings.HasPrefix(s, "///"):
		body, err := extractLines(s)
		return body, err == nil, err
	default:
		return "", false, nil
	}
}

func extractBlock(s string) (string, error) {
	var out strings.Builder
	depth := 1
	leading := -1

	for i, line := range splitLines(s) {
		if depth == 0 {
			break
		}

		for _, loc := range nestingRe.FindAllStringIndex(line, -1) {
			if line[loc[0]:loc[1]] == "/*" {
				depth++
				continue
			}
			depth--
			if depth == 0 {
				line = line[:loc[0]]
				break
			}
		}

		if m := marginRe.FindString(line); m != "" {
			line = line[len(m):]
		}

		if leading < 0 {
			if m := spaceRe.FindString(line); m != "" {
				leading = len(m)
			}
		}

		stripped, err := stripLeadingSpaces(line, leading, i+1)
		if err != nil {
			return "", err
		}
		out.WriteString(stripped)
		out.WriteByte('\n')
	}

	return out.String(), nil
}

func extractLines(s string) (string, error) {
	var out strings.Builder
	leading := -1

	for i, line := range splitLines(s) {
		loc := commentRe.FindStringIndex(line)
		if loc == nil {
			break
		}
		content := line[loc[1]:]

		if leading < 0 {
			if m := spaceRe.FindString(content); m != "" {
				leading = len(m)
			}
		}

		stripped, err := stripLeadingSpaces(content, leading, i+1)
		if err != nil {
			return "", err
		}
		out.WriteString(stripped)
		out.WriteByte('\n')
	}

	return out.String(), nil
}

// stripLeadingSpaces removes the first n characters of line, which must all be spaces.
// Lines shorter than n only need to be all spaces.
func stripLeadingSpaces(line string, n, lineNo int) (string, error) {
	if n <= 0 {
		return line, nil
	}

	cut := min(n, len(line))
	if strings.Trim(line[:cut], " ") != "" {
		return "", zerr.With(
			zerr.Wrap(domain.ErrDocCommentMalformed, fmt.Sprintf("leading %d chars aren't all spaces", n)),
			"line", lineNo,
		)
	}
	return line[cut:], nil
}

// splitLines splits on \n and drops a trailing \r, like a line iterator.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
