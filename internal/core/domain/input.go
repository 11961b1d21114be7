package domain

import (
	"path/filepath"
	"strconv"
	"strings"
)

// InputKind distinguishes script files from inline expressions and loop closures.
type InputKind int

const (
	// InputFile is a script read from disk.
	InputFile InputKind = iota
	// InputExpression is a literal expression given on the command line.
	InputExpression
	// InputLoop is a closure invoked once per line of standard input.
	InputLoop
)

const (
	// ExpressionName is the safe name used for every expression input.
	ExpressionName = "expr"
	// LoopName is the safe name used for every loop input.
	LoopName = "loop"
)

// Input is a resolved script or expression.
type Input struct {
	Kind InputKind

	// Name is the file stem. Empty for expressions.
	Name string

	// Path is the absolute script path. Empty for expressions.
	Path string

	// Content is the UTF-8 source exactly as read.
	Content string

	// Template is the template requested for an expression. Empty means the builtin default.
	Template string

	// Count passes the line number as a second closure argument. Loops only.
	Count bool

	// ModTime is the script modification time in Unix milliseconds. Zero for expressions.
	ModTime int64
}

// NewFileInput builds a file input from an absolute path and its content.
func NewFileInput(path, content string, modTime int64) Input {
	return Input{
		Kind:    InputFile,
		Name:    fileStem(filepath.Base(path)),
		Path:    path,
		Content: content,
		ModTime: modTime,
	}
}

// fileStem strips the last extension. A leading dot does not start an extension.
func fileStem(base string) string {
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return base
	}
	return base[:i]
}

// NewExpressionInput builds an expression input.
func NewExpressionInput(content, template string) Input {
	return Input{
		Kind:     InputExpression,
		Content:  content,
		Template: template,
	}
}

// NewLoopInput builds a loop input from closure source.
func NewLoopInput(content string, count bool) Input {
	return Input{
		Kind:    InputLoop,
		Content: content,
		Count:   count,
	}
}

// IsFile reports whether the input was read from disk.
func (i Input) IsFile() bool {
	return i.Kind == InputFile
}

// SafeName returns a filesystem-safe name for the input.
func (i Input) SafeName() string {
	switch i.Kind {
	case InputExpression:
		return ExpressionName
	case InputLoop:
		return LoopName
	default:
		return i.Name
	}
}

// TemplateName returns the template the input is expanded into.
func (i Input) TemplateName() string {
	switch i.Kind {
	case InputExpression:
		if i.Template != "" {
			return i.Template
		}
		return ExprTemplateName
	case InputLoop:
		if i.Count {
			return LoopCountTemplateName
		}
		return LoopTemplateName
	default:
		return FileTemplateName
	}
}

// PackageName returns the sanitized package identifier for the input.
func (i Input) PackageName() string {
	return PackageIdentifier(i.SafeName())
}

// BasePath returns the directory relative paths are anchored at.
// Expressions and loops use the supplied working directory.
func (i Input) BasePath(cwd string) string {
	if i.Kind == InputFile {
		return filepath.Dir(i.Path)
	}
	return cwd
}

// IdentityBytes returns the bytes that determine the package identity.
// Loops include the count flag.
func (i Input) IdentityBytes() []byte {
	switch i.Kind {
	case InputFile:
		return []byte(i.Path)
	case InputLoop:
		return []byte("count:" + strconv.FormatBool(i.Count) + ";" + i.Content)
	default:
		return []byte("template:" + i.Template + ";" + i.Content)
	}
}

// PackageIdentifier sanitizes a name into a valid package identifier.
// Distinct names can map to the same identifier.
func PackageIdentifier(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 1)
	for i, r := range name {
		switch {
		case i == 0 && r >= '0' && r <= '9':
			b.WriteByte('_')
			b.WriteRune(r)
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r == '_', r == '-':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
