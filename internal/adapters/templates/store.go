// Package templates serves source templates from the user's template directory.
package templates

import (
	"errors"
	iofs "io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileTemplate wraps script files. It is the body unchanged.
const FileTemplate = "#{script}"

// ExprTemplate evaluates an expression and prints its value unless it is ().
const ExprTemplate = `
use std::any::{Any, TypeId};

fn main() {
    let exit_code = match try_main() {
        Ok(()) => None,
        Err(e) => {
            use std::io::{self, Write};
            let _ = writeln!(io::stderr(), "Error: {}", e);
            Some(1)
        },
    };
    if let Some(exit_code) = exit_code {
        std::process::exit(exit_code);
    }
}

fn try_main() -> Result<(), Box<dyn std::error::Error>> {
    fn _rscript_is_empty_tuple<T: ?Sized + Any>(_s: &T) -> bool {
        TypeId::of::<()>() == TypeId::of::<T>()
    }
    match {#{script}} {
        __rscript_expr if !_rscript_is_empty_tuple(&__rscript_expr) => println!("{:?}", __rscript_expr),
        _ => {}
    }
    Ok(())
}
`

// LoopTemplate calls the closure once per stdin line and prints each result that is not ().
const LoopTemplate = `
#![allow(unused_imports)]
#![allow(unused_braces)]
use std::any::Any;
use std::io::prelude::*;

fn main() {
    let mut closure = enforce_closure(
{#{script}}
    );
    let mut line_buffer = String::new();
    let stdin = std::io::stdin();
    loop {
        line_buffer.clear();
        let read_res = stdin.read_line(&mut line_buffer).unwrap_or(0);
        if read_res == 0 { break }
        let output = closure(&line_buffer);

        let display = {
            let output_any: &dyn Any = &output;
            !output_any.is::<()>()
        };

        if display {
            println!("{:?}", output);
        }
    }
}

fn enforce_closure<F, T>(closure: F) -> F
where F: FnMut(&str) -> T, T: 'static {
    closure
}
`

// LoopCountTemplate is LoopTemplate with the 1-based line number as a second argument.
const LoopCountTemplate = `
#![allow(unused_imports)]
#![allow(unused_braces)]
use std::any::Any;
use std::io::prelude::*;

fn main() {
    let mut closure = enforce_closure(
{#{script}}
    );
    let mut line_buffer = String::new();
    let stdin = std::io::stdin();
    let mut count = 0;
    loop {
        line_buffer.clear();
        let read_res = stdin.read_line(&mut line_buffer).unwrap_or(0);
        if read_res == 0 { break }
        count += 1;
        let output = closure(&line_buffer, count);

        let display = {
            let output_any: &dyn Any = &output;
            !output_any.is::<()>()
        };

        if display {
            println!("{:?}", output);
        }
    }
}

fn enforce_closure<F, T>(closure: F) -> F
where F: FnMut(&str, usize) -> T, T: 'static {
    closure
}
`

var builtins = map[string]string{
	domain.ExprTemplateName:      ExprTemplate,
	domain.FileTemplateName:      FileTemplate,
	domain.LoopTemplateName:      LoopTemplate,
	domain.LoopCountTemplateName: LoopCountTemplate,
}

var _ ports.TemplateStore = (*Store)(nil)

// Store reads <dir>/<name>.rs templates, falling back to builtins.
type Store struct {
	fs  afero.Fs
	dir string
}

// NewStore creates a new Store rooted at dir.
func NewStore(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// Dir returns the template directory.
func (s *Store) Dir() string {
	return s.dir
}

// Get returns the named template. A file in the template directory overrides
// the builtin of the same name.
func (s *Store) Get(name string) (string, error) {
	path := filepath.Join(s.dir, name+".rs")

	data, err := afero.ReadFile(s.fs, path)
	if err == nil {
		return string(data), nil
	}

	if builtin, ok := builtins[name]; ok {
		return builtin, nil
	}

	if errors.Is(err, iofs.ErrNotExist) {
		return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrTemplateNotFound, ""), "template", name), "dir", s.dir)
	}
	return "", zerr.With(zerr.Wrap(err, "failed to read template"), "path", path)
}

// List creates the template directory if needed and returns the sorted names of
// the *.rs regular files in it.
func (s *Store) List() (string, []string, error) {
	info, err := s.fs.Stat(s.dir)
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		if err := s.fs.MkdirAll(s.dir, domain.DirPerm); err != nil {
			return s.dir, nil, zerr.With(zerr.Wrap(err, "failed to create template directory"), "path", s.dir)
		}
	case err != nil:
		return s.dir, nil, zerr.With(zerr.Wrap(err, domain.ErrTemplatesDirInvalid.Error()), "path", s.dir)
	case !info.IsDir():
		return s.dir, nil, zerr.With(zerr.Wrap(domain.ErrTemplatesDirInvalid, ""), "path", s.dir)
	}

	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return s.dir, nil, zerr.With(zerr.Wrap(err, domain.ErrTemplatesDirInvalid.Error()), "path", s.dir)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Mode().IsRegular() || filepath.Ext(entry.Name()) != ".rs" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".rs"))
	}
	sort.Strings(names)

	return s.dir, names, nil
}
