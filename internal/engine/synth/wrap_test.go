package synth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rscript/internal/engine/synth"
)

func TestHasMain(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{name: "plain", source: "fn main() {}", want: true},
		{name: "pub", source: "pub fn main() {}", want: true},
		{name: "async", source: "#[tokio::main]\nasync fn main() {}", want: true},
		{name: "pub async", source: "pub async fn main() {}", want: true},
		{name: "indented", source: "mod x {}\n    fn main() {}", want: true},
		{name: "tab indented", source: "\tfn main() {}", want: true},
		{name: "statement", source: "println!(\"hi\");", want: false},
		{name: "main in call", source: "let x = fn_main();", want: false},
		{name: "space before paren", source: "fn main () {}", want: false},
		{name: "empty", source: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, synth.HasMain(tt.source))
		})
	}
}

func TestWrapSource(t *testing.T) {
	const header = "fn main() -> Result<(), Box<dyn std::error::Error+Sync+Send>> { {"

	tests := []struct {
		name    string
		body    string
		shebang bool
		want    string
	}{
		{
			name: "main is kept verbatim",
			body: "fn main() {}\n",
			want: "fn main() {}\n",
		},
		{
			name:    "main after shebang gets a leading newline",
			body:    "fn main() {}\n",
			shebang: true,
			want:    "\nfn main() {}\n",
		},
		{
			name: "statements share the header line",
			body: "println!(\"{}\", line!());",
			want: header + " println!(\"{}\", line!());\n} Ok(()) }",
		},
		{
			name:    "statements after shebang start on line two",
			body:    "println!(\"{}\", line!());",
			shebang: true,
			want:    header + "\nprintln!(\"{}\", line!());\n} Ok(()) }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, synth.WrapSource(tt.body, tt.shebang))
		})
	}
}

// lineOf returns the 1-based line on which needle starts.
func lineOf(s, needle string) int {
	idx := strings.Index(s, needle)
	if idx < 0 {
		return -1
	}
	return strings.Count(s[:idx], "\n") + 1
}

func TestWrapSource_PreservesLineNumbers(t *testing.T) {
	original := "let a = 1;\nlet b = 2;\nprintln!(\"{}\", line!());\n"

	wrapped := synth.WrapSource(original, false)
	assert.Equal(t, lineOf(original, "println!"), lineOf(wrapped, "println!"))

	withShebang := "#!/usr/bin/env rscript\n" + original
	body := strings.TrimPrefix(withShebang, "#!/usr/bin/env rscript\n")
	wrapped = synth.WrapSource(body, true)
	assert.Equal(t, lineOf(withShebang, "println!"), lineOf(wrapped, "println!"))
}
