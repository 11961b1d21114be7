package style_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rscript/internal/ui/style"
)

func TestPaletteIsHex(t *testing.T) {
	for _, c := range []string{
		string(style.Rust), string(style.Slate), string(style.Dim),
		string(style.Green), string(style.Red), string(style.Yellow),
	} {
		assert.True(t, strings.HasPrefix(c, "#"), c)
		assert.Len(t, c, 7, c)
	}
}
