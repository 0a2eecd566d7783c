package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTreeEmpty(t *testing.T) {
	assert.Empty(t, RenderFileTree("proj", nil))
}

func TestRenderFileTree(t *testing.T) {
	files := []FileEntry{
		{Path: "README.md", Description: "Project overview"},
		{Path: "app/main.py", Description: "Application entry point"},
		{Path: "app/config.py", Description: "Settings module"},
		{Path: "Dockerfile"},
	}

	out := RenderFileTree("my_app", files)

	assert.True(t, strings.HasPrefix(stripANSI(out), "my_app/"))
	assert.Contains(t, out, "README.md")
	assert.Contains(t, out, "main.py")
	assert.Contains(t, out, "config.py")
	assert.Contains(t, out, "Project overview")

	// app/ is a directory node containing both files.
	assert.Contains(t, out, "app/")
	assert.Equal(t, 1, strings.Count(out, "app/"), "shared directories collapse to one node")
}

func TestRenderFileTreeDirectoriesFirst(t *testing.T) {
	files := []FileEntry{
		{Path: "zebra.txt"},
		{Path: "app/main.py"},
	}

	out := stripANSI(RenderFileTree("p", files))
	appIdx := strings.Index(out, "app/")
	zebraIdx := strings.Index(out, "zebra.txt")
	assert.Less(t, appIdx, zebraIdx, "directories sort before files")
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
