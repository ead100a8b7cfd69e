package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ampell-lang/ampell/parser"
)

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.ampl")
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeScript(t, "&[15] &[7] - $\n")
	status := NewLoader().LoadFile(path)
	assert.False(t, status.HasErrors())
	require.NotNil(t, status.Program)
	assert.Len(t, status.Program.Statements, 4)
	assert.Equal(t, path, status.Path)
}

func TestLoadFileParseError(t *testing.T) {
	path := writeScript(t, "@broken[ &[1]\n")
	status := NewLoader().LoadFile(path)
	assert.True(t, status.HasErrors())
	assert.Nil(t, status.Program, "no partial programs")

	var perr *parser.ParseError
	require.Len(t, status.Errors, 1)
	assert.True(t, errors.As(status.Errors[0], &perr))
}

func TestLoadFileMissing(t *testing.T) {
	status := NewLoader().LoadFile(filepath.Join(t.TempDir(), "nope.ampl"))
	assert.True(t, status.HasErrors())
	assert.Nil(t, status.Program)
}

func TestLoadSource(t *testing.T) {
	prog, err := NewLoader().LoadSource(`&["hi"] $ %`)
	require.NoError(t, err)
	assert.Len(t, prog.Statements, 3)

	_, err = NewLoader().LoadSource("&[1")
	assert.Error(t, err)
}

func TestLoadExamplePrograms(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("..", "examples", "*.ampl"))
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	for _, path := range matches {
		status := NewLoader().LoadFile(path)
		assert.False(t, status.HasErrors(), "%s: %v", path, status.Errors)
		assert.NotNil(t, status.Program, path)
	}
}

func TestErrorCollectorCap(t *testing.T) {
	ec := ErrorCollector{MaxErrors: 2}
	ec.AddErrors(errors.New("one"), errors.New("two"), errors.New("three"))
	assert.Len(t, ec.Errors, 2)
	assert.True(t, ec.HasErrors())
}
