package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuhangwang/yamlreference/internal/cli"
	"github.com/yuhangwang/yamlreference/pkg/config"
	"github.com/yuhangwang/yamlreference/pkg/yeast"
)

// isolateConfig keeps the host's real configuration out of tests.
func isolateConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("YEAST2HTML_OUTPUT", "")
	t.Setenv("YEAST2HTML_STYLESHEET", "")
	t.Setenv("YEAST2HTML_LINK_STYLESHEET", "")
	t.Setenv("YEAST2HTML_TREE_TITLE", "")
	t.Setenv("YEAST2HTML_TEXT_TITLE", "")
}

func writeInput(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yeast")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestConvert_FileToFile(t *testing.T) {
	isolateConfig(t)

	input := writeInput(t, "O\nM\nSkey\ns\nSvalue\ns\nm\no\n")
	output := filepath.Join(t.TempDir(), "out.html")

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	cmd.SetArgs([]string{input, "--output", output})

	require.NoError(t, cmd.Execute())

	page, err := os.ReadFile(output)
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "Syntax Tree")
	assert.Contains(t, html, "YAML Text")
	assert.Contains(t, html, ">Mapping</span>")
	assert.Contains(t, html, "key")
}

func TestConvert_CustomTitles(t *testing.T) {
	isolateConfig(t)

	input := writeInput(t, "Sfoo\ns\n")
	output := filepath.Join(t.TempDir(), "out.html")

	cmd := cli.NewRootCommand(cli.BuildInfo{})
	cmd.SetArgs([]string{input, "-o", output, "--tree-title", "Tokens", "--text-title", "Stream"})

	require.NoError(t, cmd.Execute())

	page, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Tokens")
	assert.Contains(t, string(page), "Stream")
}

func TestConvert_InlineStylesheet(t *testing.T) {
	isolateConfig(t)

	css := "body { color: red; }"
	cssPath := filepath.Join(t.TempDir(), "style.css")
	require.NoError(t, os.WriteFile(cssPath, []byte(css), 0o644))

	input := writeInput(t, "Sfoo\ns\n")
	output := filepath.Join(t.TempDir(), "out.html")

	cmd := cli.NewRootCommand(cli.BuildInfo{})
	cmd.SetArgs([]string{input, "-o", output, "-s", cssPath})

	require.NoError(t, cmd.Execute())

	page, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(page), css)
}

func TestConvert_LinkedStylesheet(t *testing.T) {
	isolateConfig(t)

	input := writeInput(t, "Sfoo\ns\n")
	output := filepath.Join(t.TempDir(), "out.html")

	cmd := cli.NewRootCommand(cli.BuildInfo{})
	cmd.SetArgs([]string{input, "-o", output, "-s", "theme.css", "-l"})

	require.NoError(t, cmd.Execute())

	page, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(page), `href="theme.css"`)
}

func TestConvert_LinkWithoutStylesheet(t *testing.T) {
	isolateConfig(t)

	input := writeInput(t, "Sfoo\ns\n")

	cmd := cli.NewRootCommand(cli.BuildInfo{})
	cmd.SetArgs([]string{input, "-l"})

	err := cmd.Execute()
	var cfgErr *config.Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeForError(err))
}

func TestConvert_MultipleInputs(t *testing.T) {
	isolateConfig(t)

	cmd := cli.NewRootCommand(cli.BuildInfo{})
	cmd.SetArgs([]string{"a.yeast", "b.yeast"})

	err := cmd.Execute()
	var cfgErr *config.Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeForError(err))
}

func TestConvert_MalformedStream(t *testing.T) {
	isolateConfig(t)

	input := writeInput(t, "S\nq\n")
	output := filepath.Join(t.TempDir(), "out.html")

	cmd := cli.NewRootCommand(cli.BuildInfo{})
	cmd.SetArgs([]string{input, "-o", output})

	err := cmd.Execute()
	var structErr *yeast.StructureError
	require.ErrorAs(t, err, &structErr)

	// No partial output is left behind.
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvert_MissingInput(t *testing.T) {
	isolateConfig(t)

	cmd := cli.NewRootCommand(cli.BuildInfo{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.yeast")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, cli.ExitNoInput, cli.ExitCodeForError(err))
}

func TestMan_EmitsRoff(t *testing.T) {
	isolateConfig(t)

	cmd := cli.NewRootCommand(cli.BuildInfo{})
	cmd.SetArgs([]string{"man"})

	var out strings.Builder
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), ".TH")
	assert.Contains(t, out.String(), "yeast2html")
}
