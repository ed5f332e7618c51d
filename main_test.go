package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/cvgen/pdfinfo"
	"github.com/ByLCY/cvgen/resume"
)

const sampleData = `{
	"meta": {"default_lang": "en", "output": "assets/cv/${name}_${lang}.pdf"},
	"en": {
		"name": "Jane Doe",
		"subtitle": "Engineer",
		"contacts": [{"label": "Email", "value": "a@b.com"}],
		"strengths": ["Fast learner"]
	},
	"it": {"name": "Jane Doe", "profile": ["Ingegnere del software."]}
}`

// writeProject 创建 <root>/tools/cv_data.json 并返回 root 与数据路径。
func writeProject(t *testing.T, data string) (string, string) {
	t.Helper()
	root := t.TempDir()
	path := filepath.Join(root, "tools", "cv_data.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return root, path
}

func TestRunWritesPDFUnderRoot(t *testing.T) {
	root, data := writeProject(t, sampleData)

	outs, err := run(options{Data: data, Backend: "fpdf"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "assets", "cv", "Jane_Doe_en.pdf")}, outs)

	info, err := pdfinfo.Inspect(outs[0])
	require.NoError(t, err)
	assert.Equal(t, 1, info.PageCount)
	assert.True(t, info.Contains("Contacts"), info.Text())
	assert.True(t, info.Contains("Fast learner"), info.Text())
}

func TestRunSelectsLanguage(t *testing.T) {
	_, data := writeProject(t, sampleData)
	out := filepath.Join(t.TempDir(), "cv.pdf")

	got, err := run(options{Data: data, Lang: "it", Out: out, Backend: "fpdf"})
	require.NoError(t, err)
	assert.Equal(t, []string{out}, got)

	info, err := pdfinfo.Inspect(out)
	require.NoError(t, err)
	assert.True(t, info.Contains("Profilo"), info.Text())
	assert.False(t, info.Contains("Contacts"), info.Text())
}

func TestRunMissingLanguage(t *testing.T) {
	root, data := writeProject(t, sampleData)

	_, err := run(options{Data: data, Lang: "de"})
	require.Error(t, err)

	var langErr *resume.LanguageError
	require.True(t, errors.As(err, &langErr))
	assert.Equal(t, []string{"en", "it"}, langErr.Available)
	assert.Contains(t, err.Error(), "en, it")

	_, statErr := os.Stat(filepath.Join(root, "assets"))
	assert.True(t, os.IsNotExist(statErr), "no output should be written")
}

func TestRunCanvasBackendWithDebug(t *testing.T) {
	_, data := writeProject(t, sampleData)
	dir := t.TempDir()
	debug := filepath.Join(dir, "debug", "layout.json")

	outs, err := run(options{
		Data:        data,
		Out:         filepath.Join(dir, "cv.pdf"),
		BreakPolicy: "before-blocks",
		Debug:       debug,
	})
	require.NoError(t, err)
	require.Len(t, outs, 1)

	raw, err := os.ReadFile(debug)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"trajectory"`)

	info, err := pdfinfo.Inspect(outs[0])
	require.NoError(t, err)
	assert.Equal(t, 1, info.PageCount)
}

func TestRunAllLanguages(t *testing.T) {
	root, data := writeProject(t, sampleData)
	debug := filepath.Join(t.TempDir(), "layout.json")

	outs, err := run(options{Data: data, Lang: "all", Backend: "fpdf", Debug: debug})
	require.NoError(t, err)

	dir := filepath.Join(root, "assets", "cv")
	assert.Equal(t, []string{
		filepath.Join(dir, "Jane_Doe_en.pdf"),
		filepath.Join(dir, "Jane_Doe_it.pdf"),
	}, outs)

	en, err := pdfinfo.Inspect(outs[0])
	require.NoError(t, err)
	assert.True(t, en.Contains("Contacts"), en.Text())

	it, err := pdfinfo.Inspect(outs[1])
	require.NoError(t, err)
	assert.True(t, it.Contains("Profilo"), it.Text())

	for _, lang := range []string{"en", "it"} {
		_, err := os.Stat(filepath.Join(filepath.Dir(debug), "layout."+lang+".json"))
		assert.NoError(t, err, lang)
	}
}

func TestRunAllLanguagesRejectsSharedOutput(t *testing.T) {
	_, data := writeProject(t, sampleData)
	out := filepath.Join(t.TempDir(), "cv.pdf")

	outs, err := run(options{Data: data, Lang: "all", Out: out, Backend: "fpdf"})
	assert.ErrorContains(t, err, "${lang}")
	assert.Equal(t, []string{out}, outs)
}

func TestRunWithTheme(t *testing.T) {
	_, data := writeProject(t, sampleData)
	dir := t.TempDir()
	theme := filepath.Join(dir, "compact.theme")
	require.NoError(t, os.WriteFile(theme, []byte(`theme compact {
  color ink = #000
  font bold { src: "builtin:go-bold" }
  margin: 1cm
  left-width: 5cm
}
`), 0o644))

	_, err := run(options{Data: data, Out: filepath.Join(dir, "cv.pdf"), Theme: theme})
	require.NoError(t, err)
}

func TestRunRejectsBadOptions(t *testing.T) {
	_, data := writeProject(t, sampleData)
	out := filepath.Join(t.TempDir(), "cv.pdf")

	_, err := run(options{Data: data, Out: out, Backend: "svg"})
	assert.ErrorContains(t, err, "svg")

	_, err = run(options{Data: data, Out: out, BreakPolicy: "never"})
	assert.ErrorContains(t, err, "never")

	_, err = run(options{Data: data, Out: filepath.Join(t.TempDir(), "${missing}.pdf")})
	assert.ErrorContains(t, err, "missing")

	_, err = run(options{Data: filepath.Join(t.TempDir(), "nope.json")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptionsFromEnvironment(t *testing.T) {
	t.Setenv("CVGEN_LANG", "it")
	t.Setenv("CVGEN_BREAK_POLICY", "before-blocks")
	initConfig()

	opts := optionsFromViper()
	assert.Equal(t, "it", opts.Lang)
	assert.Equal(t, "before-blocks", opts.BreakPolicy)
	assert.Equal(t, defaultData, opts.Data)
	assert.Equal(t, "canvas", opts.Backend)
	viper.Reset()
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "cvgen dev\n", buf.String())
}
