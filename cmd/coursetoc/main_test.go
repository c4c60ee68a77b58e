package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pbialon/coursetoc"
	"github.com/pbialon/coursetoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<html><body>
<div data-purpose="section-heading">
	<span class="truncate-with-tooltip--ellipsis--YJw4N">Section 3: Getting Started</span>
</div>
<div data-purpose="section-duration">
	<span data-purpose="section-duration-sr-only"><span>4 lectures</span><span>15min</span></span>
</div>
</body></html>`

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("extracts a saved page into a text listing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "course.html")
		output := filepath.Join(dir, "sections.txt")
		require.NoError(t, os.WriteFile(input, []byte(samplePage), 0644))

		var stdout, stderr bytes.Buffer
		err := NewMain().Run(context.Background(), []string{input, output}, &stdout, &stderr)

		require.NoError(t, err)
		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "Extracted Sections:\n\n [ ] S.3: Getting Started - 15min\n\n", string(content))
		assert.Equal(t, fmt.Sprintf("Extracted sections have been saved to '%s'.\n", output), stdout.String())
	})

	t.Run("reports a missing input file and writes nothing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "missing.html")
		output := filepath.Join(dir, "sections.txt")

		var stdout, stderr bytes.Buffer
		err := NewMain().Run(context.Background(), []string{input, output}, &stdout, &stderr)

		require.Error(t, err)
		assert.Equal(t, coursetoc.ENOTFOUND, coursetoc.ErrorCode(err))
		_, statErr := os.Stat(output)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("prints usage for help", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := NewMain().Run(context.Background(), []string{"--help"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Usage:")
		assert.Contains(t, stdout.String(), "coursetoc")
	})

	t.Run("uses the injected components", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		var gotSections []coursetoc.Section
		m := &Main{
			Loader: &mock.Loader{
				LoadFn: func(ctx context.Context, path string) (string, error) {
					return "<html></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(rawHTML string) ([]coursetoc.Section, error) {
					return []coursetoc.Section{{Title: "Wrapping Up", Duration: "3min"}}, nil
				},
			},
			Writer: &mock.Writer{
				WriteFn: func(ctx context.Context, path string, sections []coursetoc.Section) error {
					gotPath = path
					gotSections = sections
					return nil
				},
			},
		}

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"in.html", "out.tsv"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, "out.tsv", gotPath)
		assert.Equal(t, []coursetoc.Section{{Title: "Wrapping Up", Duration: "3min"}}, gotSections)
	})

	t.Run("stops before writing when extraction fails", func(t *testing.T) {
		t.Parallel()

		written := false
		m := &Main{
			Loader: &mock.Loader{
				LoadFn: func(ctx context.Context, path string) (string, error) {
					return "<html></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(rawHTML string) ([]coursetoc.Section, error) {
					return nil, errors.New("malformed page")
				},
			},
			Writer: &mock.Writer{
				WriteFn: func(ctx context.Context, path string, sections []coursetoc.Section) error {
					written = true
					return nil
				},
			},
		}

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"in.html", "out.tsv"}, &stdout, &stderr)

		require.Error(t, err)
		assert.False(t, written)
		assert.Empty(t, stdout.String())
	})
}

func TestMain_Run_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("input.html", []byte(samplePage), 0644))

	var stdout, stderr bytes.Buffer
	err := NewMain().Run(context.Background(), nil, &stdout, &stderr)

	require.NoError(t, err)
	content, err := os.ReadFile("sections.tsv")
	require.NoError(t, err)
	assert.Equal(t, "Extracted Sections:\n\n [ ] S.3: Getting Started - 15min\n\n", string(content))
	assert.Equal(t, "Extracted sections have been saved to 'sections.tsv'.\n", stdout.String())
}
