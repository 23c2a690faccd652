package readme

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aminkakar/pashto-matal-bot/internal/domain/entities"
)

const testProverbsJSON = `[
	{"proverb": "الف", "translation": "A", "meaning": "MA"},
	{"proverb": "ب", "translation": "B", "meaning": "MB"},
	{"proverb": "ج", "translation": "C", "meaning": "MC"}
]`

const testReadme = `# Pashto Proverbs

Intro text.

` + MarkerStart + `
stale content
` + MarkerEnd + `

Outro text.
`

func writeProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "proverbs.json"), []byte(testProverbsJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte(testReadme), 0o644))
	return root
}

func TestRenderBlock(t *testing.T) {
	p := &entities.Proverb{Number: 1, Proverb: "الف", Translation: "A", Meaning: "M"}
	block := RenderBlock(p, time.Date(2024, 1, 5, 18, 30, 0, 0, time.UTC))

	want := strings.Join([]string{
		MarkerStart,
		"> الف",
		"",
		`"A"`,
		"",
		"Meaning: M",
		"",
		"— Updated: 2024-01-05 (UTC)",
		MarkerEnd,
	}, "\n")

	assert.Equal(t, want, block)
}

func TestReplace(t *testing.T) {
	p := &entities.Proverb{Number: 1, Proverb: "الف", Translation: "A", Meaning: "M"}
	block := RenderBlock(p, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))

	updated, err := Replace(testReadme, block)
	require.NoError(t, err)

	assert.NotContains(t, updated, "stale content")
	assert.Contains(t, updated, "> الف")
	assert.Contains(t, updated, "Intro text.")
	assert.Contains(t, updated, "Outro text.")

	// Splicing the same block again changes nothing.
	again, err := Replace(updated, block)
	require.NoError(t, err)
	assert.Equal(t, updated, again)
}

func TestReplaceMissingMarkers(t *testing.T) {
	_, err := Replace("# README without markers\n", "block")
	assert.ErrorIs(t, err, ErrMarkersNotFound)
}

func TestSync(t *testing.T) {
	ctx := context.Background()
	root := writeProject(t)

	// 2024-01-05 is ordinal day 4; 4 mod 3 selects the second proverb.
	date := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	require.NoError(t, Sync(ctx, root, date, false, nil))

	data, err := os.ReadFile(filepath.Join(root, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "> ب")
	assert.Contains(t, string(data), `"B"`)
	assert.Contains(t, string(data), "— Updated: 2024-01-05 (UTC)")
	assert.NotContains(t, string(data), "stale content")

	// A second run is a no-op.
	require.NoError(t, Sync(ctx, root, date, false, nil))
	again, err := os.ReadFile(filepath.Join(root, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestSyncDryRun(t *testing.T) {
	ctx := context.Background()
	root := writeProject(t)

	var out strings.Builder
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, Sync(ctx, root, date, true, &out))

	assert.Contains(t, out.String(), "> الف")

	// Dry run leaves the file alone.
	data, err := os.ReadFile(filepath.Join(root, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "stale content")
}

func TestSyncMissingMarkers(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "proverbs.json"), []byte(testProverbsJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# no markers\n"), 0o644))

	err := Sync(ctx, root, time.Now(), false, nil)
	assert.ErrorIs(t, err, ErrMarkersNotFound)
}
