// Package readme rewrites the "Proverb of the Day" section of a README
// file, selecting the proverb by the same UTC day-of-year rule the bot
// uses. Only the block between the two markers is touched.
package readme

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aminkakar/pashto-matal-bot/internal/domain/entities"
	"github.com/aminkakar/pashto-matal-bot/internal/repository"
	"github.com/aminkakar/pashto-matal-bot/internal/service"
)

const (
	MarkerStart = "<!-- PROVERB-OF-THE-DAY:START -->"
	MarkerEnd   = "<!-- PROVERB-OF-THE-DAY:END -->"
)

var ErrMarkersNotFound = errors.New("README missing proverb section markers")

// RenderBlock renders the replacement block for the proverb section.
func RenderBlock(p *entities.Proverb, date time.Time) string {
	updated := date.UTC().Format("2006-01-02") + " (UTC)"
	lines := []string{
		MarkerStart,
		"> " + p.Proverb,
		"",
		"\"" + p.Translation + "\"",
		"",
		"Meaning: " + p.Meaning,
		"",
		"— Updated: " + updated,
		MarkerEnd,
	}
	return strings.Join(lines, "\n")
}

// Replace splices block between the markers, leaving everything outside
// them untouched. Because the block itself starts and ends with the
// markers, applying Replace twice with the same block is a no-op.
func Replace(document, block string) (string, error) {
	start := strings.Index(document, MarkerStart)
	end := strings.Index(document, MarkerEnd)
	if start == -1 || end == -1 || end < start {
		return "", ErrMarkersNotFound
	}
	end += len(MarkerEnd)

	return document[:start] + block + document[end:], nil
}

// Sync rewrites the proverb section of root/README.md for the given UTC
// date. With dryRun set, the updated document is written to out instead
// of the file.
func Sync(ctx context.Context, root string, date time.Time, dryRun bool, out io.Writer) error {
	repo, err := repository.NewProverbRepository(filepath.Join(root, "proverbs.json"))
	if err != nil {
		return fmt.Errorf("load proverbs: %w", err)
	}

	p, err := service.NewProverbService(repo).Daily(ctx, date)
	if err != nil {
		return fmt.Errorf("select daily proverb: %w", err)
	}

	readmePath := filepath.Join(root, "README.md")
	data, err := os.ReadFile(readmePath)
	if err != nil {
		return fmt.Errorf("read README: %w", err)
	}

	updated, err := Replace(string(data), RenderBlock(p, date))
	if err != nil {
		return err
	}

	if dryRun {
		_, err = io.WriteString(out, updated)
		return err
	}

	if updated == string(data) {
		return nil
	}

	if err := os.WriteFile(readmePath, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("write README: %w", err)
	}

	return nil
}
