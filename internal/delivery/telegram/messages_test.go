package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aminkakar/pashto-matal-bot/internal/domain/entities"
)

func sampleProverbs(n int) []*entities.Proverb {
	proverbs := make([]*entities.Proverb, 0, n)
	for i := 1; i <= n; i++ {
		proverbs = append(proverbs, &entities.Proverb{
			Number:      i,
			Proverb:     "متل",
			Translation: "translation",
			Meaning:     "meaning",
		})
	}
	return proverbs
}

func TestShareText(t *testing.T) {
	p := &entities.Proverb{Number: 1, Proverb: "الف", Translation: "A", Meaning: "M"}

	assert.Equal(t, "الف\n\nTranslation: A\nMeaning: M", shareText(p))
}

func TestFormatProverbMessage(t *testing.T) {
	p := &entities.Proverb{
		Number:      4,
		Proverb:     "قطره قطره سيند جوړېږي",
		Translation: "Drop by drop a river is made.",
		Meaning:     "Small steady efforts grow into great results.",
	}

	text := formatProverbMessage(p)

	// Pashto script verbatim, translation quoted, MarkdownV2 specials escaped.
	assert.Contains(t, text, "قطره قطره سيند جوړېږي")
	assert.Contains(t, text, `"Drop by drop a river is made\."`)
	assert.Contains(t, text, "Meaning: Small steady efforts grow into great results\\.")
	assert.Contains(t, text, lrm+"4")
}

func TestFormatDailyMessage(t *testing.T) {
	p := &entities.Proverb{Number: 1, Proverb: "الف", Translation: "A", Meaning: "M"}

	text := formatDailyMessage(p)
	assert.Contains(t, text, "Proverb of the day")
	assert.Contains(t, text, "الف")
}

func TestBuildProverbsPage(t *testing.T) {
	proverbs := sampleProverbs(12)

	_, totalPages := buildProverbsPage(proverbs, 0)
	assert.Equal(t, 3, totalPages)

	// Last page holds the remainder.
	last := paginateProverbs(proverbs, 2, proverbsPerPage)
	require.Len(t, last, 2)
	assert.Equal(t, 11, last[0].Number)

	// Out-of-range page is empty.
	assert.Nil(t, paginateProverbs(proverbs, 3, proverbsPerPage))

	text, totalPages := buildProverbsPage(nil, 0)
	assert.Empty(t, text)
	assert.Zero(t, totalPages)
}

func TestBuildRangePages(t *testing.T) {
	proverbs := sampleProverbs(12)

	pages := buildRangePages(proverbs, 3, 9)
	require.Len(t, pages, 2)

	// Bounds are clamped to the collection.
	pages = buildRangePages(proverbs, 1, 99)
	require.Len(t, pages, 3)

	assert.Nil(t, buildRangePages(proverbs, 9, 3))
}
