package hashscraper_test

import (
	"testing"

	"github.com/bamchi/hashscraper"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "drops immediately repeated paragraph",
			input: "A\n\nA\n\nB",
			want:  "A\n\nB",
		},
		{
			name:  "drops repeat separated by one kept paragraph",
			input: "A\n\nB\n\nA",
			want:  "A\n\nB",
		},
		{
			name:  "drops repeat within three kept paragraphs",
			input: "A\n\nB\n\nC\n\nA",
			want:  "A\n\nB\n\nC",
		},
		{
			name:  "keeps repeat beyond three kept paragraphs",
			input: "A\n\nB\n\nC\n\nD\n\nA",
			want:  "A\n\nB\n\nC\n\nD\n\nA",
		},
		{
			name:  "lookback counts kept paragraphs not positions",
			input: "A\n\nB\n\nB\n\nB\n\nC\n\nA",
			want:  "A\n\nB\n\nC",
		},
		{
			name:  "drops adjacent duplicate lines",
			input: "foo\nfoo\nbar",
			want:  "foo\nbar",
		},
		{
			name:  "keeps non-adjacent duplicate lines",
			input: "foo\nbar\nfoo",
			want:  "foo\nbar\nfoo",
		},
		{
			name:  "compares lines by trimmed text",
			input: "foo\n  foo\nbar",
			want:  "foo\nbar",
		},
		{
			name:  "collapses four newlines to two",
			input: "A\n\n\n\nB",
			want:  "A\n\nB",
		},
		{
			name:  "strips trailing whitespace",
			input: "A  \nB\t\n\nC ",
			want:  "A\nB\n\nC",
		},
		{
			name:  "drops whitespace-only paragraphs",
			input: "A\n\n   \t \n\nB",
			want:  "A\n\nB",
		},
		{
			name:  "compares paragraphs with collapsed whitespace",
			input: "Hello   world\n\nHello\nworld",
			want:  "Hello   world",
		},
		{
			name:  "trims the document",
			input: "\n\n  \nA\n\n",
			want:  "A",
		},
		{
			name:  "returns empty string for blank input",
			input: " \n\n\t\n",
			want:  "",
		},
		{
			name:  "handles CRLF line endings",
			input: "A\r\n\r\nA\r\n\r\nB",
			want:  "A\n\nB",
		},
		{
			name:  "collapses responsive duplicate blocks",
			input: "## Pricing\n\nStarter plan\n\n## Pricing\n\nStarter plan\n\nContact us",
			want:  "## Pricing\n\nStarter plan\n\nContact us",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, hashscraper.Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"A\n\nA\n\nB",
		"A\n\nB\n\nC\n\nD\n\nA\n\nA",
		"foo\nfoo\nbar\n\n\n\nbar\nbaz  \n\nbaz",
		"X\n \nY\n\nY",
		"Subscribe\n\nArticle one\n\nArticle two\n\nArticle three\n\nSubscribe",
		"  indented first line\nsecond\n\n\n\n\tthird\t\n",
		"a\nb\nb\na\n\na\nb\na",
	}

	for _, input := range inputs {
		once := hashscraper.Normalize(input)
		assert.Equal(t, once, hashscraper.Normalize(once), "input: %q", input)
	}
}

func TestNormalizeWithLookback(t *testing.T) {
	t.Parallel()

	t.Run("lookback of one keeps gap of one", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "A\n\nB\n\nA", hashscraper.NormalizeWithLookback("A\n\nB\n\nA", 1))
	})

	t.Run("lookback of two drops gap of one", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "A\n\nB", hashscraper.NormalizeWithLookback("A\n\nB\n\nA", 2))
	})

	t.Run("zero disables paragraph dedup", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "A\n\nA", hashscraper.NormalizeWithLookback("A\n\nA", 0))
	})

	t.Run("negative disables paragraph dedup", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "A\n\nA\n\nB", hashscraper.NormalizeWithLookback("A\n\nA\n\nB", -1))
	})

	t.Run("zero still dedups lines", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "A", hashscraper.NormalizeWithLookback("A\nA", 0))
	})
}

func TestCleanText(t *testing.T) {
	t.Parallel()

	t.Run("collapses spaces and blank gaps", func(t *testing.T) {
		t.Parallel()

		got := hashscraper.CleanText("  Hello \t world \n \n\n  Next")

		assert.Equal(t, "Hello world \n\nNext", got)
	})

	t.Run("normalizes to clean paragraphs", func(t *testing.T) {
		t.Parallel()

		got := hashscraper.Normalize(hashscraper.CleanText("  Title\n\n\n   Body text  \n \n  Body text\n"))

		assert.Equal(t, "Title\n\nBody text", got)
	})
}

func TestContentHash(t *testing.T) {
	t.Parallel()

	a := hashscraper.ContentHash("# Page\n\nBody")

	assert.NotEmpty(t, a)
	assert.Equal(t, a, hashscraper.ContentHash("# Page\n\nBody"))
	assert.NotEqual(t, a, hashscraper.ContentHash("# Page\n\nOther"))
}
