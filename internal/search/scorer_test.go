package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreExactBeatsSubstring(t *testing.T) {
	exact := Score("valorant", "valorant tips")
	partial := Score("valo", "valorant tips")

	assert.Equal(t, 2.0, exact, "exact word match scores 2 per pair")
	assert.Equal(t, 1.0, partial, "substring match scores 1 per pair")
	assert.Greater(t, exact, partial)
}

func TestScoreNormalizedByQueryLength(t *testing.T) {
	short := Score("valorant", "valorant ranked grind")
	long := Score("valorant ranked grind is rough", "valorant ranked grind")

	// Both queries fully cover the content; normalization keeps them on a
	// comparable scale rather than letting the long query run away.
	assert.Equal(t, 2.0, short)
	assert.InDelta(t, 1.2, long, 0.0001)
}

func TestScoreEmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, Score("", "some content"))
	assert.Equal(t, 0.0, Score("query", ""))
	assert.Equal(t, 0.0, Score("", ""))
}

func TestScoreCaseInsensitive(t *testing.T) {
	assert.Equal(t, Score("VALORANT", "valorant"), Score("valorant", "VALORANT"))
	assert.Equal(t, 2.0, Score("Valorant", "vAlOrAnT"))
}

func TestScoreSubstringToleranceBothDirections(t *testing.T) {
	// "valor" is inside "valorant": one point whichever side is the query.
	assert.Equal(t, 1.0, Score("valor", "valorant"))
	assert.Equal(t, 1.0, Score("valorant", "valor"))

	// "game" vs "gaming" shares only a prefix, neither contains the other,
	// so the pair scores nothing. Stemming is deliberately absent.
	assert.Equal(t, 0.0, Score("game", "gaming"))
	assert.Equal(t, 0.0, Score("gaming", "game"))
}
