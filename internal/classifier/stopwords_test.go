package classifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/aerooffers/internal/classifier"
)

func TestIsStopword(t *testing.T) {
	for _, w := range []string{"for", "The", "und", "für", "MIT"} {
		assert.True(t, classifier.IsStopword(w), w)
	}

	for _, w := range []string{"sale", "Verkauf", "ASK", "Mi", ""} {
		assert.False(t, classifier.IsStopword(w), w)
	}
}

func TestRemoveStopwords(t *testing.T) {
	got := classifier.RemoveStopwords([]string{"The", "glider", "für", "Verkauf", "with", "Anhänger"})

	assert.Equal(t, []string{"glider", "Verkauf", "Anhänger"}, got)
}
