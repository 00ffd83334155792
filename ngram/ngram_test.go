package ngram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/ngramlattice/ngram"
)

func TestRuleKey(t *testing.T) {
	r1 := ngram.Rule{5, 6}
	r2 := ngram.Rule{5, 6}
	r3 := ngram.Rule{6, 5}
	assert.Equal(t, r1.Key(), r2.Key())
	assert.NotEqual(t, r1.Key(), r3.Key())
	assert.Equal(t, "5_6", r1.Key())
}

func TestIsStartIsEnd(t *testing.T) {
	assert.True(t, ngram.Rule{ngram.STARTSENTENCE, 5}.IsStart())
	assert.False(t, ngram.Rule{5, ngram.STARTSENTENCE}.IsStart())
	assert.True(t, ngram.Rule{5, ngram.ENDSENTENCE}.IsEnd())
	assert.False(t, ngram.Rule{ngram.ENDSENTENCE, 5}.IsEnd())
}
