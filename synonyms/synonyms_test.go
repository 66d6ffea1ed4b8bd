package synonyms_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synonet/symgraph"
	"github.com/katalvlaran/synonet/synonyms"
)

const source = `happy,glad,joyful,content,cheerful,merry,jolly,upbeat
joyful,elated,jubilant,gleeful,blissful,happy
elated,ecstatic
`

func newSampler(t *testing.T, opts ...synonyms.Option) *synonyms.Sampler {
	t.Helper()
	sg, err := symgraph.Build(strings.NewReader(source))
	require.NoError(t, err)
	return synonyms.New(sg, opts...)
}

func TestPathSynonyms_DefaultCap(t *testing.T) {
	s := newSampler(t)
	require.Equal(t, synonyms.DefaultCap, s.Cap())

	got := s.PathSynonyms([]string{"happy", "joyful", "elated"})
	require.Len(t, got, 3)
	assert.Equal(t, []string{"glad", "content", "cheerful", "merry"}, got["happy"])
	assert.Equal(t, []string{"jubilant", "gleeful", "blissful"}, got["joyful"])
	assert.Equal(t, []string{"ecstatic"}, got["elated"])
}

func TestPathSynonyms_CapAndExclusion(t *testing.T) {
	for _, limit := range []int{1, 2, 4, 5, 50} {
		s := newSampler(t, synonyms.WithCap(limit))
		path := []string{"happy", "joyful", "elated"}

		for word, set := range s.PathSynonyms(path) {
			assert.LessOrEqual(t, len(set), limit, word)
			for _, syn := range set {
				assert.NotContains(t, path, syn, "%s lists path word %s", word, syn)
			}
		}
	}
}

func TestPathSynonyms_InvalidCapKeepsDefault(t *testing.T) {
	assert.Equal(t, synonyms.DefaultCap, newSampler(t, synonyms.WithCap(0)).Cap())
	assert.Equal(t, synonyms.DefaultCap, newSampler(t, synonyms.WithCap(-2)).Cap())
	assert.Equal(t, 5, newSampler(t, synonyms.WithCap(5)).Cap())
}

func TestPathSynonyms_EmptyAndUnknown(t *testing.T) {
	s := newSampler(t)

	assert.Nil(t, s.PathSynonyms(nil))
	assert.Nil(t, s.PathSynonyms([]string{}))

	got := s.PathSynonyms([]string{"xyzzy"})
	require.Contains(t, got, "xyzzy")
	assert.Empty(t, got["xyzzy"])
}

func TestPathSynonyms_SingleWordPath(t *testing.T) {
	s := newSampler(t, synonyms.WithCap(10))

	got := s.PathSynonyms([]string{"elated"})
	assert.Equal(t, map[string][]string{"elated": {"joyful", "ecstatic"}}, got)
}
