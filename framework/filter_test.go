package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(path ...string) TestID { return TestID{Path: path} }

func TestRegexFiltersDefaultToRunningEverything(t *testing.T) {
	var filters RegexFilters
	assert.True(t, filters.AsFilter(id("anything", "at all")))
}

func TestRegexFiltersMustMatch(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^class/"))

	assert.True(t, filters.AsFilter(id("class", "inheritance")))
	assert.False(t, filters.AsFilter(id("function", "closure")))
}

func TestRegexFiltersMustNotMatchWins(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^class/"))
	require.NoError(t, filters.MustNotMatch.Set("inheritance"))

	assert.False(t, filters.AsFilter(id("class", "inheritance")))
	assert.True(t, filters.AsFilter(id("class", "methods")))
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var list RegexList
	assert.Error(t, list.Set("("))
}

func TestRegexListString(t *testing.T) {
	var list RegexList
	require.NoError(t, list.Set("a"))
	require.NoError(t, list.Set("b"))
	assert.Equal(t, `"a" or "b"`, list.String())
}
