package cindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSpelling_AnonymousForms(t *testing.T) {
	assert.Empty(t, normalizeSpelling(""))
	assert.Empty(t, normalizeSpelling("struct (unnamed at types.h:3:1)"))
	assert.Empty(t, normalizeSpelling("union (unnamed at types.h:9:5)"))
	assert.Empty(t, normalizeSpelling("(anonymous struct at types.h:3:1)"))
	assert.Empty(t, normalizeSpelling("(anonymous union at types.h:9:5)"))
}

func TestNormalizeSpelling_IdentifiersPreserved(t *testing.T) {
	// Identifiers containing the marker words are legitimate names;
	// only the parenthesized libclang spellings are anonymous.
	assert.Equal(t, "unnamed_t", normalizeSpelling("unnamed_t"))
	assert.Equal(t, "anonymous_pipe", normalizeSpelling("anonymous_pipe"))
	assert.Equal(t, "point", normalizeSpelling("point"))
}
