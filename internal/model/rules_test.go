package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_WithKeepsFirst(t *testing.T) {
	var r Rules
	r = r.With(Rule{Key: "vendor", Value: "acme", HasValue: true})
	r = r.With(Rule{Key: "VENDOR", Value: "other", HasValue: true})
	r = r.With(Rule{Key: "  ", Value: "blank"})
	r = r.With(Rule{Key: "flag"})

	assert.Equal(t, []string{"VENDOR", "FLAG"}, r.Keys())

	got, ok := r.Get("Vendor")
	require.True(t, ok)
	assert.Equal(t, "acme", got.Value)

	flag, ok := r.Get("FLAG")
	require.True(t, ok)
	assert.False(t, flag.HasValue)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRules_Clone(t *testing.T) {
	var nilRules Rules
	assert.Nil(t, nilRules.Clone())

	r := Rules{{Key: "A", Value: "1", HasValue: true}}
	c := r.Clone()
	c[0].Value = "2"
	assert.Equal(t, "1", r[0].Value)
}
