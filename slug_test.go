package gamecat_test

import (
	"testing"

	"github.com/fwojciec/gamecat"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "simple words", input: "Brigadier General 4", want: "brigadier-general-4"},
		{name: "hyphenated", input: "Brigadier-General 4", want: "brigadier-general-4"},
		{name: "diacritics", input: "Général Médaillé", want: "general-medaille"},
		{name: "collapses punctuation", input: "AK-47 // Yellow   Fractal!!", want: "ak-47-yellow-fractal"},
		{name: "trims hyphens", input: "  --Major__General--  ", want: "major-general"},
		{name: "only symbols", input: "★☆!?", want: ""},
		{name: "fullwidth letters", input: "Ｆｕｌｌ Ｍｅｔａｌ", want: "full-metal"},
		{name: "ligatures", input: "ﬁne Oﬃcer", want: "fine-officer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, gamecat.Slugify(tt.input))
		})
	}
}

func TestSlugify_CaseAndDiacriticInsensitive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, gamecat.Slugify("brigadier general 4"), gamecat.Slugify("Brigadier-General 4"))
	assert.Equal(t, gamecat.Slugify("Élite Sergeant"), gamecat.Slugify("elite sergeant"))
}

func TestSlugify_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"Brigadier-General 4", "Général Médaillé", "  x  ", "AK-47-K-Yellow Fractal 60 days", "Ｆｕｌｌ ﬁne", ""}
	for _, in := range inputs {
		once := gamecat.Slugify(in)
		assert.Equal(t, once, gamecat.Slugify(once), "input %q", in)
	}
}

func TestSlugTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"brigadier", "general", "4"}, gamecat.SlugTokens("brigadier-general-4"))
	assert.Nil(t, gamecat.SlugTokens(""))
}
