package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{}},
		{name: "single", input: "Vegan", want: []string{"Vegan"}},
		{name: "trims whitespace", input: " Vegan , Nut-Free,Halal ", want: []string{"Vegan", "Nut-Free", "Halal"}},
		{name: "drops empty segments", input: "Vegan,,  ,Halal,", want: []string{"Vegan", "Halal"}},
		{name: "keeps order", input: "c,b,a", want: []string{"c", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, SplitList(tt.input))
		})
	}
}

func TestPriceTier_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, PriceTierBudget.IsValid())
	assert.True(t, PriceTierModerate.IsValid())
	assert.True(t, PriceTierUpscale.IsValid())
	assert.False(t, PriceTier("$$$$").IsValid())
	assert.False(t, PriceTier("").IsValid())
}
