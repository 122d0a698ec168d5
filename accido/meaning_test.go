package accido_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rduo1009/vocab-tuister/accido"
)

func TestParseMeanings(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  accido.Meanings
	}{
		{"single", "farmer", accido.Meanings{"farmer"}},
		{"multiple", "farmer/peasant", accido.Meanings{"farmer", "peasant"}},
		{"trims whitespace", " farmer / peasant ", accido.Meanings{"farmer", "peasant"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accido.ParseMeanings(tt.field)
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMeanings_Principal(t *testing.T) {
	assert.Equal(t, "farmer", accido.Meanings{"farmer", "peasant"}.Principal())
	assert.Equal(t, "", accido.Meanings(nil).Principal())
}

func TestMeanings_Equal(t *testing.T) {
	assert.True(t, accido.Meanings{"a", "b"}.Equal(accido.Meanings{"a", "b"}))
	assert.False(t, accido.Meanings{"a", "b"}.Equal(accido.Meanings{"b", "a"}))
	assert.False(t, accido.Meanings{"a"}.Equal(accido.Meanings{"a", "b"}))
}
