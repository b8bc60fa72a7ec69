package blocklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecker_IsNegative(t *testing.T) {
	c := Default()

	tests := []struct {
		remarks string
		want    bool
	}{
		{"what a prick", true},
		{"dumbest call ever", true},
		{"call back tomorrow", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.IsNegative(tt.remarks), tt.remarks)
	}
}

func TestNewChecker_Normalizes(t *testing.T) {
	c := NewChecker([]string{"  RUDE ", "", "   "}, nil)
	assert.True(t, c.IsNegative("so rude"))
	assert.False(t, c.IsNegative("anything else"))
}

func TestTerms_ReturnsCopy(t *testing.T) {
	terms := Terms()
	terms[0] = "changed"
	assert.NotEqual(t, "changed", Terms()[0])
	assert.Len(t, Terms(), 5)
}
