package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		width int
		want  []string
	}{
		{name: "plain", cells: []string{"Name", "Remarks"}, width: 2, want: []string{"Name", "Remarks"}},
		{name: "blank names", cells: []string{"Name", "", " "}, width: 3, want: []string{"Name", "Unnamed: 1", "Unnamed: 2"}},
		{name: "padded", cells: []string{"Name"}, width: 3, want: []string{"Name", "Unnamed: 1", "Unnamed: 2"}},
		{name: "duplicates", cells: []string{"A", "A", "A"}, width: 3, want: []string{"A", "A.1", "A.2"}},
		{name: "suffix collides with real column", cells: []string{"A", "A.1", "A"}, width: 3, want: []string{"A", "A.1", "A.2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeHeader(tt.cells, tt.width))
		})
	}
}
