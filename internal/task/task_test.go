package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{"high", PriorityHigh, false},
		{"medium", PriorityMedium, false},
		{"low", PriorityLow, false},
		{"", "", true},
		{"urgent", "", true},
		{"High", "", true}, // case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid priority")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriority_Valid(t *testing.T) {
	for _, p := range Priorities {
		assert.True(t, p.Valid(), "priority %q should be valid", p)
	}
	assert.False(t, Priority("critical").Valid())
	assert.False(t, Priority("").Valid())
}

func TestNew_Defaults(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	got := New("task-1", "Buy milk", PriorityHigh, created)

	assert.Equal(t, "task-1", got.ID)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, PriorityHigh, got.Priority)
	assert.False(t, got.Completed, "new tasks start uncompleted")
	assert.Equal(t, created, got.CreatedAt)
}

func TestNew_NormalizesTitle(t *testing.T) {
	// "é" as combining sequence (e + U+0301) vs precomposed U+00E9.
	combining := "café"
	precomposed := "café"

	a := New("a", combining, PriorityLow, time.Now())
	b := New("b", precomposed, PriorityLow, time.Now())

	assert.Equal(t, a.Title, b.Title, "equal-looking titles should persist as identical bytes")
	assert.Equal(t, precomposed, a.Title)
}

func TestNormalizeTitle_PreservesPlainASCII(t *testing.T) {
	assert.Equal(t, "Walk the dog", NormalizeTitle("Walk the dog"))
	assert.Equal(t, "", NormalizeTitle(""))
}
