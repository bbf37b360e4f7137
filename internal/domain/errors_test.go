package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileNotFoundError(t *testing.T) {
	err := &FileNotFoundError{Path: "data/accident_2015.csv.bz2"}

	assert.Contains(t, err.Error(), "data/accident_2015.csv.bz2")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	t.Run("survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("load 2015: %w", err)

		var notFound *FileNotFoundError
		require.True(t, errors.As(wrapped, &notFound))
		assert.Equal(t, "data/accident_2015.csv.bz2", notFound.Path)
	})
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"missing column", &MissingColumnError{Column: "MONTH", Path: "accident_2015.csv.bz2"}, "MONTH"},
		{"invalid year", &InvalidYearError{Value: "twenty-fifteen"}, `"twenty-fifteen"`},
		{"unknown state", &UnknownStateError{State: 99}, "99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.err.Error(), tt.contains)
		})
	}
}
