package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	conflict := &pq.Error{Code: "40001"}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "raw serialization conflict",
			err:  conflict,
			want: true,
		},
		{
			name: "conflict wrapped by commit",
			err:  fmt.Errorf("%w: commit: %w", ErrTransaction, conflict),
			want: true,
		},
		{
			name: "conflict wrapped by repository and usecase",
			err: fmt.Errorf("usecase: failed to get slots: %w",
				fmt.Errorf("repo: execute query: %w", conflict)),
			want: true,
		},
		{
			name: "unique violation is not a conflict",
			err:  &pq.Error{Code: "23505"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSerializationFailure(tt.err))
		})
	}
}
