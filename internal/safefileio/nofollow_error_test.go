//go:build !netbsd

package safefileio

import (
	"fmt"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNoFollowError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "ELOOP", err: &os.PathError{Op: "open", Err: syscall.ELOOP}, want: true},
		{name: "EMLINK", err: &os.PathError{Op: "open", Err: syscall.EMLINK}, want: true},
		{name: "wrapped ELOOP", err: fmt.Errorf("open config: %w", &os.PathError{Err: syscall.ELOOP}), want: true},
		{name: "not exist", err: os.ErrNotExist, want: false},
		{name: "bare errno", err: syscall.ELOOP, want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNoFollowError(tt.err))
		})
	}
}
