package chksum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isseis/go-chksum"
)

func TestArgs_Default(t *testing.T) {
	for name, args := range map[string]chksum.Args{
		"zero value": {},
		"NewArgs":    chksum.NewArgs(),
		"builder":    chksum.NewArgsBuilder().MustBuild(),
	} {
		t.Run(name, func(t *testing.T) {
			size, ok := args.ChunkSize()
			assert.False(t, ok)
			assert.Zero(t, size)
			assert.NoError(t, args.Validate())
			assert.True(t, args.Equal(chksum.NewArgs()))
		})
	}
}

func TestArgsBuilder_ChunkSize(t *testing.T) {
	for _, chunkSize := range []int{1, 2, 1024, 9999} {
		args, err := chksum.NewArgsBuilder().ChunkSize(chunkSize).Build()
		require.NoError(t, err)

		size, ok := args.ChunkSize()
		assert.True(t, ok)
		assert.Equal(t, chunkSize, size)

		same := chksum.NewArgsBuilder().ChunkSize(chunkSize).MustBuild()
		assert.True(t, args.Equal(same))
		assert.False(t, args.Equal(chksum.NewArgs()))
	}
}

func TestArgsBuilder_LastChunkSizeWins(t *testing.T) {
	args, err := chksum.NewArgsBuilder().ChunkSize(1).ChunkSize(64).Build()
	require.NoError(t, err)

	size, _ := args.ChunkSize()
	assert.Equal(t, 64, size)
}

func TestArgsBuilder_InvalidChunkSize(t *testing.T) {
	for _, chunkSize := range []int{0, -1, -4096} {
		_, err := chksum.NewArgsBuilder().ChunkSize(chunkSize).Build()
		assert.ErrorIs(t, err, chksum.ErrInvalidChunkSize, "chunk size %d", chunkSize)

		assert.Panics(t, func() {
			_ = chksum.NewArgsBuilder().ChunkSize(chunkSize).MustBuild()
		})
	}
}

func TestArgsBuilder_IsAValue(t *testing.T) {
	base := chksum.NewArgsBuilder()
	_ = base.ChunkSize(7)

	args, err := base.Build()
	require.NoError(t, err)
	_, ok := args.ChunkSize()
	assert.False(t, ok, "ChunkSize returns a modified copy")
}
