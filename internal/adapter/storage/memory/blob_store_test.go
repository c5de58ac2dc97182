package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStore_LoadAbsent(t *testing.T) {
	s := NewBlobStore()

	blob, err := s.Load(context.Background(), "ruleteo.app.v1")
	assert.NoError(t, err)
	assert.Nil(t, blob)
}

func TestBlobStore_SaveAndLoad(t *testing.T) {
	s := NewBlobStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "k", []byte(`{"cards":[]}`)))

	blob, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"cards":[]}`, string(blob))
	assert.Equal(t, 1, s.Saves())
}

func TestBlobStore_CopiesOnSaveAndLoad(t *testing.T) {
	s := NewBlobStore()
	ctx := context.Background()

	in := []byte("first")
	require.NoError(t, s.Save(ctx, "k", in))
	in[0] = 'X'

	out, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "first", string(out))

	out[0] = 'Y'
	again, _ := s.Load(ctx, "k")
	assert.Equal(t, "first", string(again))
}
