package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStore_SaveAndLoad(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewBlobStore(client)
	ctx := context.Background()

	key := "ruleteo.app.v1"
	value := []byte(`{"cards":[],"requests":[],"transactions":[]}`)

	// Load before save => nil
	result, err := store.Load(ctx, key)
	assert.NoError(t, err)
	assert.Nil(t, result)

	require.NoError(t, store.Save(ctx, key, value))

	result, err = store.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, value, result)

	// Stored under the prefixed key without expiry.
	raw, err := s.Get("ruleteo:state:" + key)
	require.NoError(t, err)
	assert.Equal(t, string(value), raw)
	assert.Zero(t, s.TTL("ruleteo:state:"+key))
}

func TestBlobStore_OverwriteKey(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewBlobStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k", []byte("first")))
	require.NoError(t, store.Save(ctx, "k", []byte("second")))

	result, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), result)
}

func TestBlobStore_ServerDown(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr(), MaxRetries: -1})
	store := NewBlobStore(client)
	s.Close()

	_, err := store.Load(context.Background(), "k")
	assert.Error(t, err)

	err = store.Save(context.Background(), "k", []byte("x"))
	assert.Error(t, err)
}

func TestHealthCheck(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	hc := NewHealthCheck(client)

	assert.Equal(t, "redis", hc.Name())
	assert.NoError(t, hc.Ping(context.Background()))

	s.Close()
	assert.Error(t, hc.Ping(context.Background()))
}
