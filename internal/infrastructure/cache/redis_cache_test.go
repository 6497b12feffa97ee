package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	data map[string]string
	ttl  map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttl[key] = expiration
	cmd.SetVal("OK")
	return cmd
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	v, ok := f.data[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v)
	return cmd
}

type sample struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestRedisCache_SetEGet(t *testing.T) {
	fake := newFakeRedis()
	c := NewRedisCache(fake)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "dashboard", sample{Name: "ações", Value: 3}, time.Minute))
	assert.Equal(t, time.Minute, fake.ttl[keyPrefix+"dashboard"])

	var got sample
	ok, err := c.Get(ctx, "dashboard", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sample{Name: "ações", Value: 3}, got)
}

func TestRedisCache_ChaveAusente(t *testing.T) {
	c := NewRedisCache(newFakeRedis())
	var got sample
	ok, err := c.Get(context.Background(), "nada", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_ErroDoServidor(t *testing.T) {
	fake := newFakeRedis()
	fake.err = errors.New("connection refused")
	c := NewRedisCache(fake)

	var got sample
	ok, err := c.Get(context.Background(), "x", &got)
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, c.Set(context.Background(), "x", got, time.Second))
}
