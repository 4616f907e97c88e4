package fiberstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	m := NewMemory(time.Minute)
	t.Cleanup(func() { _ = m.Close() })

	v, err := m.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	val := []byte("1")
	require.NoError(t, m.Set("k", val, 0))
	val[0] = '2'

	v, err = m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)

	require.NoError(t, m.Delete("k"))
	v, _ = m.Get("k")
	assert.Nil(t, v)

	require.NoError(t, m.Set("short", []byte("x"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	v, _ = m.Get("short")
	assert.Nil(t, v)

	require.NoError(t, m.Set("a", []byte("a"), time.Hour))
	require.NoError(t, m.Reset())
	v, _ = m.Get("a")
	assert.Nil(t, v)
}
