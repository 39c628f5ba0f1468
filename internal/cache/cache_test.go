package cache

import (
	"encoding/json"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Models []string `json:"models"`
}

func newSnapshotCache(t *testing.T) *Cache[snapshot] {
	t.Helper()
	c, err := New[snapshot](t.TempDir(), TemporaryCache)
	require.NoError(t, err)
	return c
}

func TestCache(t *testing.T) {
	t.Run("read non-existent", func(t *testing.T) {
		c := newSnapshotCache(t)
		err := c.Read("super-fake", func(io.Reader) error { return nil })
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("write", func(t *testing.T) {
		c := newSnapshotCache(t)
		in := snapshot{Models: []string{"glm-4.7-free", "minimax-m2.1-free"}}
		require.NoError(t, c.Write("fake", func(w io.Writer) error {
			return json.NewEncoder(w).Encode(in)
		}))

		var out snapshot
		require.NoError(t, c.Read("fake", func(r io.Reader) error {
			return json.NewDecoder(r).Decode(&out)
		}))
		require.Equal(t, in, out)
	})

	t.Run("delete", func(t *testing.T) {
		c := newSnapshotCache(t)
		require.NoError(t, c.Write("fake", func(io.Writer) error { return nil }))
		require.NoError(t, c.Delete("fake"))
		require.ErrorIs(t, c.Read("fake", nil), os.ErrNotExist)
	})

	t.Run("invalid id", func(t *testing.T) {
		c := newSnapshotCache(t)
		require.ErrorIs(t, c.Write("", nil), errInvalidID)
		require.ErrorIs(t, c.Delete(""), errInvalidID)
		require.ErrorIs(t, c.Read("", nil), errInvalidID)
	})
}

func TestExpiringCache(t *testing.T) {
	writeString := func(data string) func(io.Writer) error {
		return func(w io.Writer) error {
			_, err := w.Write([]byte(data))
			return err
		}
	}
	readString := func(result *string) func(io.Reader) error {
		return func(r io.Reader) error {
			b, err := io.ReadAll(r)
			if err != nil {
				return err
			}
			*result = string(b)
			return nil
		}
	}

	t.Run("write and read", func(t *testing.T) {
		c, err := NewExpiring[string](t.TempDir())
		require.NoError(t, err)

		expiresAt := time.Now().Add(time.Hour).Unix()
		require.NoError(t, c.Write("artifact", expiresAt, writeString("test data")))

		var result string
		require.NoError(t, c.Read("artifact", readString(&result)))
		require.Equal(t, "test data", result)
	})

	t.Run("expired item", func(t *testing.T) {
		c, err := NewExpiring[string](t.TempDir())
		require.NoError(t, err)

		expiresAt := time.Now().Add(-time.Hour).Unix() // expired 1 hour ago
		require.NoError(t, c.Write("artifact", expiresAt, writeString("stale")))

		err = c.Read("artifact", func(io.Reader) error { return nil })
		require.ErrorIs(t, err, os.ErrNotExist)

		_, err = c.Expiry("artifact")
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("expiry reported", func(t *testing.T) {
		c, err := NewExpiring[string](t.TempDir())
		require.NoError(t, err)

		expiresAt := time.Now().Add(time.Hour).Unix()
		require.NoError(t, c.Write("artifact", expiresAt, writeString("fresh")))

		got, err := c.Expiry("artifact")
		require.NoError(t, err)
		require.Equal(t, expiresAt, got.Unix())
	})

	t.Run("overwrite replaces expiry", func(t *testing.T) {
		c, err := NewExpiring[string](t.TempDir())
		require.NoError(t, err)

		require.NoError(t, c.Write("artifact", time.Now().Add(time.Hour).Unix(), writeString("one")))
		require.NoError(t, c.Write("artifact", time.Now().Add(2*time.Hour).Unix(), writeString("two")))

		var result string
		require.NoError(t, c.Read("artifact", readString(&result)))
		require.Equal(t, "two", result)
	})
}
