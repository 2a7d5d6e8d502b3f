package assetcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	v1 := r.Open("app-v1")
	v1.Put(Asset{Path: "/app.js", Body: []byte("v1")})
	assert.Same(t, v1, r.Open("app-v1"))

	r.Open("app-v2").Put(Asset{Path: "/style.css", Body: []byte("v2")})

	assert.Equal(t, []string{"app-v1", "app-v2"}, r.Keys())

	a, ok := r.Match("/style.css")
	require.True(t, ok)
	assert.Equal(t, "v2", string(a.Body))

	_, ok = r.Match("/missing")
	assert.False(t, ok)

	assert.True(t, r.Delete("app-v1"))
	assert.False(t, r.Delete("app-v1"))
	assert.False(t, r.Has("app-v1"))

	_, ok = r.Match("/app.js")
	assert.False(t, ok)
}

func TestCache_Paths(t *testing.T) {
	c := NewRegistry().Open("x")
	c.Put(Asset{Path: "/b"})
	c.Put(Asset{Path: "/a"})
	c.Put(Asset{Path: "/b"})

	assert.Equal(t, []string{"/a", "/b"}, c.Paths())
}
