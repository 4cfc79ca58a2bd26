package typegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_RegistrationOrderIsStable(t *testing.T) {
	g := NewGraph()

	a := NewObject("a")
	b := NewObject("b")
	color := NewEnum("color", "Red", "Green")

	g.RegisterObject(a)
	g.RegisterObject(b)
	g.RegisterEnum(color)

	require.Len(t, g.Objects(), 2)
	assert.Same(t, a, g.Objects()[0])
	assert.Same(t, b, g.Objects()[1])
	require.Len(t, g.Enums(), 1)
	assert.Same(t, color, g.Enums()[0])
}

func TestGraph_DuplicateRegistrationIgnored(t *testing.T) {
	g := NewGraph()
	a := NewObject("a")

	g.RegisterObject(a)
	g.RegisterObject(a)

	assert.Len(t, g.Objects(), 1)
}

func TestGraph_KindMismatchIgnored(t *testing.T) {
	g := NewGraph()

	g.RegisterObject(NewEnum("nope", "x"))
	g.RegisterEnum(NewObject("nope"))
	g.RegisterObject(nil)

	assert.Empty(t, g.Objects())
	assert.Empty(t, g.Enums())
}
