package typegraph

// Root is a top-level entry point of the graph: a type for which the
// generator produces an exported binding.
type Root struct {
	Label string
	Type  *Type
}

// Graph holds the named definitions and roots of one inference pass.
// Traversal order is the registration order, which is deterministic for
// identical input, so repeated generation runs produce identical output.
type Graph struct {
	objects    []*Type
	enums      []*Type
	roots      []Root
	registered map[*Type]bool
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{registered: make(map[*Type]bool)}
}

// RegisterObject records an object node as a named definition. Registering
// the same node twice is a no-op; non-object nodes are ignored.
func (g *Graph) RegisterObject(t *Type) {
	if t == nil || t.Kind != KindObject || g.registered[t] {
		return
	}
	g.registered[t] = true
	g.objects = append(g.objects, t)
}

// RegisterEnum records an enum node as a named definition.
func (g *Graph) RegisterEnum(t *Type) {
	if t == nil || t.Kind != KindEnum || g.registered[t] {
		return
	}
	g.registered[t] = true
	g.enums = append(g.enums, t)
}

// AddRoot designates a top-level type.
func (g *Graph) AddRoot(label string, t *Type) {
	g.roots = append(g.roots, Root{Label: label, Type: t})
}

// Objects returns the named object definitions in registration order.
func (g *Graph) Objects() []*Type {
	return g.objects
}

// Enums returns the named enum definitions in registration order.
func (g *Graph) Enums() []*Type {
	return g.enums
}

// Roots returns the top-level types in declaration order.
func (g *Graph) Roots() []Root {
	return g.roots
}
