// Package typegraph defines the structural type model that code generators
// consume: a closed set of type variants inferred from JSON samples, plus a
// graph that tracks named definitions and top-level roots in a stable,
// repeatable order.
package typegraph

// Kind discriminates the closed set of type variants. Generators switch
// exhaustively over Kind; an unhandled value is a defect in graph
// construction, not a user-facing error.
type Kind int

const (
	KindAny Kind = iota
	KindNull
	KindBool
	KindInteger
	KindDouble
	KindString
	KindTransformedString
	KindArray
	KindMap
	KindObject
	KindEnum
	KindUnion
)

// String returns the variant name, used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindTransformedString:
		return "transformed-string"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindObject:
		return "object"
	case KindEnum:
		return "enum"
	case KindUnion:
		return "union"
	default:
		return "unknown"
	}
}

// Transform identifiers for TransformedString types.
const (
	TransformDateTime = "date-time"
	TransformUUID     = "uuid"
)

// Type is a node in the type graph. Only the fields relevant to Kind are
// set. Object and Enum nodes are the only named variants; everything else is
// structural and synthesized inline wherever it is referenced. The graph may
// contain cycles through Object, Array, and Union edges.
type Type struct {
	Kind Kind

	// Label is the candidate name for Object and Enum nodes, usually the
	// JSON key that introduced the node. The Namer turns it into a legal,
	// unique identifier at emission time.
	Label string

	// Transform identifies the detected string format for
	// TransformedString nodes (date-time, uuid).
	Transform string

	Items      *Type      // Array element type
	Values     *Type      // Map value type
	Properties []Property // Object properties, in declaration order
	Cases      []string   // Enum cases, in declaration order
	Members    []*Type    // Union members, in stable order
}

// Property is a single object property with its source JSON key. The key is
// kept verbatim so emitted string literals reproduce it exactly.
type Property struct {
	Key      string
	Type     *Type
	Optional bool
}

// NewPrimitive creates a node for a leaf variant.
func NewPrimitive(kind Kind) *Type {
	return &Type{Kind: kind}
}

// NewTransformedString creates a string node carrying a detected format.
func NewTransformedString(transform string) *Type {
	return &Type{Kind: KindTransformedString, Transform: transform}
}

// NewArray creates an array node.
func NewArray(items *Type) *Type {
	return &Type{Kind: KindArray, Items: items}
}

// NewMap creates a map node with the given value type. Generators are free
// to discard the value type; it is kept for graph fidelity.
func NewMap(values *Type) *Type {
	return &Type{Kind: KindMap, Values: values}
}

// NewObject creates an object node. Properties may be filled in after
// construction, which is how mutually recursive objects are built.
func NewObject(label string, props ...Property) *Type {
	return &Type{Kind: KindObject, Label: label, Properties: props}
}

// NewEnum creates an enum node over the given cases.
func NewEnum(label string, cases ...string) *Type {
	return &Type{Kind: KindEnum, Label: label, Cases: cases}
}

// NewUnion creates a union node over the given members.
func NewUnion(members ...*Type) *Type {
	return &Type{Kind: KindUnion, Members: members}
}
