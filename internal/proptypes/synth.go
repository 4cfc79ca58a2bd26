package proptypes

import (
	"fmt"
	"strconv"

	"github.com/quickshape/quickshape/internal/namer"
	"github.com/quickshape/quickshape/internal/typegraph"
)

// synthesizer converts types into validator expressions. It is purely
// functional over the type graph plus the name table built during setup.
type synthesizer struct {
	// names maps every named Object/Enum node to its assigned identifier.
	names map[*typegraph.Type]namer.Name

	// indent is one indentation level, used inside shape bodies.
	indent string
}

// expr synthesizes the validator expression for a type. The required flag is
// threaded through so property validators could grow an .isRequired suffix;
// it does not currently change the emitted tokens. Object and Enum types are
// never inlined: they synthesize to a reference to their assigned name,
// which is what makes recursive references representable.
//
// The switch is total over the closed Kind set. Reaching the default arm
// means the graph builder produced a variant this generator does not know,
// which is a defect, so it panics rather than returning an error.
func (s *synthesizer) expr(t *typegraph.Type, required bool) Expr {
	switch t.Kind {
	case typegraph.KindAny, typegraph.KindNull:
		return Expr{text("PropTypes.any")}

	case typegraph.KindBool:
		return Expr{text("PropTypes.bool")}

	case typegraph.KindInteger, typegraph.KindDouble:
		return Expr{text("PropTypes.number")}

	case typegraph.KindString, typegraph.KindTransformedString:
		// Transformed strings (dates, uuids) degrade to plain strings;
		// PropTypes has no format-aware string validator.
		return Expr{text("PropTypes.string")}

	case typegraph.KindArray:
		out := Expr{text("PropTypes.arrayOf(")}
		out = append(out, s.expr(t.Items, false)...)
		return append(out, text(")"))

	case typegraph.KindMap:
		// Known limitation: the value type is discarded. PropTypes.object
		// checks only that the value is an object.
		return Expr{text("PropTypes.object")}

	case typegraph.KindObject, typegraph.KindEnum:
		name, ok := s.names[t]
		if !ok {
			panic(fmt.Sprintf("proptypes: %s type %q was never registered with the graph", t.Kind, t.Label))
		}
		return Expr{ref(name)}

	case typegraph.KindUnion:
		out := Expr{text("PropTypes.oneOfType([")}
		for i, member := range t.Members {
			if i > 0 {
				out = append(out, text(", "))
			}
			out = append(out, s.expr(member, false)...)
		}
		return append(out, text("])"))

	default:
		panic(fmt.Sprintf("proptypes: no validator mapping for type kind %d", t.Kind))
	}
}

// propertyExpr synthesizes the validator for one object property. A
// required property gets its full validator; an optional property degrades
// to the accept-anything validator, discarding the underlying type.
func (s *synthesizer) propertyExpr(p typegraph.Property) Expr {
	if p.Optional {
		return Expr{text("PropTypes.any")}
	}
	return s.expr(p.Type, true)
}

// objectBody synthesizes the shape body assigned to a named object. The body
// spans multiple lines; each property key is emitted as a string literal
// exactly as it appeared in the source JSON, with non-ASCII escaped.
func (s *synthesizer) objectBody(t *typegraph.Type) Expr {
	body := Expr{text("PropTypes.shape({\n")}
	for _, prop := range t.Properties {
		body = append(body, text(s.indent+quoteKey(prop.Key)+": "))
		body = append(body, s.propertyExpr(prop)...)
		body = append(body, text(",\n"))
	}
	return append(body, text("})"))
}

// enumBody synthesizes the one-of body assigned to a named enum, in declared
// case order.
func (s *synthesizer) enumBody(t *typegraph.Type) Expr {
	body := Expr{text("PropTypes.oneOf([")}
	for i, c := range t.Cases {
		if i > 0 {
			body = append(body, text(", "))
		}
		body = append(body, text(quoteKey(c)))
	}
	return append(body, text("])"))
}

// quoteKey embeds a source string as a JavaScript string literal. ASCII-only
// escaping keeps non-ASCII keys byte-stable across tooling.
func quoteKey(key string) string {
	return strconv.QuoteToASCII(key)
}
