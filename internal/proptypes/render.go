package proptypes

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/quickshape/quickshape/internal/emit"
	"github.com/quickshape/quickshape/internal/namer"
	"github.com/quickshape/quickshape/internal/typegraph"
)

// Options control the emitted module's surface.
type Options struct {
	// Indent is one indentation level. Defaults to four spaces.
	Indent string

	// LeadingComment replaces the default usage comment when non-empty.
	LeadingComment string

	// SourceName is mentioned in the default usage comment, typically the
	// sample file the graph was inferred from.
	SourceName string
}

// Render emits the complete PropTypes module for a graph. The output is, in
// order: a usage comment, the prop-types import, one hoisted placeholder
// declaration per named definition, enum bodies, object bodies in dependency
// order, and an exported binding per root.
//
// Hoisting every name before any body is what makes cycles safe: a body may
// reference a definition that is only assigned further down, and the
// reference still resolves because the declaration already exists.
//
// Rendering either fully succeeds or returns an error before producing any
// text; Namer failures are propagated unchanged.
func Render(g *typegraph.Graph, ids namer.Namer, opts Options) (string, error) {
	if opts.Indent == "" {
		opts.Indent = "    "
	}

	syn := &synthesizer{
		names:  make(map[*typegraph.Type]namer.Name),
		indent: opts.Indent,
	}

	named := make([]*typegraph.Type, 0, len(g.Enums())+len(g.Objects()))
	named = append(named, g.Enums()...)
	named = append(named, g.Objects()...)

	for _, t := range named {
		name, err := ids.Assign(t.Label, namer.PascalCase)
		if err != nil {
			return "", err
		}
		syn.names[t] = name
	}

	// Root binding names are fixed up front: object and enum roots alias
	// their named definition, everything else gets its own identifier.
	rootNames := make([]namer.Name, len(g.Roots()))
	for i, root := range g.Roots() {
		switch root.Type.Kind {
		case typegraph.KindObject, typegraph.KindEnum:
			name, ok := syn.names[root.Type]
			if !ok {
				return "", fmt.Errorf("proptypes: root %q references an unregistered %s type", root.Label, root.Type.Kind)
			}
			rootNames[i] = name
		default:
			name, err := ids.Assign(root.Label, namer.PascalCase)
			if err != nil {
				return "", err
			}
			rootNames[i] = name
		}
	}

	w := emit.NewWriter(opts.Indent)

	comment := opts.LeadingComment
	if comment == "" {
		comment = defaultComment(opts.SourceName, rootNames)
	}
	w.Comment(comment)
	w.Line("")
	w.Line(`import PropTypes from "prop-types";`)

	if len(named) > 0 {
		w.Line("")
		for _, t := range named {
			w.Line("let _%s;", syn.names[t])
		}
	}

	// Enum bodies are emitted directly: enums cannot reference other named
	// definitions, so they never need dependency ordering.
	for _, t := range g.Enums() {
		w.Line("")
		w.Line("_%s = %s;", syn.names[t], syn.enumBody(t).render())
	}

	defs := make([]Definition, 0, len(g.Objects()))
	for _, t := range g.Objects() {
		defs = append(defs, Definition{Name: syn.names[t], Body: syn.objectBody(t)})
	}
	for _, def := range orderDefinitions(defs) {
		w.Line("")
		w.Line("_%s = %s;", def.Name, def.Body.render())
	}

	if len(g.Roots()) > 0 {
		w.Line("")
	}
	for i, root := range g.Roots() {
		switch root.Type.Kind {
		case typegraph.KindObject, typegraph.KindEnum:
			w.Line("export const %s = _%s;", rootNames[i], rootNames[i])

		case typegraph.KindArray:
			// Bare array roots skip named indirection entirely.
			expr := Expr{text("PropTypes.arrayOf(")}
			expr = append(expr, syn.expr(root.Type.Items, true)...)
			expr = append(expr, text(")"))
			w.Line("export const %s = %s;", rootNames[i], expr.render())

		default:
			w.Line("export const %s = %s;", rootNames[i], syn.expr(root.Type, true).render())
		}
	}

	return w.String(), nil
}

// defaultComment builds the leading usage comment from the first root.
func defaultComment(source string, rootNames []namer.Name) string {
	header := "Generated by quickshape."
	if source != "" {
		header = fmt.Sprintf("Generated by quickshape from %s.", source)
	}
	if len(rootNames) == 0 {
		return header
	}

	root := string(rootNames[0])
	return fmt.Sprintf("%s\n\n  import { %s } from \"./%s\";\n\n  MyComponent.propTypes = { %s: %s };",
		header, root, strings.ToLower(root), lowerFirst(root), root)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
