package proptypes

// orderDefinitions permutes named definitions so that, wherever the acyclic
// structure allows, a definition appears after everything it references.
//
// Definitions are processed in graph-traversal order. Each one is inserted
// at the smallest position that is past every already-placed dependency
// found in its body; a definition with no placed dependencies goes to the
// front half unchanged relative to its peers. References to itself or to
// definitions not yet processed are ignored — both directions of a cycle
// cannot be satisfied, and the emitted module hoists every name before any
// body, so a dependency landing after its user is still legal output.
//
// Quadratic in the number of named definitions, which stays small relative
// to input size.
func orderDefinitions(defs []Definition) []Definition {
	ordered := make([]Definition, 0, len(defs))

	for _, def := range defs {
		ordinal := 0
		for _, tok := range def.Body {
			if tok.Ref == "" {
				continue
			}
			for pos, placed := range ordered {
				if placed.Name == tok.Ref && pos+1 > ordinal {
					ordinal = pos + 1
				}
			}
		}

		ordered = append(ordered, Definition{})
		copy(ordered[ordinal+1:], ordered[ordinal:])
		ordered[ordinal] = def
	}

	return ordered
}
