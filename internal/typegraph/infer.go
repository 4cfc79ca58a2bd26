package typegraph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Options control the inference heuristics.
type Options struct {
	// DetectEnums turns repeated small string sets in arrays into Enum
	// types.
	DetectEnums bool

	// DetectFormats classifies RFC 3339 timestamps and UUIDs as
	// transformed strings.
	DetectFormats bool

	// DetectMaps turns objects with many uniform properties into Map
	// types.
	DetectMaps bool
}

// DefaultOptions returns the inference defaults used by the CLI.
func DefaultOptions() Options {
	return Options{DetectEnums: true, DetectFormats: true}
}

const (
	// maxEnumCases is the largest distinct-value set the enum heuristic
	// will accept.
	maxEnumCases = 8

	// minMapKeys is the smallest property count at which an object is
	// considered a map when DetectMaps is on.
	minMapKeys = 16
)

// Infer builds a type graph from one or more JSON documents that are all
// samples of the same top-level value. Later samples refine the type built
// from earlier ones: properties missing from any sample become optional and
// conflicting observations widen into unions. The resulting traversal order
// is deterministic for identical input.
func Infer(samples [][]byte, topLevel string, opts Options) (*Graph, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("typegraph: no samples to infer from")
	}

	in := &inferrer{opts: opts, arrays: make(map[*Type]*elemStats)}

	var root *Type
	for i, sample := range samples {
		val, err := decodeDocument(sample)
		if err != nil {
			return nil, fmt.Errorf("typegraph: sample %d: %w", i+1, err)
		}
		root = in.extend(root, val, topLevel)
	}

	graph := NewGraph()
	in.collect(graph, root, topLevel, make(map[*Type]bool))
	graph.AddRoot(topLevel, root)

	return graph, nil
}

// inferrer carries per-pass state: the heuristics configuration and the
// string literals observed in each array, which feed the enum heuristic.
type inferrer struct {
	opts   Options
	arrays map[*Type]*elemStats
}

type elemStats struct {
	literals  []string
	nonString bool
}

// extend widens t so that it also describes val, creating t when nil. The
// returned node replaces t at the call site; most widening happens in place
// but a kind mismatch allocates a fresh union wrapper.
func (in *inferrer) extend(t *Type, val jsonValue, label string) *Type {
	if t == nil {
		return in.fresh(val, label)
	}

	if t.Kind == KindUnion {
		for i, member := range t.Members {
			if describes(member, val) {
				t.Members[i] = in.extend(member, val, label)
				return t
			}
		}
		t.Members = append(t.Members, in.fresh(val, label))
		return t
	}

	if !describes(t, val) {
		return NewUnion(t, in.fresh(val, label))
	}

	switch v := val.(type) {
	case nil, bool:
		return t

	case json.Number:
		if numberKind(v) == KindDouble {
			t.Kind = KindDouble
		}
		return t

	case string:
		// A transformed string only survives while every observed value
		// carries the same format; mixed evidence degrades to string.
		if t.Kind == KindTransformedString {
			s := in.stringType(v)
			if s.Kind != KindTransformedString || s.Transform != t.Transform {
				t.Kind = KindString
				t.Transform = ""
			}
		}
		return t

	case []jsonValue:
		for _, elem := range v {
			t.Items = in.extend(t.Items, elem, label)
			in.noteElement(t, elem)
		}
		return t

	case *jsonObject:
		in.mergeObject(t, v)
		return t

	default:
		return t
	}
}

// fresh creates a node describing val alone.
func (in *inferrer) fresh(val jsonValue, label string) *Type {
	switch v := val.(type) {
	case nil:
		return NewPrimitive(KindNull)
	case bool:
		return NewPrimitive(KindBool)
	case json.Number:
		return NewPrimitive(numberKind(v))
	case string:
		return in.stringType(v)
	case []jsonValue:
		t := &Type{Kind: KindArray}
		for _, elem := range v {
			t.Items = in.extend(t.Items, elem, label)
			in.noteElement(t, elem)
		}
		return t
	case *jsonObject:
		t := NewObject(label)
		for _, key := range v.keys {
			t.Properties = append(t.Properties, Property{
				Key:  key,
				Type: in.fresh(v.values[key], key),
			})
		}
		return t
	default:
		return NewPrimitive(KindAny)
	}
}

// mergeObject folds an observed object value into an existing object type.
// New keys arrive optional (earlier samples lacked them); keys missing from
// the value become optional too.
func (in *inferrer) mergeObject(t *Type, obj *jsonObject) {
	index := make(map[string]int, len(t.Properties))
	for i, prop := range t.Properties {
		index[prop.Key] = i
	}

	for _, key := range obj.keys {
		if i, ok := index[key]; ok {
			t.Properties[i].Type = in.extend(t.Properties[i].Type, obj.values[key], key)
		} else {
			t.Properties = append(t.Properties, Property{
				Key:      key,
				Type:     in.fresh(obj.values[key], key),
				Optional: true,
			})
		}
	}

	for i := range t.Properties {
		if _, present := obj.values[t.Properties[i].Key]; !present {
			t.Properties[i].Optional = true
		}
	}
}

// stringType classifies a string literal, detecting well-known formats when
// enabled.
func (in *inferrer) stringType(s string) *Type {
	if in.opts.DetectFormats {
		if len(s) == 36 {
			if _, err := uuid.Parse(s); err == nil {
				return NewTransformedString(TransformUUID)
			}
		}
		if _, err := time.Parse(time.RFC3339, s); err == nil {
			return NewTransformedString(TransformDateTime)
		}
	}
	return NewPrimitive(KindString)
}

// noteElement records array element observations for the enum heuristic.
func (in *inferrer) noteElement(arr *Type, elem jsonValue) {
	stats := in.arrays[arr]
	if stats == nil {
		stats = &elemStats{}
		in.arrays[arr] = stats
	}
	if s, ok := elem.(string); ok {
		stats.literals = append(stats.literals, s)
	} else {
		stats.nonString = true
	}
}

// describes reports whether node t is in the same variant family as the
// observed value, i.e. whether extend can widen t in place instead of
// forming a union.
func describes(t *Type, val jsonValue) bool {
	switch val.(type) {
	case nil:
		return t.Kind == KindNull
	case bool:
		return t.Kind == KindBool
	case json.Number:
		return t.Kind == KindInteger || t.Kind == KindDouble
	case string:
		return t.Kind == KindString || t.Kind == KindTransformedString
	case []jsonValue:
		return t.Kind == KindArray
	case *jsonObject:
		return t.Kind == KindObject
	default:
		return t.Kind == KindAny
	}
}

// numberKind distinguishes integral lexemes from floating-point ones.
func numberKind(n json.Number) Kind {
	if strings.ContainsAny(n.String(), ".eE") {
		return KindDouble
	}
	return KindInteger
}

// collect walks the finished type tree in pre-order, applies the enum and
// map conversions, and registers every named definition with the graph. The
// walk order is the graph's traversal order, so it must be deterministic.
func (in *inferrer) collect(g *Graph, t *Type, label string, visited map[*Type]bool) {
	if t == nil || visited[t] {
		return
	}
	visited[t] = true

	switch t.Kind {
	case KindArray:
		if t.Items == nil {
			t.Items = NewPrimitive(KindAny)
		}
		if enum := in.enumFor(t, label); enum != nil {
			t.Items = enum
		}
		in.collect(g, t.Items, label, visited)
		if t.Items.Kind == KindEnum {
			g.RegisterEnum(t.Items)
		}

	case KindMap:
		in.collect(g, t.Values, label, visited)

	case KindObject:
		if in.opts.DetectMaps && len(t.Properties) >= minMapKeys {
			convertToMap(t)
			in.collect(g, t.Values, label, visited)
			return
		}
		g.RegisterObject(t)
		for _, prop := range t.Properties {
			in.collect(g, prop.Type, prop.Key, visited)
		}

	case KindUnion:
		for _, member := range t.Members {
			in.collect(g, member, label, visited)
		}
	}
}

// enumFor applies the enum heuristic to an array node: string-only elements,
// a small distinct-value set, and at least one repeated value.
func (in *inferrer) enumFor(arr *Type, label string) *Type {
	if !in.opts.DetectEnums || arr.Items == nil || arr.Items.Kind != KindString {
		return nil
	}
	stats := in.arrays[arr]
	if stats == nil || stats.nonString {
		return nil
	}

	seen := make(map[string]bool)
	var distinct []string
	for _, lit := range stats.literals {
		if !seen[lit] {
			seen[lit] = true
			distinct = append(distinct, lit)
		}
	}

	if len(distinct) == 0 || len(distinct) > maxEnumCases || len(distinct) == len(stats.literals) {
		return nil
	}
	return NewEnum(label, distinct...)
}

// convertToMap rewrites a wide object node into a map in place, so existing
// references to the node stay valid. The value type is kept only when all
// properties agree on a single scalar kind; anything else degrades to Any.
func convertToMap(t *Type) {
	values := NewPrimitive(KindAny)
	if len(t.Properties) > 0 {
		first := t.Properties[0].Type
		uniform := scalarKind(first.Kind)
		for _, prop := range t.Properties[1:] {
			if prop.Type.Kind != first.Kind {
				uniform = false
				break
			}
		}
		if uniform {
			values = first
		}
	}

	t.Kind = KindMap
	t.Label = ""
	t.Properties = nil
	t.Values = values
}

// scalarKind reports whether a kind is a leaf with no nested types.
func scalarKind(k Kind) bool {
	switch k {
	case KindArray, KindMap, KindObject, KindEnum, KindUnion:
		return false
	default:
		return true
	}
}

// jsonValue is the ordered decoding of a JSON document: nil, bool,
// json.Number, string, []jsonValue, or *jsonObject.
type jsonValue interface{}

// jsonObject preserves the key order of the source document, which standard
// map decoding would lose.
type jsonObject struct {
	keys   []string
	values map[string]jsonValue
}

// decodeDocument parses a single JSON document with ordered object keys and
// numbers kept as lexemes.
func decodeDocument(data []byte) (jsonValue, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	val, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	return val, nil
}

func decodeValue(dec *json.Decoder) (jsonValue, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := &jsonObject{values: make(map[string]jsonValue)}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("invalid JSON: %w", err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("invalid JSON: object key is not a string")
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				if _, dup := obj.values[key]; !dup {
					obj.keys = append(obj.keys, key)
				}
				obj.values[key] = val
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("invalid JSON: %w", err)
			}
			return obj, nil

		case '[':
			var arr []jsonValue
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("invalid JSON: %w", err)
			}
			return arr, nil

		default:
			return nil, fmt.Errorf("invalid JSON: unexpected delimiter %v", t)
		}

	default:
		// bool, string, json.Number, or nil for a JSON null.
		return tok, nil
	}
}
