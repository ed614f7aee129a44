package molit

import (
	"strconv"
	"strings"
)

// Record is a raw upstream item. Get consults an ordered list of candidate
// field names and returns the first non-blank value; absent under every
// alias yields "". The alias order per canonical field is a data table owned
// by the dataset mappers, not logic owned by the record.
type Record interface {
	Get(keys ...string) string
}

// xmlRecord reads fields from the direct children of one <item> element.
type xmlRecord struct {
	n *xmlNode
}

func (r xmlRecord) Get(keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(r.n.childText(key)); v != "" {
			return v
		}
	}
	return ""
}

// jsonRecord reads fields from one decoded JSON object. Scalars are
// stringified; nested values are ignored.
type jsonRecord map[string]any

func (r jsonRecord) Get(keys ...string) string {
	for _, key := range keys {
		if v := stringifyScalar(r[key]); v != "" {
			return v
		}
	}
	return ""
}

func stringifyScalar(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// itemsShape tags the gateway's ambiguous items region before it is
// collapsed to a flat sequence: a bare object, an ordered list, or nothing
// at all. The ambiguity is a transport property, not an error.
type itemsShape int

const (
	itemsAbsent itemsShape = iota
	itemsSingle
	itemsMany
)

// classifyItems resolves the items region of a decoded JSON body. The
// region may be missing, a wrapper object holding an "item" key, a bare
// record object, or a list of records.
func classifyItems(region any) (itemsShape, []map[string]any) {
	switch v := region.(type) {
	case nil:
		return itemsAbsent, nil
	case map[string]any:
		if inner, ok := v["item"]; ok {
			return classifyItems(inner)
		}
		if len(v) == 0 {
			return itemsAbsent, nil
		}
		return itemsSingle, []map[string]any{v}
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, e := range v {
			if m, ok := e.(map[string]any); ok {
				out = append(out, m)
			}
		}
		if len(out) == 0 {
			return itemsAbsent, nil
		}
		return itemsMany, out
	default:
		return itemsAbsent, nil
	}
}

// extractJSONItems collapses the items region to an ordered Record
// sequence. Upstream order is preserved; nothing is deduplicated.
func extractJSONItems(region any) []Record {
	_, objs := classifyItems(region)
	out := make([]Record, 0, len(objs))
	for _, obj := range objs {
		out = append(out, jsonRecord(obj))
	}
	return out
}

// extractXMLItems collects every <item> element of a parsed document in
// document order. A document with a single bare <item> and one with an
// <items> list normalize identically.
func extractXMLItems(root *xmlNode) []Record {
	if root == nil {
		return nil
	}
	nodes := root.findAll("item")
	out := make([]Record, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, xmlRecord{n: n})
	}
	return out
}
