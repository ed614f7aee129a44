package molit

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Envelope is the gateway response header plus the flattened items region.
// A zero ResultCode is treated as success: several services omit the code
// entirely on a healthy response.
type Envelope struct {
	ResultCode string
	ResultMsg  string
	TotalCount int
	Items      []Record
}

var successCodes = map[string]struct{}{
	"":     {},
	"00":   {},
	"000":  {},
	"0000": {},
}

// OK reports whether the envelope carries a success result code.
func (e *Envelope) OK() bool {
	_, ok := successCodes[e.ResultCode]
	return ok
}

// Message returns the upstream result message, or a generic placeholder
// when the gateway gave none.
func (e *Envelope) Message() string {
	if e.ResultMsg == "" {
		return "unknown error"
	}
	return e.ResultMsg
}

// ParseXMLEnvelope decodes a gateway XML body. resultCode and resultMsg are
// located by depth-first search so both the OpenAPI header placement and
// the bare error documents some services emit resolve the same way.
func ParseXMLEnvelope(body []byte) (*Envelope, error) {
	root, err := parseXMLTree(body)
	if err != nil {
		return nil, err
	}
	env := &Envelope{}
	if v, ok := root.findText("resultCode"); ok {
		env.ResultCode = strings.TrimSpace(v)
	}
	if v, ok := root.findText("resultMsg"); ok {
		env.ResultMsg = strings.TrimSpace(v)
	}
	if v, ok := root.findText("totalCount"); ok {
		env.TotalCount = coerceCount(v)
	}
	env.Items = extractXMLItems(root)
	return env, nil
}

// ParseJSONEnvelope decodes a gateway JSON body. The header is located by
// deep key search and the items region is taken from the first "items" (or
// Onbid-style uppercase) key found anywhere in the document.
func ParseJSONEnvelope(body []byte) (*Envelope, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	env := &Envelope{}
	if v, ok := deepFind(doc, "resultCode"); ok {
		env.ResultCode = strings.TrimSpace(stringifyScalar(v))
	}
	if v, ok := deepFind(doc, "resultMsg"); ok {
		env.ResultMsg = strings.TrimSpace(stringifyScalar(v))
	}
	if v, ok := deepFind(doc, "totalCount"); ok {
		env.TotalCount = coerceCount(stringifyScalar(v))
	}
	if region, ok := deepFind(doc, "items"); ok {
		env.Items = extractJSONItems(region)
	} else if region, ok := deepFind(doc, "item"); ok {
		// Some services (AptBasisInfoServiceV4) return a bare item region
		// with no items wrapper.
		env.Items = extractJSONItems(region)
	}
	return env, nil
}

// deepFind returns the first value stored under key at any depth. The walk
// is breadth first with map keys visited in sorted order, so the shallowest
// occurrence wins and the result does not depend on map iteration order.
func deepFind(doc any, key string) (any, bool) {
	queue := []any{doc}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		switch v := node.(type) {
		case map[string]any:
			if inner, ok := v[key]; ok {
				return inner, true
			}
			keys := make([]string, 0, len(v))
			for k := range v {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				queue = append(queue, v[k])
			}
		case []any:
			queue = append(queue, v...)
		}
	}
	return nil, false
}

// coerceCount parses a count field that arrives as string or number.
// Anything unparseable counts as zero.
func coerceCount(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	return 0
}
