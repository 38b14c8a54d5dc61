package respond

import (
	"mime"
	"strconv"
	"strings"
)

// mediaRank scores how well an Accept entry matches a representation.
// Specificity: 0 for a wildcard, 1 for the base type, 2 for the problem type.
type mediaRank struct {
	q           float64
	specificity int
	matched     bool
}

func (m mediaRank) better(o mediaRank) bool {
	if !o.matched {
		return m.matched
	}
	if m.q != o.q {
		return m.q > o.q
	}
	return m.specificity > o.specificity
}

var (
	jsonSpecificity = map[string]int{
		"*/*":                      0,
		"application/*":            0,
		"application/json":         1,
		"application/problem+json": 2,
	}
	cborSpecificity = map[string]int{
		"application/cbor":         1,
		"application/problem+cbor": 2,
	}
)

// prefersCBOR reports whether the Accept header ranks CBOR above JSON.
// Entries are ranked by q-value and then by specificity. Wildcards only count
// toward JSON, and every tie resolves to JSON.
func prefersCBOR(accept string) bool {
	if accept == "" {
		return false
	}
	var bestJSON, bestCBOR mediaRank
	for part := range strings.SplitSeq(accept, ",") {
		mediaType, q, ok := parseAcceptEntry(part)
		if !ok || q <= 0 {
			continue
		}
		if s, found := jsonSpecificity[mediaType]; found {
			if r := (mediaRank{q: q, specificity: s, matched: true}); r.better(bestJSON) {
				bestJSON = r
			}
		}
		if s, found := cborSpecificity[mediaType]; found {
			if r := (mediaRank{q: q, specificity: s, matched: true}); r.better(bestCBOR) {
				bestCBOR = r
			}
		}
	}
	return bestCBOR.better(bestJSON)
}

// parseAcceptEntry returns the lower-cased media type and its q-value.
// A missing or malformed q-value counts as 1.
func parseAcceptEntry(entry string) (string, float64, bool) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return "", 0, false
	}
	mediaType, params, err := mime.ParseMediaType(entry)
	if err != nil {
		// ParseMediaType rejects some real-world headers (e.g. spaces before ';').
		// Fall back to a lenient split.
		fields := strings.Split(entry, ";")
		mediaType = strings.ToLower(strings.TrimSpace(fields[0]))
		params = make(map[string]string)
		for _, f := range fields[1:] {
			if k, v, found := strings.Cut(f, "="); found {
				params[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
			}
		}
	}
	q := 1.0
	if raw, ok := params["q"]; ok {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed >= 0 && parsed <= 1 {
			q = parsed
		}
	}
	return mediaType, q, mediaType != ""
}
