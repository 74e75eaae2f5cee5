package sheetex

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// defaultConfidence is assumed when a boundary record carries no usable
// confidence value.
const defaultConfidence = 0.7

// ProductBoundary is one detected technical sheet: a product and the
// catalog pages that belong to it. Boundaries are constructed solely by
// ParseBoundaries and consumed read-only by the materializer.
type ProductBoundary struct {
	Product    string  `json:"product"`
	Pages      []int   `json:"pages"` // 1-indexed
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// ParseOutcome classifies the result of parsing an LLM response.
type ParseOutcome int

const (
	// ParseOK means a JSON array was located and decoded. The boundary
	// list may still be empty if the model found no products or every
	// record fell below the confidence threshold.
	ParseOK ParseOutcome = iota

	// ParseEmpty means the response contained no JSON array delimiters.
	ParseEmpty

	// ParseMalformed means array delimiters were present but the
	// content between them did not decode as JSON.
	ParseMalformed
)

func (o ParseOutcome) String() string {
	switch o {
	case ParseOK:
		return "ok"
	case ParseEmpty:
		return "empty"
	case ParseMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// ParseResult is the outcome of parsing a raw LLM response. A tagged
// result rather than an error: callers can distinguish "nothing found"
// from "couldn't understand the response" deterministically.
type ParseResult struct {
	Boundaries []ProductBoundary
	Outcome    ParseOutcome
	Detail     string // diagnostic detail for Empty/Malformed outcomes
}

// ParseBoundaries extracts product boundaries from free-form LLM output.
// The response is expected to contain exactly one JSON array of objects
// with keys "product", "confidence", "pages", and "reason", but the
// array may be wrapped in prose, markdown fences, or commentary. The
// substring between the first '[' and the last ']' is decoded; anything
// around it is ignored.
//
// Records below threshold are dropped. Literal duplicates (same product
// string, same page set) are collapsed. Malformed input never causes a
// panic or an error: it degrades to an Empty or Malformed result, and
// malformed elements inside a valid array are skipped.
//
// Page values are coerced to integers but not range-checked here; the
// materializer validates against the real page count.
func ParseBoundaries(raw string, threshold float64) ParseResult {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		return ParseResult{Outcome: ParseEmpty, Detail: "no JSON array found in response"}
	}

	var elements []any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &elements); err != nil {
		return ParseResult{Outcome: ParseMalformed, Detail: "response array is not valid JSON: " + err.Error()}
	}

	var boundaries []ProductBoundary
	seen := make(map[string]bool)

	for _, el := range elements {
		obj, ok := el.(map[string]any)
		if !ok {
			continue
		}

		confidence := coerceConfidence(obj["confidence"])
		if confidence < threshold {
			continue
		}

		product := "Unnamed Product"
		if s, ok := obj["product"].(string); ok && s != "" {
			product = s
		}

		reason := ""
		if s, ok := obj["reason"].(string); ok {
			reason = s
		}

		b := ProductBoundary{
			Product:    product,
			Pages:      coercePages(obj["pages"]),
			Confidence: confidence,
			Reason:     reason,
		}

		key := boundaryKey(b)
		if seen[key] {
			continue
		}
		seen[key] = true

		boundaries = append(boundaries, b)
	}

	return ParseResult{Boundaries: boundaries, Outcome: ParseOK}
}

// coerceConfidence accepts a number or a numeric string and falls back
// to defaultConfidence on absence or failure.
func coerceConfidence(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
	}
	return defaultConfidence
}

// coercePages accepts a native JSON list or a string. A string is first
// decoded as JSON, then as comma-separated integers; if both fail the
// result is empty. Individual values that cannot be coerced to an
// integer are skipped.
func coercePages(v any) []int {
	switch t := v.(type) {
	case []any:
		return coercePageList(t)
	case string:
		var decoded []any
		if err := json.Unmarshal([]byte(t), &decoded); err == nil {
			return coercePageList(decoded)
		}
		var pages []int
		for _, tok := range strings.Split(t, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil {
				return nil
			}
			pages = append(pages, n)
		}
		return pages
	}
	return nil
}

func coercePageList(values []any) []int {
	var pages []int
	for _, v := range values {
		switch t := v.(type) {
		case float64:
			pages = append(pages, int(t))
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
				pages = append(pages, n)
			}
		}
	}
	return pages
}

// boundaryKey identifies a boundary by product name and page set,
// ignoring page order.
func boundaryKey(b ProductBoundary) string {
	pages := append([]int(nil), b.Pages...)
	sort.Ints(pages)

	var sb strings.Builder
	sb.WriteString(b.Product)
	for _, p := range pages {
		sb.WriteByte('|')
		sb.WriteString(strconv.Itoa(p))
	}
	return sb.String()
}

// NormalizePages clamps 1-indexed pages to [1, totalPages], removes
// duplicates, and sorts ascending. The result is the exact page set a
// materialized sheet will contain.
func NormalizePages(pages []int, totalPages int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, p := range pages {
		if p < 1 || p > totalPages || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// OverlappingPages returns the pages claimed by more than one boundary,
// sorted ascending. Overlap is reported as a warning only; intended
// semantics of overlapping claims are ambiguous in the source data, so
// acceptance behavior is never changed.
func OverlappingPages(boundaries []ProductBoundary) []int {
	counts := make(map[int]int)
	for _, b := range boundaries {
		pageSeen := make(map[int]bool)
		for _, p := range b.Pages {
			if pageSeen[p] {
				continue
			}
			pageSeen[p] = true
			counts[p]++
		}
	}

	var overlap []int
	for p, n := range counts {
		if n > 1 {
			overlap = append(overlap, p)
		}
	}
	sort.Ints(overlap)
	return overlap
}
