// Package labels splits a printed-label markup document into standalone labels
// keyed by their scanned code.
package labels

import (
	"fmt"
	"strings"

	"github.com/xelth-com/eckshop/internal/utils"
)

const (
	// DefaultPageBreak separates label sections in exported label sheets
	DefaultPageBreak = `<div style="page-break-after: always;"></div>`
	// DefaultCodeClass marks the element holding the human-readable barcode text
	DefaultCodeClass = "barcode"
)

// AnomalyKind classifies a non-fatal problem found while parsing
type AnomalyKind string

const (
	AnomalyMissingCode   AnomalyKind = "missing_code"
	AnomalyDuplicateCode AnomalyKind = "duplicate_code"
)

// Anomaly is a dropped fragment. Fragment is the index among non-blank fragments.
type Anomaly struct {
	Kind     AnomalyKind `json:"kind"`
	Fragment int         `json:"fragment"`
	Code     string      `json:"code,omitempty"`
	Detail   string      `json:"detail"`
}

func (a Anomaly) String() string {
	if a.Code != "" {
		return fmt.Sprintf("fragment %d: %s (%s): %s", a.Fragment, a.Kind, a.Code, a.Detail)
	}
	return fmt.Sprintf("fragment %d: %s: %s", a.Fragment, a.Kind, a.Detail)
}

// Result maps scan codes to label markup. Keys are unique; the first
// occurrence of a code wins.
type Result struct {
	Labels    map[string]string `json:"labels"`
	Anomalies []Anomaly         `json:"anomalies"`
}

// Options configures the markup conventions of the source document
type Options struct {
	PageBreak string
	CodeClass string
}

// Extractor parses label documents
type Extractor struct {
	opts Options
}

// NewExtractor creates an extractor, filling blank options with defaults
func NewExtractor(opts Options) *Extractor {
	if opts.PageBreak == "" {
		opts.PageBreak = DefaultPageBreak
	}
	if opts.CodeClass == "" {
		opts.CodeClass = DefaultCodeClass
	}
	return &Extractor{opts: opts}
}

// Parse splits document on the page-break marker and keys every fragment by
// its cleaned scan code. Fragments without a code or with an already seen
// code are dropped and reported as anomalies.
func (e *Extractor) Parse(document string) Result {
	res := Result{Labels: make(map[string]string), Anomalies: []Anomaly{}}

	idx := 0
	for _, fragment := range strings.Split(document, e.opts.PageBreak) {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		i := idx
		idx++

		raw, ok := e.extractCode(fragment)
		if !ok {
			res.Anomalies = append(res.Anomalies, Anomaly{
				Kind: AnomalyMissingCode, Fragment: i,
				Detail: "no scan code found",
			})
			continue
		}

		code := utils.CleanScanCode(raw)
		if code == "" {
			res.Anomalies = append(res.Anomalies, Anomaly{
				Kind: AnomalyMissingCode, Fragment: i,
				Detail: fmt.Sprintf("scan code %q is empty after cleaning", raw),
			})
			continue
		}

		if _, exists := res.Labels[code]; exists {
			res.Anomalies = append(res.Anomalies, Anomaly{
				Kind: AnomalyDuplicateCode, Fragment: i, Code: code,
				Detail: "code already seen, keeping first occurrence",
			})
			continue
		}
		res.Labels[code] = fragment
	}

	return res
}

// extractCode tries the structural marker first and the "*CODE*" pattern second
func (e *Extractor) extractCode(fragment string) (string, bool) {
	if code, ok := CodeFromMarker(fragment, e.opts.CodeClass); ok {
		return code, true
	}
	return CodeFromPattern(fragment)
}

// Render parses document and wraps every label into a standalone page
func (e *Extractor) Render(document string) (map[string]string, []Anomaly) {
	res := e.Parse(document)
	pages := make(map[string]string, len(res.Labels))
	for code, fragment := range res.Labels {
		pages[code] = Wrap(fragment, document)
	}
	return pages, res.Anomalies
}
