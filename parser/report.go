package parser

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/aledsdavies/sable/source"
	"github.com/aledsdavies/sable/syntax"
)

// Severity classifies a Report. Only errors are produced today; the type
// exists so a future warning-level diagnostic (e.g. a deprecated
// construct) doesn't need a breaking change to the Report shape.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Label attaches a message to a specific span within a Report.
type Label struct {
	Span    source.Span
	Message string
}

// Report is an accumulated parse diagnostic. Parsing never aborts on a
// Report: every Report produced during a parse is returned alongside the
// completed (possibly partial) tree.
type Report struct {
	Severity Severity
	Offset   uint32
	Message  string
	Labels   []Label
}

// EncodeReports serializes a report list to canonical CBOR, suitable for
// caching or shipping across a process boundary.
func EncodeReports(reports []Report) ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("build canonical CBOR encoder: %w", err)
	}
	data, err := encMode.Marshal(reports)
	if err != nil {
		return nil, fmt.Errorf("encode reports: %w", err)
	}
	return data, nil
}

// DecodeReports is the inverse of EncodeReports.
func DecodeReports(data []byte) ([]Report, error) {
	var reports []Report
	if err := cbor.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}
	return reports, nil
}

// reportBuilder assembles a Report fluently.
type reportBuilder struct {
	report Report
}

func newErrorReport(offset uint32) *reportBuilder {
	return &reportBuilder{report: Report{Severity: SeverityError, Offset: offset}}
}

func (b *reportBuilder) withMessage(msg string) *reportBuilder {
	b.report.Message = msg
	return b
}

func (b *reportBuilder) withLabel(span source.Span, msg string) *reportBuilder {
	b.report.Labels = append(b.report.Labels, Label{Span: span, Message: msg})
	return b
}

func (b *reportBuilder) finish() Report {
	return b.report
}

// suggestKeyword returns the closest reserved word to text, for "did you
// mean" hints on a failed expect() of a keyword-shaped token. Returns ""
// when nothing in the keyword table fuzzily matches.
func suggestKeyword(text string) string {
	ranks := fuzzy.RankFindFold(text, syntax.KeywordNames())
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}
