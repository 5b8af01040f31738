// Package analysis is the seam for reading identity documents out of
// uploaded scans. No real recognizer ships with the service; the stub
// analyzer answers every upload with a fixed advisory.
package analysis

import (
	"context"
	"errors"
	"fmt"
)

// DocumentKind names which identity document an upload claims to be.
type DocumentKind string

const (
	DocumentPassport   DocumentKind = "passport"
	DocumentNationalID DocumentKind = "nationalId"
)

// ParseDocumentKind validates a kind taken from a URL.
func ParseDocumentKind(s string) (DocumentKind, error) {
	switch k := DocumentKind(s); k {
	case DocumentPassport, DocumentNationalID:
		return k, nil
	}
	return "", fmt.Errorf("unknown document kind: %s", s)
}

// Document is one uploaded scan.
type Document struct {
	Kind        DocumentKind
	Filename    string
	ContentType string
	Data        []byte
}

// Result carries extracted values keyed by field path relative to the
// document, e.g. "number" or "dateOfExpiry".
type Result struct {
	Fields map[string]string
}

// ErrAnalysisUnavailable is wrapped by every Failure.
var ErrAnalysisUnavailable = errors.New("document analysis unavailable")

// Failure is an analysis error whose message is meant for the applicant.
// It never blocks the wizard.
type Failure struct {
	Advisory string
}

func (f *Failure) Error() string {
	return "analysis failed: " + f.Advisory
}

func (f *Failure) Unwrap() error {
	return ErrAnalysisUnavailable
}

// Analyzer extracts document fields from an upload.
type Analyzer interface {
	Analyze(ctx context.Context, doc Document) (*Result, error)
}

// StubAdvisory is the message every stub analysis returns.
const StubAdvisory = "Please select a National ID PDF file first."

// StubAnalyzer rejects every document with StubAdvisory.
type StubAnalyzer struct{}

func NewStub() *StubAnalyzer {
	return &StubAnalyzer{}
}

func (StubAnalyzer) Analyze(ctx context.Context, _ Document) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, &Failure{Advisory: StubAdvisory}
}
