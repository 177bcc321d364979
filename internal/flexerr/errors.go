// Package flexerr provides the structured error envelope used at the
// engine's outer boundaries (CLI exit paths, batch run reports), grounded
// on errors/errors.go. The severity taxonomy, correlation ID, and context
// map survive; the schema-driven context-value whitelist and the
// telemetry-per-call wrapping of the original are dropped as overkill for
// a single-process scoring tool (see DESIGN.md).
package flexerr

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Severity classifies an Envelope's impact.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityLevel = map[Severity]int{
	SeverityInfo:     0,
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Envelope is a structured error suitable for CLI/JSON rendering, with a
// stable machine-readable Code, a UUIDv7 correlation ID for cross-run
// grepping, and free-form Context.
type Envelope struct {
	Code          string         `json:"code"`
	Message       string         `json:"message"`
	Severity      Severity       `json:"severity,omitempty"`
	SeverityLevel int            `json:"severity_level,omitempty"`
	CorrelationID string         `json:"correlation_id"`
	Timestamp     string         `json:"timestamp"`
	Context       map[string]any `json:"context,omitempty"`
	cause         error
}

// New creates an Envelope with a fresh correlation ID and info severity.
func New(code, message string) *Envelope {
	return &Envelope{
		Code:          code,
		Message:       message,
		Severity:      SeverityInfo,
		SeverityLevel: severityLevel[SeverityInfo],
		CorrelationID: newCorrelationID(),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
}

// Wrap builds an Envelope around an existing error, preserving it for
// Unwrap and error-chain inspection.
func Wrap(code string, err error) *Envelope {
	e := New(code, err.Error())
	e.cause = err
	return e
}

// WithSeverity sets the Envelope's severity; invalid values fall back to
// SeverityInfo.
func (e *Envelope) WithSeverity(s Severity) *Envelope {
	if _, ok := severityLevel[s]; !ok {
		s = SeverityInfo
	}
	e.Severity = s
	e.SeverityLevel = severityLevel[s]
	return e
}

// WithContext attaches structured context fields, merging into any
// already present.
func (e *Envelope) WithContext(ctx map[string]any) *Envelope {
	if e.Context == nil {
		e.Context = make(map[string]any, len(ctx))
	}
	for k, v := range ctx {
		e.Context[k] = v
	}
	return e
}

// Error implements the error interface.
func (e *Envelope) Error() string {
	return fmt.Sprintf("%s: %s [%s]", e.Code, e.Message, e.CorrelationID)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Envelope) Unwrap() error {
	return e.cause
}

// JSON renders the Envelope as an indented JSON document.
func (e *Envelope) JSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

func newCorrelationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
