package parser

import (
	"encoding/json"
	"io"
	"time"

	"github.com/pterm/pterm"
)

// ProgressEmitter receives pipeline milestone notifications so the parser
// itself stays free of output-channel concerns. Implementations:
// - CLIEmitter: pretty terminal output using pterm
// - JSONEmitter: structured JSON events for machine consumption
// - NopEmitter: silence, the default
type ProgressEmitter interface {
	// EmitStage announces a pipeline stage (reading, individuals,
	// families, resolution).
	EmitStage(stage, message string)

	// EmitCount reports how many items a completed stage produced,
	// e.g. lines read or individuals found.
	EmitCount(what string, count int)

	// EmitError reports a degraded (not fatal) stage failure.
	EmitError(stage string, err error)

	// EmitComplete announces the end of the pipeline with summary data.
	EmitComplete(summary map[string]interface{})
}

// NopEmitter discards all progress events.
type NopEmitter struct{}

func (NopEmitter) EmitStage(string, string)            {}
func (NopEmitter) EmitCount(string, int)               {}
func (NopEmitter) EmitError(string, error)             {}
func (NopEmitter) EmitComplete(map[string]interface{}) {}

// CLIEmitter prints progress to the terminal.
type CLIEmitter struct {
	verbosity int
}

// NewCLIEmitter creates a terminal progress emitter. Counts and stage
// announcements only show at verbosity >= 1.
func NewCLIEmitter(verbosity int) *CLIEmitter {
	return &CLIEmitter{verbosity: verbosity}
}

func (e *CLIEmitter) EmitStage(stage, message string) {
	if e.verbosity >= 1 {
		pterm.Printf("%s %s: %s\n", pterm.LightCyan("→"), pterm.LightCyan(stage), message)
	}
}

func (e *CLIEmitter) EmitCount(what string, count int) {
	if e.verbosity >= 1 {
		pterm.Printf("  %s %s\n", pterm.Green(count), what)
	}
}

func (e *CLIEmitter) EmitError(stage string, err error) {
	pterm.Error.Printf("Error in %s: %v\n", stage, err)
}

func (e *CLIEmitter) EmitComplete(summary map[string]interface{}) {
	if e.verbosity >= 1 {
		pterm.Success.Println("Parse complete")
		for key, value := range summary {
			pterm.Printf("  %s: %v\n", key, value)
		}
	}
}

// ProgressEvent is one structured progress record emitted by JSONEmitter.
type ProgressEvent struct {
	Type      string                 `json:"type"` // "stage", "count", "error", "complete"
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// JSONEmitter writes one JSON event per milestone to the given writer.
type JSONEmitter struct {
	encoder *json.Encoder
}

// NewJSONEmitter creates a machine-readable progress emitter.
func NewJSONEmitter(w io.Writer) *JSONEmitter {
	return &JSONEmitter{encoder: json.NewEncoder(w)}
}

func (e *JSONEmitter) emit(eventType string, data map[string]interface{}) {
	e.encoder.Encode(ProgressEvent{
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	})
}

func (e *JSONEmitter) EmitStage(stage, message string) {
	e.emit("stage", map[string]interface{}{"stage": stage, "message": message})
}

func (e *JSONEmitter) EmitCount(what string, count int) {
	e.emit("count", map[string]interface{}{"what": what, "count": count})
}

func (e *JSONEmitter) EmitError(stage string, err error) {
	e.emit("error", map[string]interface{}{"stage": stage, "error": err.Error()})
}

func (e *JSONEmitter) EmitComplete(summary map[string]interface{}) {
	e.emit("complete", summary)
}
