// Package parser turns GEDCOM text into the gedcom relational model.
//
// The pipeline is strictly sequential: normalize lines, run the individual
// extraction pass, run the family extraction pass, then resolve
// relationships in place. Every stage degrades to partial or empty results
// instead of aborting — a malformed line is skipped, an unreadable file
// yields zero lines, and a failed individual pass still lets the family
// pass and resolution proceed.
package parser

import (
	"time"

	"github.com/teranos/kin/errors"
	"github.com/teranos/kin/gedcom"
	"github.com/teranos/kin/logger"
)

// Parser converts one GEDCOM file into a gedcom.Result.
type Parser struct {
	path    string
	emitter ProgressEmitter
}

// Option configures a Parser.
type Option func(*Parser)

// WithEmitter attaches a progress emitter that is notified at pipeline
// milestones. The default is NopEmitter.
func WithEmitter(e ProgressEmitter) Option {
	return func(p *Parser) {
		if e != nil {
			p.emitter = e
		}
	}
}

// New creates a parser for the GEDCOM file at path.
func New(path string, opts ...Option) *Parser {
	p := &Parser{path: path, emitter: NopEmitter{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the full pipeline and always returns a usable result: on a
// total failure the maps are empty and Summary.Error carries the cause.
// The returned result is never nil and the error mirrors Summary.Error for
// callers that prefer explicit checking.
func (p *Parser) Parse() (result *gedcom.Result, err error) {
	result = &gedcom.Result{
		Individuals:     map[string]*gedcom.Individual{},
		Families:        map[string]*gedcom.Family{},
		IndividualOrder: []string{},
		FamilyOrder:     []string{},
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("parse failed: %v", r)
			logger.Errorw("GEDCOM parse failed, returning empty result",
				"path", p.path,
				"error", err)
			p.emitter.EmitError("parse", err)
			result = &gedcom.Result{
				Individuals: map[string]*gedcom.Individual{},
				Families:    map[string]*gedcom.Family{},
				Summary: gedcom.Summary{
					ParsedAt: time.Now(),
					Error:    err.Error(),
				},
				IndividualOrder: []string{},
				FamilyOrder:     []string{},
			}
		}
	}()

	p.emitter.EmitStage("read", p.path)
	lines := readLines(p.path)
	p.emitter.EmitCount("lines", len(lines))

	p.emitter.EmitStage("individuals", "extracting individual records")
	p.extractIndividualsIsolated(lines, result)
	p.emitter.EmitCount("individuals", len(result.Individuals))

	p.emitter.EmitStage("families", "extracting family records")
	extractFamilies(lines, result)
	p.emitter.EmitCount("families", len(result.Families))

	p.emitter.EmitStage("resolve", "resolving relationships")
	resolveRelationships(result)

	result.Summary = gedcom.Summary{
		TotalIndividuals: len(result.Individuals),
		TotalFamilies:    len(result.Families),
		ParsedAt:         time.Now(),
	}

	p.emitter.EmitComplete(map[string]interface{}{
		"individuals": result.Summary.TotalIndividuals,
		"families":    result.Summary.TotalFamilies,
	})
	logger.Debugw("GEDCOM parse complete",
		"path", p.path,
		"individuals", result.Summary.TotalIndividuals,
		"families", result.Summary.TotalFamilies)

	return result, nil
}

// extractIndividualsIsolated keeps an individual-pass failure from taking
// down family extraction and resolution; the individuals map may be left
// partially populated.
func (p *Parser) extractIndividualsIsolated(lines []string, out *gedcom.Result) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.Newf("individual extraction failed: %v", r)
			logger.Warnw("continuing with partial individuals", "error", err)
			p.emitter.EmitError("individuals", err)
		}
	}()
	extractIndividuals(lines, out)
}
