// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package parser implements readers for the small network description
// language consumed by package network: regulation lines and update
// function expressions. It has no dependency on package
// network — it only ever produces plain templates (names, not resolved
// ids) that the caller is responsible for validating against a concrete
// RegulatoryGraph.
package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// Effect mirrors network.Effect without introducing a dependency on that
// package; network.AddRegulationString converts between the two.
type Effect int

const (
	EffectUnknown Effect = iota
	EffectActivation
	EffectInhibition
)

// RegulationTemplate is the parsed, but not yet validated, shape of a
// regulation line: "source ('->'|'-|'|'-?') ('?'?) target".
type RegulationTemplate struct {
	Source     string
	Target     string
	Effect     Effect
	Observable bool
}

var identifier = `[A-Za-z0-9_]+`

var regulationLine = regexp.MustCompile(
	`^\s*(` + identifier + `)\s*(->|-\||-\?)\s*(\??)\s*(` + identifier + `)\s*$`,
)

// ParseRegulation parses a single regulation line.
func ParseRegulation(line string) (*RegulationTemplate, error) {
	m := regulationLine.FindStringSubmatch(line)
	if m == nil {
		return nil, &ParseError{Input: line, Msg: "not a valid regulation line"}
	}
	var eff Effect
	switch m[2] {
	case "->":
		eff = EffectActivation
	case "-|":
		eff = EffectInhibition
	case "-?":
		eff = EffectUnknown
	}
	return &RegulationTemplate{
		Source:     m[1],
		Target:     m[4],
		Effect:     eff,
		Observable: m[3] != "?",
	}, nil
}

// ParseError reports a lexical or grammatical failure while reading the
// network description text format.
type ParseError struct {
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parser: %s: %q", e.Msg, strings.TrimSpace(e.Input))
}
