// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package network

import (
	"github.com/dalzilio/paranet/parser"
)

// RegulatoryGraph is pure data: the declared variables and the regulations
// between them, with lookup indices for both.
type RegulatoryGraph struct {
	variables     []Variable
	variableIndex map[string]VariableId
	regulations   map[[2]VariableId]Regulation
	// regulators[t] lists, in insertion order, every VariableId s such that
	// a Regulation{Source: s, Target: t} was added.
	regulators map[VariableId][]VariableId
}

// NewRegulatoryGraph declares every variable in names and returns an empty
// graph (no regulations yet).
func NewRegulatoryGraph(names []string) (*RegulatoryGraph, error) {
	g := &RegulatoryGraph{
		variableIndex: make(map[string]VariableId),
		regulations:   make(map[[2]VariableId]Regulation),
		regulators:    make(map[VariableId][]VariableId),
	}
	for _, name := range names {
		if _, ok := g.variableIndex[name]; ok {
			return nil, validationErrorf("NewRegulatoryGraph", "duplicate variable name %q", name)
		}
		id := VariableId(len(g.variables))
		g.variables = append(g.variables, Variable{Id: id, Name: name})
		g.variableIndex[name] = id
	}
	return g, nil
}

// NumVars returns the number of declared variables.
func (g *RegulatoryGraph) NumVars() int { return len(g.variables) }

// HasVariable reports whether name was declared.
func (g *RegulatoryGraph) HasVariable(name string) bool {
	_, ok := g.variableIndex[name]
	return ok
}

// VariableId returns the id of the variable named name, if declared.
func (g *RegulatoryGraph) VariableId(name string) (VariableId, bool) {
	id, ok := g.variableIndex[name]
	return id, ok
}

// VariableName returns the declared name of v.
func (g *RegulatoryGraph) VariableName(v VariableId) string {
	return g.variables[v].Name
}

// Regulation returns the regulation from s to t, if one was declared.
func (g *RegulatoryGraph) Regulation(s, t VariableId) (Regulation, bool) {
	r, ok := g.regulations[[2]VariableId{s, t}]
	return r, ok
}

// Regulators returns the variables that regulate t, in the order they were
// added.
func (g *RegulatoryGraph) Regulators(t VariableId) []VariableId {
	return g.regulators[t]
}

// AddRegulation records a new regulation. It fails if either endpoint is
// unknown or if a regulation between the same pair already exists.
func (g *RegulatoryGraph) AddRegulation(source, target VariableId, observable bool, effect Effect) error {
	if int(source) < 0 || int(source) >= len(g.variables) {
		return validationErrorf("AddRegulation", "unknown source variable %d", source)
	}
	if int(target) < 0 || int(target) >= len(g.variables) {
		return validationErrorf("AddRegulation", "unknown target variable %d", target)
	}
	key := [2]VariableId{source, target}
	if _, ok := g.regulations[key]; ok {
		return validationErrorf("AddRegulation", "duplicate regulation %s -> %s",
			g.VariableName(source), g.VariableName(target))
	}
	g.regulations[key] = Regulation{Source: source, Target: target, Observable: observable, Effect: effect}
	g.regulators[target] = append(g.regulators[target], source)
	return nil
}

// AddRegulationString parses line with package parser and adds the
// resulting regulation.
func (g *RegulatoryGraph) AddRegulationString(line string) error {
	tpl, err := parser.ParseRegulation(line)
	if err != nil {
		return err
	}
	source, ok := g.VariableId(tpl.Source)
	if !ok {
		return validationErrorf("AddRegulationString", "unknown variable %q", tpl.Source)
	}
	target, ok := g.VariableId(tpl.Target)
	if !ok {
		return validationErrorf("AddRegulationString", "unknown variable %q", tpl.Target)
	}
	return g.AddRegulation(source, target, tpl.Observable, convertEffect(tpl.Effect))
}

func convertEffect(e parser.Effect) Effect {
	switch e {
	case parser.EffectActivation:
		return Activation
	case parser.EffectInhibition:
		return Inhibition
	default:
		return Unknown
	}
}

// FromRegulationStrings builds a RegulatoryGraph over the given variable
// names and adds every line in lines as a regulation, stopping at the
// first error.
func FromRegulationStrings(names []string, lines []string) (*RegulatoryGraph, error) {
	g, err := NewRegulatoryGraph(names)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if err := g.AddRegulationString(line); err != nil {
			return nil, err
		}
	}
	return g, nil
}
