// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package network

import (
	"bufio"
	"io"
	"strings"

	"github.com/dalzilio/paranet/parser"
)

// LoadNetwork reads the network description text format: one regulation or
// update function per non-blank line, whitespace-insensitive, no comments. An
// update function line matches `'$' name ':' expression`. Variable names
// are discovered from the order they first appear on a regulation line.
func LoadNetwork(r io.Reader) (*BooleanNetwork, error) {
	var regulationLines, functionLines []string
	var names []string
	seen := map[string]bool{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "$") {
			functionLines = append(functionLines, line)
			continue
		}
		regulationLines = append(regulationLines, line)
		tpl, err := parser.ParseRegulation(line)
		if err != nil {
			return nil, err
		}
		for _, name := range []string{tpl.Source, tpl.Target} {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	g, err := FromRegulationStrings(names, regulationLines)
	if err != nil {
		return nil, err
	}
	bn := NewBooleanNetwork(g)

	for _, line := range functionLines {
		name, expr, err := splitFunctionLine(line)
		if err != nil {
			return nil, err
		}
		if err := bn.AddUpdateFunction(name, expr); err != nil {
			return nil, err
		}
	}
	return bn, nil
}

// splitFunctionLine splits "$name: expression" into its variable name and
// expression text.
func splitFunctionLine(line string) (name, expr string, err error) {
	body := strings.TrimPrefix(line, "$")
	idx := strings.IndexByte(body, ':')
	if idx < 0 {
		return "", "", &ValidationError{Op: "LoadNetwork", Msg: "malformed update function line: " + line}
	}
	return strings.TrimSpace(body[:idx]), strings.TrimSpace(body[idx+1:]), nil
}
