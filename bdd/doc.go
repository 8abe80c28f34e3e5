// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package bdd is a Go implementation of Reduced Ordered Binary Decision
// Diagrams (ROBDD), in the style of the BuDDy C library. It keeps a single
// hashmap-based node table ("Hudd" style) instead of offering several
// build-tag-selectable implementations: paranet only ever needs one BDD
// engine, so the alternate BuDDy-style array table and its debug/stats
// instrumentation are not carried over from the library this package is
// adapted from.
//
// A BddVariableSet owns a fixed number of variables, fixed at construction
// time with a VariableSetBuilder. Every Bdd value returned by its methods is
// only valid with respect to the BddVariableSet that produced it.
package bdd
