// Package builder produces deterministic core.Graph fixtures for the editor: the bundled
// sample graph and large generated graphs laid out on a grid.
//
// Components:
//
//   - BuildGraph(bopts, cons...): resolves BuilderOption values into a builderConfig,
//     runs each Constructor against a draft and validates the result with core.NewGraph.
//   - Constructors:
//     - SampleGraph():  the fixed demo graph (start1, a1..a7, nine labelled edges).
//     - GridNodes(n):   n titled nodes, RowLength per row, Spacing pixels apart.
//     - Chain():        one edge between each pair of consecutive draft nodes.
//   - Entry points: Sample() and Generate(n, opts...).
//   - Vertex-ID schemes (IDFn): OrdinalIDFn, DefaultIDFn, ExcelColumnIDFn, HexIDFn.
//
// Determinism: the same options, seed and constructor order yield identical graphs.
// Stochastic choices (node and edge types) draw from cfg.rng only; a pool with more
// than one type and no WithSeed/WithRand fails with ErrNeedRandSource.
//
// Option constructors panic on meaningless input (nil functions, empty type pools,
// non-positive sizes). Constructors never panic; they return wrapped sentinels.
package builder
