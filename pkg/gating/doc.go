// Package gating defines the in-memory model for flow-cytometry gating: a
// forest of classification gates organized into trees, plus the library of
// axis transforms applied to event parameters before gating.
//
// The package is the shared model that file-format codecs, gating engines,
// and report generators build on. It holds no wire format and classifies no
// events itself; instead it exposes observer contracts (GateState and
// GateTreesState) that fire after every mutation so external caches, indexes,
// and UIs can stay synchronized without the model depending on them.
//
// The model is not internally thread-safe. All operations are synchronous
// calls intended for a single goroutine or external synchronization; callers
// choose their own concurrency strategy (one forest per worker, an external
// read-write lock, and so on). The one sanctioned internal parallelism is
// ApplyToParallel, which splits a bulk transform over independent elements.
package gating
