// Package trace is the bookkeeping layer shared by both Kruskal trace
// builders.
//
// A Cursor is an immutable hierarchical position rendered as "M", "M.m" or
// "M.m.h" (top-level step, phase, hop). Builders advance it explicitly and
// pass it along, so no counter is shared between engine calls.
//
// A Sequencer owns the running snapshot of one trace: edge statuses, the
// accepted edge list, the running weight and the edge under consideration.
// Emit freezes that snapshot, together with an engine-specific Draft, into a
// new core.Step that shares no memory with the sequencer or any other step.
package trace
