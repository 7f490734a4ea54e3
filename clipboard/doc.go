// Package clipboard abstracts the operating-system clipboard as an
// injectable capability.
//
// The Service interface is deliberately narrow: one best-effort image read.
// Production code uses System, which talks to the real OS clipboard; tests
// substitute a fake that returns a fixed image or nothing.
//
// The clipboard is owned by the operating environment and may change
// between or during calls from unrelated processes. Reads are snapshots
// with no consistency guarantee.
package clipboard
