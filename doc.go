// Package tui provides a declarative terminal UI toolkit built around
// rebuild-every-frame view trees with stable widget identity.
//
// An application describes its interface as a tree of horizontal and
// vertical stacks with widget leaves, rebuilt from scratch on every
// input event. Leaves carrying a Tag keep their mutable state (cursor
// position, edited text) across rebuilds: a per-frame reconciliation
// pass matches tags against the previous frame and resolves each
// tagged leaf to its persistent state.
//
// The package owns layout (fixed and flexible main-axis sizing),
// identity reconciliation, focus order, input routing, and the
// synchronous event loop. Terminal access goes through the Terminal
// and EventReader interfaces; ANSI implementations for Unix and
// Windows are included, along with mock implementations for tests.
package tui
