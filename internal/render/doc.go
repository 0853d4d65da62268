// Package render lays classified fragments into bordered fixed-width lines
// and orchestrates the full grouped thread report.
// Invariants:
//   - A fragment is never split across physical lines; oversize fragments
//     overflow the box instead (padding clamps at zero).
//   - Emission order is exactly fragment order; rendering is deterministic.
//   - A logical line holds at least one fragment; an empty line is a
//     programming-contract defect and panics.
package render
