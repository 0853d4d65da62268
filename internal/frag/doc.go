// Package frag defines the classified text fragments the report renderer lays out.
// Invariants:
//   - Fragment.Text is atomic: layout never splits it across physical lines.
//   - Kind is purely descriptive; layout decisions never branch on it.
//   - A Line is one semantic row of the report before wrapping.
package frag
