// Package scan splits qualified names and argument lists into classified pieces.
// Invariants:
//   - Concatenating the Text of all pieces reconstructs the input exactly.
//   - Each separator character ('.', '<', '>', ',') is its own one-byte piece.
//   - Scanning is total: no input is an error.
package scan
