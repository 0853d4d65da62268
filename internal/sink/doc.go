// Package sink abstracts destinations for rendered report text.
// Invariants:
//   - Write returns the display width accounted for the text, in terminal cells.
//   - A rendering pass owns each sink exclusively; sinks are not goroutine-safe.
//   - Multi delivers every call to all children in registration order.
package sink
