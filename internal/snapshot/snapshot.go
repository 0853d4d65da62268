// Package snapshot models a captured process snapshot: one immutable record
// per thread with its stack frames, lock state, and captured exception.
package snapshot

// Process identifies the inspected process.
type Process struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	CapturedAt string `json:"captured_at"`
}

// Exception is an exception captured on a thread.
type Exception struct {
	TypeName string `json:"type"`
	Message  string `json:"message"`
}

// Frame is one parsed stack frame: a qualified type, a method, and the raw
// argument-list text between the parentheses.
type Frame struct {
	TypeName  string `json:"type"`
	Method    string `json:"method"`
	Arguments string `json:"arguments"`
}

// Thread is one captured thread.
type Thread struct {
	ID        int
	Name      string
	LockCount uint32
	Exception *Exception
	Frames    []Frame
	RawFrames []string
}

// Snapshot is the decoded collector output.
type Snapshot struct {
	Process Process
	Threads []Thread
}
