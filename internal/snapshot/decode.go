package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"fortio.org/safecast"
)

// ErrNoThreads reports a snapshot without a single captured thread.
var ErrNoThreads = errors.New("snapshot contains no threads")

// threadWire is the on-disk thread shape; lock counts arrive as plain JSON
// integers and are range-checked during conversion.
type threadWire struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	LockCount int64      `json:"lock_count"`
	Exception *Exception `json:"exception"`
	Frames    []Frame    `json:"frames"`
	RawFrames []string   `json:"raw_frames"`
}

type snapshotWire struct {
	Process Process      `json:"process"`
	Threads []threadWire `json:"threads"`
}

// Decode reads a collector snapshot from r and sanitizes its free-form text.
func Decode(r io.Reader) (*Snapshot, error) {
	var wire snapshotWire
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if len(wire.Threads) == 0 {
		return nil, ErrNoThreads
	}

	snap := &Snapshot{
		Process: wire.Process,
		Threads: make([]Thread, 0, len(wire.Threads)),
	}
	for _, tw := range wire.Threads {
		lockCount, err := safecast.Conv[uint32](tw.LockCount)
		if err != nil {
			return nil, fmt.Errorf("thread %d: invalid lock count %d: %w", tw.ID, tw.LockCount, err)
		}
		th := Thread{
			ID:        tw.ID,
			Name:      sanitize(tw.Name),
			LockCount: lockCount,
			Frames:    tw.Frames,
		}
		if tw.Exception != nil {
			th.Exception = &Exception{
				TypeName: sanitize(tw.Exception.TypeName),
				Message:  sanitize(tw.Exception.Message),
			}
		}
		for _, raw := range tw.RawFrames {
			// пустые raw-кадры отбрасываются: рендерер требует непустые строки
			if s := sanitize(raw); s != "" {
				th.RawFrames = append(th.RawFrames, s)
			}
		}
		snap.Threads = append(snap.Threads, th)
	}
	return snap, nil
}

// Load reads and decodes the snapshot file at path.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	snap, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}
