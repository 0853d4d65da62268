// Package analyze groups captured threads by identical call stack and builds
// the report renderer's input.
package analyze

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"stacklens/internal/snapshot"
)

// GroupKind discriminates single-thread groups from aggregated ones.
type GroupKind uint8

const (
	// GroupSingle is a group holding exactly one thread.
	GroupSingle GroupKind = iota
	// GroupAggregated is a group of several threads sharing one call stack.
	GroupAggregated
)

func (k GroupKind) String() string {
	switch k {
	case GroupSingle:
		return "single"
	case GroupAggregated:
		return "aggregated"
	}
	return "unknown"
}

// ThreadInfo is the payload shared by both group variants. For aggregated
// groups it belongs to the representative (first) member.
type ThreadInfo struct {
	LockCount uint32
	Exception *snapshot.Exception
	Frames    []snapshot.Frame
	RawFrames []string
}

// ThreadGroup is one rendered group: discriminant, header, payload.
type ThreadGroup struct {
	Kind   GroupKind
	Header string
	Info   ThreadInfo
}

// ParallelThreads is the grouped, immutable view of a snapshot.
type ParallelThreads struct {
	ThreadCount int
	Groups      []ThreadGroup
}

// Options configures grouping.
type Options struct {
	// Jobs bounds parallel signature computation; <= 0 means GOMAXPROCS.
	Jobs int
}

// Threads groups snap's threads by identical call stack. Groups are ordered
// by descending member count, ties by first appearance in the snapshot.
func Threads(ctx context.Context, snap *snapshot.Snapshot, opts Options) (*ParallelThreads, error) {
	if len(snap.Threads) == 0 {
		return &ParallelThreads{}, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	signatures := make([]string, len(snap.Threads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(snap.Threads)))

	for i := range snap.Threads {
		g.Go(func(i int) func() error {
			return func() error {
				// Проверка отмены
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				// Сохраняем результат (мьютекс не нужен: индекс i уникален)
				signatures[i] = stackSignature(&snap.Threads[i])
				return nil
			}
		}(i))
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to group threads: %w", err)
	}

	// Детерминированная свёртка по готовым сигнатурам
	indexBySig := make(map[string]int, len(snap.Threads))
	var members [][]int
	for i := range snap.Threads {
		gi, ok := indexBySig[signatures[i]]
		if !ok {
			gi = len(members)
			indexBySig[signatures[i]] = gi
			members = append(members, nil)
		}
		members[gi] = append(members[gi], i)
	}

	order := make([]int, len(members))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(members[order[a]]) > len(members[order[b]])
	})

	pt := &ParallelThreads{ThreadCount: len(snap.Threads)}
	for _, gi := range order {
		pt.Groups = append(pt.Groups, newGroup(snap, members[gi]))
	}
	return pt, nil
}

// stackSignature is the canonical key of a thread's call stack.
func stackSignature(th *snapshot.Thread) string {
	var sb strings.Builder
	for _, f := range th.Frames {
		sb.WriteString(f.TypeName)
		sb.WriteByte('.')
		sb.WriteString(f.Method)
		sb.WriteByte('(')
		sb.WriteString(f.Arguments)
		sb.WriteString(")\n")
	}
	return sb.String()
}

// newGroup builds one group; the first member is the representative payload.
func newGroup(snap *snapshot.Snapshot, members []int) ThreadGroup {
	rep := &snap.Threads[members[0]]
	info := ThreadInfo{
		LockCount: rep.LockCount,
		Exception: rep.Exception,
		Frames:    rep.Frames,
		RawFrames: rep.RawFrames,
	}
	if len(members) == 1 {
		return ThreadGroup{Kind: GroupSingle, Header: singleHeader(rep), Info: info}
	}
	return ThreadGroup{
		Kind:   GroupAggregated,
		Header: fmt.Sprintf("%d threads", len(members)),
		Info:   info,
	}
}

// singleHeader names a lone thread by id and, when captured, its name.
func singleHeader(th *snapshot.Thread) string {
	if th.Name != "" {
		return fmt.Sprintf("Thread #%d %s", th.ID, th.Name)
	}
	return fmt.Sprintf("Thread #%d", th.ID)
}
