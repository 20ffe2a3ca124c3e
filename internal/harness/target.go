package harness

import (
	"fmt"
	"strings"
)

// Target is a benchmark category the user can select.
type Target int

const (
	// TargetAll runs every benchmark in the suite (no filter).
	TargetAll Target = iota
	// TargetQuick runs a narrow fast-feedback subset on the short job.
	TargetQuick
	TargetRingBuffer
	TargetDeque
	TargetPriorityQueue
	TargetOrderedSet
)

var targetNames = map[Target]string{
	TargetAll:           "all",
	TargetQuick:         "quick",
	TargetRingBuffer:    "ringbuffer",
	TargetDeque:         "deque",
	TargetPriorityQueue: "priorityqueue",
	TargetOrderedSet:    "orderedset",
}

func (t Target) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Target(%d)", int(t))
}

// ParseTarget converts a user-supplied target name into a Target.
func ParseTarget(s string) (Target, error) {
	for t, name := range targetNames {
		if name == strings.ToLower(strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return TargetAll, fmt.Errorf("unknown target %q (valid: %s)", s, strings.Join(TargetNames(), ", "))
}

// Targets returns every target in listing order.
func Targets() []Target {
	return []Target{
		TargetAll,
		TargetQuick,
		TargetRingBuffer,
		TargetDeque,
		TargetPriorityQueue,
		TargetOrderedSet,
	}
}

// TargetNames returns the valid target names in listing order.
func TargetNames() []string {
	var names []string
	for _, t := range Targets() {
		names = append(names, t.String())
	}
	return names
}

// FilterGlob returns the method-name glob a target implies, or "" when the
// target selects everything. TargetQuick additionally implies the short job;
// see Resolve.
func (t Target) FilterGlob() string {
	switch t {
	case TargetAll:
		return ""
	case TargetQuick:
		return "*Add*"
	case TargetRingBuffer:
		return "*RingBufferBenchmarks*"
	case TargetDeque:
		return "*DequeBenchmarks*"
	case TargetPriorityQueue:
		return "*PriorityQueueBenchmarks*"
	case TargetOrderedSet:
		return "*OrderedSetBenchmarks*"
	}
	return ""
}
