package topo

import (
	"strconv"
	"strings"

	"github.com/hupe1980/parsekit/internal/errs"
)

// ErrCycle is matched by every CycleError.
var ErrCycle = errs.ErrCycle

// CycleError reports the nodes of a dependency cycle in path order: each
// node depends on the next and the last depends on the first.
type CycleError struct {
	Cycle []uint32
}

func (e *CycleError) Error() string {
	var sb strings.Builder
	sb.WriteString("topo: dependency cycle: ")
	for _, n := range e.Cycle {
		sb.WriteString(strconv.FormatUint(uint64(n), 10))
		sb.WriteString(" -> ")
	}
	if len(e.Cycle) > 0 {
		sb.WriteString(strconv.FormatUint(uint64(e.Cycle[0]), 10))
	}
	return sb.String()
}

// Unwrap returns ErrCycle.
func (e *CycleError) Unwrap() error {
	return ErrCycle
}
