// Package host models the execution-advance effect: a host that can run the
// next N steps after the cell displaying the controls.
package host

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// AllKeyword is the textual form of an unbounded count.
const AllKeyword = "all"

// ErrInvalidCount is returned when parsing a malformed step count.
var ErrInvalidCount = errors.New("host: invalid step count")

// Count is the number of steps to advance. Unbounded means every remaining
// step; N is ignored in that case.
type Count struct {
	N         int
	Unbounded bool
}

// Steps returns a finite count. Negative values are treated as zero.
func Steps(n int) Count {
	if n < 0 {
		n = 0
	}
	return Count{N: n}
}

// Unbounded is the sentinel count advancing indefinitely.
func Unbounded() Count {
	return Count{Unbounded: true}
}

// IsZero reports whether advancing by c is a no-op.
func (c Count) IsZero() bool {
	return !c.Unbounded && c.N <= 0
}

func (c Count) String() string {
	if c.Unbounded {
		return AllKeyword
	}
	return strconv.Itoa(c.N)
}

// ParseCount accepts "all" or a non-negative integer.
func ParseCount(raw string) (Count, error) {
	trimmed := strings.TrimSpace(strings.ToLower(raw))
	if trimmed == "" {
		return Count{}, nil
	}
	if trimmed == AllKeyword {
		return Unbounded(), nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 {
		return Count{}, fmt.Errorf("%w: %q", ErrInvalidCount, raw)
	}
	return Steps(n), nil
}

// Advancer is the host effect that advances execution.
type Advancer interface {
	Advance(ctx context.Context, count Count) error
}

// AdvancerFunc adapts a function into an Advancer.
type AdvancerFunc func(ctx context.Context, count Count) error

// Advance calls fn.
func (fn AdvancerFunc) Advance(ctx context.Context, count Count) error {
	return fn(ctx, count)
}
