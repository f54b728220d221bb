// Package device describes where numeric data lives and which accelerator
// runtime, if any, the process can reach.
//
// A Target is a plain value: computations receive it explicitly instead of
// querying ambient runtime state, so device selection is testable without an
// accelerator present.
package device

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies the class of compute device.
type Kind int

// Supported device kinds.
const (
	KindCPU Kind = iota
	KindAccelerator
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindCPU:
		return "cpu"
	case KindAccelerator:
		return "accelerator"
	default:
		return "unknown"
	}
}

// Target is a compute target: the CPU or the accelerator at Index.
type Target struct {
	Kind  Kind
	Index int
}

// CPU returns the CPU target.
func CPU() Target {
	return Target{Kind: KindCPU}
}

// Accelerator returns the accelerator target at index.
// The index is not checked against the devices present.
func Accelerator(index int) Target {
	return Target{Kind: KindAccelerator, Index: index}
}

// IsAccelerator reports whether t names an accelerator.
func (t Target) IsAccelerator() bool {
	return t.Kind == KindAccelerator
}

// String renders t as "cpu" or "accelerator:N".
func (t Target) String() string {
	if t.Kind == KindAccelerator {
		return fmt.Sprintf("%s:%d", KindAccelerator, t.Index)
	}
	return KindCPU.String()
}

// ParseTarget is the inverse of Target.String.
func ParseTarget(s string) (Target, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == KindCPU.String() {
		return CPU(), nil
	}

	name, idx, found := strings.Cut(s, ":")
	if name != KindAccelerator.String() {
		return Target{}, errors.Errorf("unknown device %q", s)
	}
	if !found {
		return Accelerator(0), nil
	}

	index, err := strconv.Atoi(idx)
	if err != nil || index < 0 {
		return Target{}, errors.Errorf("invalid accelerator index in %q", s)
	}
	return Accelerator(index), nil
}
