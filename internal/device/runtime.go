package device

import (
	"github.com/pkg/errors"
)

// ErrNoSuchDevice is returned when an accelerator index does not name a
// device known to the runtime.
var ErrNoSuchDevice = errors.New("no such accelerator device")

// Runtime is the capability interface of an accelerator runtime.
//
// Implementations:
//   - NoRuntime: never available (CPU-only hosts, tests)
//   - WebGPU: adapters reachable through go-webgpu
type Runtime interface {
	// Name identifies the runtime (e.g. "webgpu").
	Name() string

	// Available reports whether at least one accelerator can be used.
	Available() bool

	// DeviceCount returns the number of usable accelerators.
	DeviceCount() int

	// DeviceName returns a descriptive name for accelerator index.
	DeviceName(index int) (string, error)

	// MemoryStats returns memory usage for accelerator index.
	MemoryStats(index int) (MemoryStats, error)
}

// Select returns the accelerator at index when useAccelerator is set and rt
// has an accelerator available, and the CPU otherwise.
//
// The index is deliberately not validated here; an out-of-range index fails
// with ErrNoSuchDevice on first use.
func Select(rt Runtime, useAccelerator bool, index int) Target {
	if useAccelerator && rt != nil && rt.Available() {
		return Accelerator(index)
	}
	return CPU()
}

// NoRuntime is a Runtime with no accelerators.
type NoRuntime struct{}

// Name returns "none".
func (NoRuntime) Name() string { return "none" }

// Available always returns false.
func (NoRuntime) Available() bool { return false }

// DeviceCount always returns 0.
func (NoRuntime) DeviceCount() int { return 0 }

// DeviceName always fails with ErrNoSuchDevice.
func (NoRuntime) DeviceName(index int) (string, error) {
	return "", errors.Wrapf(ErrNoSuchDevice, "index %d", index)
}

// MemoryStats always fails with ErrNoSuchDevice.
func (NoRuntime) MemoryStats(index int) (MemoryStats, error) {
	return MemoryStats{}, errors.Wrapf(ErrNoSuchDevice, "index %d", index)
}

// DefaultRuntime returns the WebGPU runtime when an adapter can be reached
// and NoRuntime otherwise.
func DefaultRuntime() Runtime {
	if rt, err := NewWebGPURuntime(); err == nil && rt.Available() {
		return rt
	}
	return NoRuntime{}
}

// checkIndex validates index against a device count.
func checkIndex(index, count int) error {
	if index < 0 || index >= count {
		return errors.Wrapf(ErrNoSuchDevice, "index %d (have %d)", index, count)
	}
	return nil
}
