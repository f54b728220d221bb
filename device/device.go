// Copyright 2026 The Haplotype Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package device selects where tensors live and reports on the
// accelerators available.
//
// Example:
//
//	rt := device.DefaultRuntime()
//	target := device.Select(rt, true, 0) // CPU if no accelerator
//	_ = device.Report(os.Stdout, rt)
package device

import (
	"io"

	"github.com/bedict/haplotype/internal/device"
)

// Target identifies the CPU or one accelerator.
type Target = device.Target

// Runtime is the capability interface of an accelerator runtime.
type Runtime = device.Runtime

// MemoryStats represents accelerator memory usage in bytes.
type MemoryStats = device.MemoryStats

// Tracker accounts for memory placed on one accelerator.
type Tracker = device.Tracker

// NoRuntime is a Runtime with no accelerators.
type NoRuntime = device.NoRuntime

// ErrNoSuchDevice is returned for an accelerator index the runtime does not
// know.
var ErrNoSuchDevice = device.ErrNoSuchDevice

// CPU returns the CPU target.
func CPU() Target { return device.CPU() }

// Accelerator returns the target for accelerator index.
func Accelerator(index int) Target { return device.Accelerator(index) }

// ParseTarget parses "cpu", "accelerator" or "accelerator:N".
func ParseTarget(s string) (Target, error) { return device.ParseTarget(s) }

// Select returns the accelerator at index when useAccelerator is set and rt
// has one available, and the CPU otherwise.
func Select(rt Runtime, useAccelerator bool, index int) Target {
	return device.Select(rt, useAccelerator, index)
}

// DefaultRuntime returns the best runtime reachable on this host.
func DefaultRuntime() Runtime { return device.DefaultRuntime() }

// NewTracker creates a memory tracker for a device of the given capacity.
func NewTracker(total uint64) *Tracker { return device.NewTracker(total) }

// Report writes the available accelerators and their memory statistics to w.
func Report(w io.Writer, rt Runtime) error { return device.Report(w, rt) }
