//go:build !windows

package device

import "github.com/pkg/errors"

// probeWebGPUAdapters reports WebGPU as unavailable; the native bindings are
// only wired up on Windows.
func probeWebGPUAdapters() ([]string, error) {
	return nil, errors.New("webgpu: not supported on this platform")
}
