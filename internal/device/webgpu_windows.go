//go:build windows

package device

import (
	"fmt"

	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/pkg/errors"
)

// probeWebGPUAdapters requests the default adapter and returns its name.
func probeWebGPUAdapters() (names []string, err error) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			names = nil
			err = errors.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		return nil, nil
	}
	defer adapter.Release()

	info := adapter.GetInfo()
	return []string{fmt.Sprintf("%v (%v)", info.Device, info.Vendor)}, nil
}
