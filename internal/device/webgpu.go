package device

// WebGPURuntime exposes WebGPU adapters as accelerators.
//
// WebGPU has no way to enumerate every adapter, so the runtime reports the
// default high-performance adapter only. Adapter capacity is not exposed by
// the API; memory figures come from the per-adapter Tracker.
type WebGPURuntime struct {
	adapters []webgpuAdapter
}

type webgpuAdapter struct {
	name    string
	tracker *Tracker
}

// NewWebGPURuntime probes the system for WebGPU adapters.
// A runtime with no adapters is returned when WebGPU is present but no
// adapter could be acquired; an error is returned when the native library
// is missing.
func NewWebGPURuntime() (*WebGPURuntime, error) {
	names, err := probeWebGPUAdapters()
	if err != nil {
		return nil, err
	}
	return newWebGPURuntime(names...), nil
}

func newWebGPURuntime(names ...string) *WebGPURuntime {
	rt := &WebGPURuntime{adapters: make([]webgpuAdapter, 0, len(names))}
	for _, name := range names {
		rt.adapters = append(rt.adapters, webgpuAdapter{
			name:    name,
			tracker: NewTracker(0),
		})
	}
	return rt
}

// Name returns "webgpu".
func (r *WebGPURuntime) Name() string { return "webgpu" }

// Available reports whether an adapter was acquired.
func (r *WebGPURuntime) Available() bool { return len(r.adapters) > 0 }

// DeviceCount returns the number of acquired adapters.
func (r *WebGPURuntime) DeviceCount() int { return len(r.adapters) }

// DeviceName returns the adapter description.
func (r *WebGPURuntime) DeviceName(index int) (string, error) {
	if err := checkIndex(index, len(r.adapters)); err != nil {
		return "", err
	}
	return r.adapters[index].name, nil
}

// MemoryStats returns the tracked usage of the adapter.
func (r *WebGPURuntime) MemoryStats(index int) (MemoryStats, error) {
	if err := checkIndex(index, len(r.adapters)); err != nil {
		return MemoryStats{}, err
	}
	return r.adapters[index].tracker.Stats(), nil
}

// Tracker returns the memory tracker of the adapter, so loaders can account
// for data they place on it.
func (r *WebGPURuntime) Tracker(index int) (*Tracker, error) {
	if err := checkIndex(index, len(r.adapters)); err != nil {
		return nil, err
	}
	return r.adapters[index].tracker, nil
}
