package device

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

const gib = 1 << 30

// Report writes a plain-text summary of the accelerators reachable through
// rt: the device count, then name and memory statistics per device.
// The output is diagnostic and not meant to be parsed.
func Report(w io.Writer, rt Runtime) error {
	if rt == nil || !rt.Available() {
		_, err := fmt.Fprintln(w, "no accelerator devices available!!")
		return err
	}

	n := rt.DeviceCount()
	if _, err := fmt.Fprintf(w, "number of accelerators available (%s): %d\n", rt.Name(), n); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		name, err := rt.DeviceName(i)
		if err != nil {
			return errors.Wrapf(err, "failed to get name of %s", Accelerator(i))
		}
		if _, err := fmt.Fprintf(w, "%s, name:%s\n", Accelerator(i), name); err != nil {
			return err
		}

		stats, err := rt.MemoryStats(i)
		if err != nil {
			return errors.Wrapf(err, "failed to get memory stats of %s", Accelerator(i))
		}
		if err := writeMemoryStats(w, stats); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func writeMemoryStats(w io.Writer, s MemoryStats) error {
	lines := []struct {
		label string
		value uint64
	}{
		{"total memory available", s.Total},
		{"total memory allocated on device", s.Allocated},
		{"max memory allocated on device", s.PeakAllocated},
		{"total memory cached on device", s.Cached},
		{"max memory cached on device", s.PeakCached},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s: %s\n", l.label, formatBytes(l.value)); err != nil {
			return err
		}
	}
	return nil
}

// formatBytes renders n as GB with the humanized size alongside.
func formatBytes(n uint64) string {
	return fmt.Sprintf("%.4f GB (%s)", float64(n)/gib, humanize.IBytes(n))
}
