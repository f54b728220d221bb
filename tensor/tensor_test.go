package tensor_test

import (
	"path/filepath"
	"testing"

	"github.com/bedict/haplotype/device"
	"github.com/bedict/haplotype/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpLoad(t *testing.T) {
	scores, err := tensor.FromSlice([]float32{0.1, 0.9, 0.4, 0.6}, tensor.Shape{2, 2}, device.Accelerator(0))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scores.hapt")
	require.NoError(t, tensor.Dump(scores, path))

	info, err := tensor.Info(path)
	require.NoError(t, err)
	assert.Equal(t, "accelerator:0", info.Device)

	back, err := tensor.Load(path, device.CPU())
	require.NoError(t, err)
	assert.Equal(t, device.CPU(), back.Target())
	assert.Equal(t, scores.AsFloat32(), back.AsFloat32())
	assert.Equal(t, tensor.Float32, back.DType())
}
