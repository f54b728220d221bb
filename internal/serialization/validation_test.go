package serialization

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validHeader() TensorHeader {
	return TensorHeader{
		FormatVersion: FormatVersion,
		Device:        "cpu",
		DType:         "float32",
		Shape:         []int{2, 3},
		Size:          24,
	}
}

// TestValidateTensorHeader verifies header checks per validation level.
func TestValidateTensorHeader(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(h *TensorHeader)
		dataSize int64
		level    ValidationLevel
		errType  string
	}{
		{"valid", func(*TensorHeader) {}, 24, ValidationStrict, ""},
		{"unknown dtype", func(h *TensorHeader) { h.DType = "complex128" }, 24, ValidationNormal, "unsupported_dtype"},
		{"negative dim", func(h *TensorHeader) { h.Shape = []int{-1, 3} }, 24, ValidationNormal, "invalid_shape"},
		{"element count overflow", func(h *TensorHeader) { h.Shape = []int{math.MaxInt/2 + 1, 2}; h.Size = 0 }, 0, ValidationStrict, "invalid_shape"},
		{"byte size overflow", func(h *TensorHeader) { h.Shape = []int{math.MaxInt / 2} }, 0, ValidationNormal, "invalid_shape"},
		{"bad device", func(h *TensorHeader) { h.Device = "tpu" }, 24, ValidationNormal, "invalid_device"},
		{"size vs shape", func(h *TensorHeader) { h.Size = 20 }, 20, ValidationStrict, "size_mismatch"},
		{"size vs data", func(*TensorHeader) {}, 16, ValidationStrict, "out_of_bounds"},
		{"size ignored when normal", func(h *TensorHeader) { h.Size = 20 }, 16, ValidationNormal, ""},
		{"none skips everything", func(h *TensorHeader) { h.DType = "?" }, 0, ValidationNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := validHeader()
			tt.mutate(&h)
			err := ValidateTensorHeader(&h, tt.dataSize, tt.level)
			if tt.errType == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.errType, verr.Type)
		})
	}
}

// TestValidateMetadataSize verifies the metadata limit.
func TestValidateMetadataSize(t *testing.T) {
	h := validHeader()
	h.Metadata = map[string]string{"blob": string(make([]byte, MaxMetadataSize+1))}

	err := ValidateTensorHeader(&h, 24, ValidationStrict)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "metadata_too_large", verr.Type)
	assert.Contains(t, verr.Error(), `field "metadata"`)
}

// TestCorruptError verifies wrapping and matching of corruption errors.
func TestCorruptError(t *testing.T) {
	err := corrupt(ErrChecksumMismatch)
	assert.True(t, errors.Is(err, ErrCorruptData))
	assert.True(t, errors.Is(err, ErrChecksumMismatch))
	assert.Equal(t, "corrupt data: checksum mismatch: file may be corrupted", err.Error())

	wrapped := errors.Wrap(err, "failed to read")
	assert.True(t, errors.Is(wrapped, ErrCorruptData))
	assert.False(t, errors.Is(ErrChecksumMismatch, ErrCorruptData))
}

// TestValidateChecksum verifies checksum comparison.
func TestValidateChecksum(t *testing.T) {
	sum := ComputeChecksum([]byte("ACGT"))
	assert.NoError(t, ValidateChecksum(sum, sum))
	assert.True(t, errors.Is(ValidateChecksum(sum, ComputeChecksum([]byte("ACGA"))), ErrChecksumMismatch))
}
