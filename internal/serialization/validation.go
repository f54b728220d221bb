package serialization

import (
	"fmt"

	"github.com/bedict/haplotype/internal/tensor"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize   = 1024 * 1024             // 1MB - maximum tensor JSON header size
	MaxMetadataSize = 64 * 1024               // 64KB - maximum metadata size
	MaxPayloadSize  = 16 * 1024 * 1024 * 1024 // 16GB - maximum object payload or tensor data
)

// ValidationLevel controls the strictness of validation.
type ValidationLevel int

const (
	// ValidationStrict performs all validation checks (default).
	ValidationStrict ValidationLevel = iota
	// ValidationNormal checks dtype and shape only.
	ValidationNormal
	// ValidationNone skips header validation (trusted input only).
	ValidationNone
)

// ValidateTensorHeader checks a tensor header against the size of the data
// section that follows it.
func ValidateTensorHeader(h *TensorHeader, dataSize int64, level ValidationLevel) error {
	if level == ValidationNone {
		return nil
	}

	dtype, ok := tensor.ParseDataType(h.DType)
	if !ok {
		return &ValidationError{
			Type:    "unsupported_dtype",
			Field:   "dtype",
			Details: fmt.Sprintf("%q", h.DType),
		}
	}

	shape := tensor.Shape(h.Shape)
	want, err := shape.ByteSize(dtype.Size())
	if err != nil {
		return &ValidationError{
			Type:    "invalid_shape",
			Field:   "shape",
			Details: err.Error(),
		}
	}

	if _, err := h.SourceTarget(); err != nil {
		return &ValidationError{
			Type:    "invalid_device",
			Field:   "device",
			Details: err.Error(),
		}
	}

	if level != ValidationStrict {
		return nil
	}

	if h.Size != int64(want) {
		return &ValidationError{
			Type:    "size_mismatch",
			Field:   "size",
			Details: fmt.Sprintf("header says %d bytes, shape %v of %s needs %d", h.Size, h.Shape, dtype, want),
		}
	}
	if h.Size != dataSize {
		return &ValidationError{
			Type:    "out_of_bounds",
			Field:   "size",
			Details: fmt.Sprintf("header says %d bytes, data section has %d", h.Size, dataSize),
		}
	}

	metaSize := 0
	for k, v := range h.Metadata {
		metaSize += len(k) + len(v)
	}
	if metaSize > MaxMetadataSize {
		return &ValidationError{
			Type:    "metadata_too_large",
			Field:   "metadata",
			Details: fmt.Sprintf("%d bytes, max %d", metaSize, MaxMetadataSize),
		}
	}

	return nil
}
