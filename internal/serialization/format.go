package serialization

import (
	"time"

	"github.com/bedict/haplotype/internal/device"
	"github.com/bedict/haplotype/internal/tensor"
)

// Format constants.
const (
	ObjectMagic       = "HAPO"
	TensorMagic       = "HAPT"
	FormatVersion     = 1
	HeaderAlignment   = 64 // Align tensor data to 64 bytes
	ObjectHeaderSize  = 56 // magic + version + flags + reserved + payload size + checksum
	TensorHeaderSize  = 64 // magic + version + flags + reserved + header size + data size + checksum
	ChecksumSize      = 32 // SHA-256 checksum size
	objectChecksumOff = 24 // Checksum offset in the object header
	tensorChecksumOff = 32 // Checksum offset in the tensor header
)

// Flags stored in the fixed header.
const (
	FlagCompressed  uint32 = 1 << 0 // bit 0: payload is snappy-compressed
	FlagHasMetadata uint32 = 1 << 2 // bit 2: custom metadata included
)

// TensorHeader is the JSON header of a tensor file.
type TensorHeader struct {
	FormatVersion int               `json:"format_version"`     // Version of the tensor format
	CreatedAt     time.Time         `json:"created_at"`         // When the file was created
	Device        string            `json:"device"`             // Target the tensor was written from
	DType         string            `json:"dtype"`              // Element type (e.g. "float32")
	Shape         []int             `json:"shape"`              // Tensor shape
	Size          int64             `json:"size"`               // Size of the data section in bytes
	Metadata      map[string]string `json:"metadata,omitempty"` // Custom metadata
}

// SourceTarget parses the recorded device.
func (h TensorHeader) SourceTarget() (device.Target, error) {
	return device.ParseTarget(h.Device)
}

// alignedOffset returns the offset of the data section given the bytes
// written before it.
func alignedOffset(pos int64) int64 {
	return pos + (HeaderAlignment-(pos%HeaderAlignment))%HeaderAlignment
}

func newTensorHeader(raw *tensor.RawTensor, metadata map[string]string) TensorHeader {
	return TensorHeader{
		FormatVersion: FormatVersion,
		CreatedAt:     time.Now().UTC(),
		Device:        raw.Target().String(),
		DType:         raw.DType().String(),
		Shape:         []int(raw.Shape().Clone()),
		Size:          int64(raw.ByteSize()),
		Metadata:      metadata,
	}
}
