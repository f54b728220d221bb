package serialization

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"os"

	"github.com/bedict/haplotype/internal/tensor"
	"github.com/pkg/errors"
)

// DumpTensor writes raw to path, replacing any existing file.
// The tensor's current target is recorded in the header.
func DumpTensor(raw *tensor.RawTensor, path string) error {
	return DumpTensorWithMetadata(raw, path, nil)
}

// DumpTensorWithMetadata is DumpTensor with custom string metadata stored in
// the header.
func DumpTensorWithMetadata(raw *tensor.RawTensor, path string, metadata map[string]string) (err error) {
	//nolint:gosec // G304: File path comes from the caller, which is expected for tensor saving
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to close file")
		}
	}()

	return WriteTensor(file, raw, metadata)
}

// WriteTensor writes raw in tensor file format to w.
func WriteTensor(w io.Writer, raw *tensor.RawTensor, metadata map[string]string) error {
	if raw == nil {
		return errors.New("nil tensor")
	}

	header := newTensorHeader(raw, metadata)
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return errors.Wrap(err, "failed to marshal header")
	}
	if len(headerJSON) > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	data := raw.Data()[:raw.ByteSize()]
	checksum := ComputeChecksum(data)

	fixed := make([]byte, TensorHeaderSize)

	// 0x00-0x03: Magic bytes
	copy(fixed[0:4], TensorMagic)

	// 0x04-0x07: Version
	binary.LittleEndian.PutUint32(fixed[4:8], FormatVersion)

	// 0x08-0x0B: Flags
	var flags uint32
	if len(metadata) > 0 {
		flags |= FlagHasMetadata
	}
	binary.LittleEndian.PutUint32(fixed[8:12], flags)

	// 0x0C-0x0F: Reserved (0)

	// 0x10-0x17: Header size
	binary.LittleEndian.PutUint64(fixed[16:24], uint64(len(headerJSON)))

	// 0x18-0x1F: Data size
	binary.LittleEndian.PutUint64(fixed[24:32], uint64(len(data)))

	// 0x20-0x3F: SHA-256 checksum
	copy(fixed[tensorChecksumOff:tensorChecksumOff+ChecksumSize], checksum[:])

	if _, err := w.Write(fixed); err != nil {
		return errors.Wrap(err, "failed to write fixed header")
	}
	if _, err := w.Write(headerJSON); err != nil {
		return errors.Wrap(err, "failed to write header JSON")
	}

	pos := int64(TensorHeaderSize + len(headerJSON))
	if padding := alignedOffset(pos) - pos; padding > 0 {
		if _, err := w.Write(make([]byte, padding)); err != nil {
			return errors.Wrap(err, "failed to write padding")
		}
	}

	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "failed to write tensor data")
	}
	return nil
}
