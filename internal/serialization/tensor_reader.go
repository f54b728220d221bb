package serialization

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"
	"os"

	"github.com/bedict/haplotype/internal/device"
	"github.com/bedict/haplotype/internal/tensor"
	"github.com/pkg/errors"
)

// ReaderOptions configures tensor reading.
type ReaderOptions struct {
	SkipChecksumValidation bool            // Skip checksum validation (faster but less safe)
	ValidationLevel        ValidationLevel // Validation strictness level

	// Tracker, when set, is charged with the tensor's bytes if it is
	// placed on an accelerator.
	Tracker *device.Tracker
}

// ReadTensor reads the tensor stored at path and places it on target with
// strict validation.
func ReadTensor(path string, target device.Target) (*tensor.RawTensor, error) {
	return ReadTensorWithOptions(path, target, ReaderOptions{ValidationLevel: ValidationStrict})
}

// ReadTensorWithOptions reads the tensor stored at path and places it on
// target.
func ReadTensorWithOptions(path string, target device.Target, opts ReaderOptions) (*tensor.RawTensor, error) {
	//nolint:gosec // G304: File path comes from the caller, which is expected for tensor loading
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	raw, _, err := ReadTensorFrom(bufio.NewReader(file), target, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read tensor from %s", path)
	}
	return raw, nil
}

// ReadTensorInfo returns the header of the tensor file at path without
// loading its data.
func ReadTensorInfo(path string) (TensorHeader, error) {
	//nolint:gosec // G304: File path comes from the caller
	file, err := os.Open(path)
	if err != nil {
		return TensorHeader{}, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	header, _, err := readTensorHeader(bufio.NewReader(file))
	if err != nil {
		return TensorHeader{}, errors.Wrapf(err, "failed to read header of %s", path)
	}
	return header, nil
}

type tensorPreamble struct {
	dataSize uint64
	checksum [32]byte
}

// readTensorHeader consumes the fixed header, the JSON header and the
// alignment padding, leaving r positioned at the tensor data.
func readTensorHeader(r io.Reader) (TensorHeader, tensorPreamble, error) {
	var pre tensorPreamble

	fixed := make([]byte, TensorHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return TensorHeader{}, pre, readErr(err, "failed to read fixed header")
	}
	if string(fixed[0:4]) != TensorMagic {
		return TensorHeader{}, pre, corrupt(ErrInvalidMagic)
	}
	if version := binary.LittleEndian.Uint32(fixed[4:8]); version != FormatVersion {
		return TensorHeader{}, pre, corrupt(errors.Wrapf(ErrUnsupportedVersion, "got %d, expected %d", version, FormatVersion))
	}

	headerSize := binary.LittleEndian.Uint64(fixed[16:24])
	pre.dataSize = binary.LittleEndian.Uint64(fixed[24:32])
	copy(pre.checksum[:], fixed[tensorChecksumOff:tensorChecksumOff+ChecksumSize])

	if headerSize > MaxHeaderSize {
		return TensorHeader{}, pre, corrupt(ErrHeaderTooLarge)
	}
	if pre.dataSize > MaxPayloadSize {
		return TensorHeader{}, pre, corruptf("data size %d exceeds maximum", pre.dataSize)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return TensorHeader{}, pre, readErr(err, "failed to read header JSON")
	}

	var header TensorHeader
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return TensorHeader{}, pre, corrupt(errors.Wrap(err, "failed to parse header JSON"))
	}

	pos := int64(TensorHeaderSize) + int64(headerSize)
	if padding := alignedOffset(pos) - pos; padding > 0 {
		if _, err := io.CopyN(io.Discard, r, padding); err != nil {
			return TensorHeader{}, pre, readErr(err, "failed to skip padding")
		}
	}

	return header, pre, nil
}

// ReadTensorFrom reads a tensor file from r and places the tensor on target.
// It returns the header as written.
func ReadTensorFrom(r io.Reader, target device.Target, opts ReaderOptions) (*tensor.RawTensor, TensorHeader, error) {
	header, pre, err := readTensorHeader(r)
	if err != nil {
		return nil, TensorHeader{}, err
	}

	if err := ValidateTensorHeader(&header, int64(pre.dataSize), opts.ValidationLevel); err != nil {
		return nil, TensorHeader{}, corrupt(errors.Wrap(err, "validation failed"))
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, int64(pre.dataSize)))
	if err != nil {
		return nil, TensorHeader{}, errors.Wrap(err, "failed to read tensor data")
	}
	if uint64(n) != pre.dataSize {
		return nil, TensorHeader{}, corrupt(errors.Wrapf(ErrTruncated, "read %d of %d data bytes", n, pre.dataSize))
	}
	data := buf.Bytes()

	if !opts.SkipChecksumValidation {
		if err := ValidateChecksum(ComputeChecksum(data), pre.checksum); err != nil {
			return nil, TensorHeader{}, corrupt(err)
		}
	}

	dtype, ok := tensor.ParseDataType(header.DType)
	if !ok {
		return nil, TensorHeader{}, corruptf("unsupported dtype: %s", header.DType)
	}

	shape := tensor.Shape(header.Shape)
	need, err := shape.ByteSize(dtype.Size())
	if err != nil {
		return nil, TensorHeader{}, corrupt(err)
	}
	if len(data) < need {
		return nil, TensorHeader{}, corrupt(errors.Wrapf(ErrTruncated, "have %d bytes, tensor needs %d", len(data), need))
	}

	raw, err := tensor.NewRaw(shape, dtype, target)
	if err != nil {
		return nil, TensorHeader{}, corrupt(err)
	}
	copy(raw.Data(), data)

	if opts.Tracker != nil && target.IsAccelerator() {
		opts.Tracker.Allocate(uint64(raw.ByteSize()))
	}

	return raw, header, nil
}

// readErr classifies a read failure: running out of bytes means the data is
// truncated, anything else is an I/O failure.
func readErr(err error, msg string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return corrupt(errors.Wrap(ErrTruncated, msg))
	}
	return errors.Wrap(err, msg)
}
