package serialization

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"io"
	"os"
	"reflect"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// Dump writes v to path, replacing any existing content. v must be
// encodable with encoding/gob.
//
// Reading the file back yields a value equal to v except where gob does not
// keep the distinction: a pointer to a zero value reads back as nil, and
// empty slices and maps read back as nil. Structs with such fields should
// not rely on that difference.
func Dump(v any, path string) (err error) {
	//nolint:gosec // G304: File path comes from the caller
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to close file")
		}
	}()

	w := bufio.NewWriter(file)
	if err := Encode(w, v); err != nil {
		return errors.Wrapf(err, "failed to dump object to %s", path)
	}
	return errors.Wrap(w.Flush(), "failed to flush file")
}

// Read decodes the object stored at path into out, which must be a
// non-nil pointer.
func Read(path string, out any) error {
	//nolint:gosec // G304: File path comes from the caller
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	if err := Decode(bufio.NewReader(file), out); err != nil {
		return errors.Wrapf(err, "failed to read object from %s", path)
	}
	return nil
}

// ReadAs is Read for a value of type T.
func ReadAs[T any](path string) (T, error) {
	var v T
	err := Read(path, &v)
	return v, err
}

// Encode writes v to w as an object envelope.
func Encode(w io.Writer, v any) error {
	var encoded bytes.Buffer
	if err := gob.NewEncoder(&encoded).Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode object")
	}

	payload := snappy.Encode(nil, encoded.Bytes())
	checksum := ComputeChecksum(payload)

	header := make([]byte, ObjectHeaderSize)
	copy(header[0:4], ObjectMagic)
	binary.LittleEndian.PutUint32(header[4:8], FormatVersion)
	binary.LittleEndian.PutUint32(header[8:12], FlagCompressed)
	binary.LittleEndian.PutUint64(header[16:24], uint64(len(payload)))
	copy(header[objectChecksumOff:objectChecksumOff+ChecksumSize], checksum[:])

	if _, err := w.Write(header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	if _, err := w.Write(payload); err != nil {
		return errors.Wrap(err, "failed to write payload")
	}
	return nil
}

// ErrInvalidTarget is returned when the value to decode into is not a
// non-nil pointer.
var ErrInvalidTarget = errors.New("decode target must be a non-nil pointer")

// Decode reads an object envelope from r into out, which must be a non-nil
// pointer.
func Decode(r io.Reader, out any) error {
	if v := reflect.ValueOf(out); v.Kind() != reflect.Pointer || v.IsNil() {
		return errors.Wrapf(ErrInvalidTarget, "got %T", out)
	}

	header := make([]byte, ObjectHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return readErr(err, "failed to read header")
	}
	if string(header[0:4]) != ObjectMagic {
		return corrupt(ErrInvalidMagic)
	}
	if version := binary.LittleEndian.Uint32(header[4:8]); version != FormatVersion {
		return corrupt(errors.Wrapf(ErrUnsupportedVersion, "got %d, expected %d", version, FormatVersion))
	}
	flags := binary.LittleEndian.Uint32(header[8:12])
	size := binary.LittleEndian.Uint64(header[16:24])
	if size > MaxPayloadSize {
		return corruptf("payload size %d exceeds maximum", size)
	}
	var stored [32]byte
	copy(stored[:], header[objectChecksumOff:objectChecksumOff+ChecksumSize])

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, int64(size)))
	if err != nil {
		return errors.Wrap(err, "failed to read payload")
	}
	if uint64(n) != size {
		return corrupt(errors.Wrapf(ErrTruncated, "read %d of %d payload bytes", n, size))
	}
	payload := buf.Bytes()

	if err := ValidateChecksum(ComputeChecksum(payload), stored); err != nil {
		return corrupt(err)
	}

	if flags&FlagCompressed != 0 {
		payload, err = snappy.Decode(nil, payload)
		if err != nil {
			return corrupt(errors.Wrap(err, "failed to decompress payload"))
		}
	}

	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(out); err != nil {
		return corrupt(errors.Wrap(err, "failed to decode object"))
	}
	return nil
}
