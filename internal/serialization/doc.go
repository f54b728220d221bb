// Package serialization persists values produced by the prediction pipeline.
//
// Two file kinds are supported.
//
// Object files hold any gob-encodable Go value:
//
//	[4 bytes: Magic "HAPO"]
//	[4 bytes: Version (uint32 LE)]
//	[4 bytes: Flags (uint32 LE)]
//	[4 bytes: Reserved]
//	[8 bytes: Payload size (uint64 LE)]
//	[32 bytes: SHA-256 of payload]
//	[Payload: gob stream, snappy block-compressed when FlagCompressed is set]
//
// Tensor files hold a single RawTensor together with the device it was
// written from:
//
//	[4 bytes: Magic "HAPT"]
//	[4 bytes: Version (uint32 LE)]
//	[4 bytes: Flags (uint32 LE)]
//	[4 bytes: Reserved]
//	[8 bytes: Header size (uint64 LE)]
//	[8 bytes: Data size (uint64 LE)]
//	[32 bytes: SHA-256 of data]
//	[Header: JSON TensorHeader]
//	[Padding to 64-byte alignment]
//	[Tensor data: raw little-endian bytes]
//
// Reading a tensor relocates it onto the caller's target regardless of the
// device recorded at write time.
//
// Failures to open or read a file are returned as-is (wrapped), so
// errors.Is(err, fs.ErrNotExist) holds for missing files. Anything wrong with
// the bytes themselves matches ErrCorruptData.
//
// Example usage:
//
//	if err := serialization.Dump(vocab, "vocab.bin"); err != nil {
//	    return err
//	}
//	vocab, err := serialization.ReadAs[map[string]int]("vocab.bin")
//
//	if err := serialization.DumpTensor(weights, "weights.hapt"); err != nil {
//	    return err
//	}
//	weights, err := serialization.ReadTensor("weights.hapt", device.Accelerator(0))
package serialization
