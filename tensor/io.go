// Copyright 2026 The Haplotype Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/bedict/haplotype/internal/device"
	"github.com/bedict/haplotype/internal/serialization"
)

// Header is the JSON header of a saved tensor.
type Header = serialization.TensorHeader

// Dump saves t to path, recording the target it was saved from.
func Dump(t *RawTensor, path string) error {
	return serialization.DumpTensor(t, path)
}

// Load reads the tensor at path and places it on target.
//
// Errors from damaged files match serialization.ErrCorruptData; a missing
// file matches fs.ErrNotExist.
func Load(path string, target device.Target) (*RawTensor, error) {
	return serialization.ReadTensor(path, target)
}

// Info reads the header of the tensor at path without loading its data.
func Info(path string) (Header, error) {
	return serialization.ReadTensorInfo(path)
}
