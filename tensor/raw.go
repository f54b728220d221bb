// Copyright 2026 The Haplotype Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/bedict/haplotype/internal/device"
	"github.com/bedict/haplotype/internal/tensor"
)

// RawTensor is a typed, shaped, row-major buffer placed on a device target.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Target()
//   - Type-safe data access via AsFloat32(), AsInt64(), etc.
//   - Relocation via To(target), which returns an independent copy
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, device.CPU())
//	data := raw.AsFloat32()
//	gpu := raw.To(device.Accelerator(0))
type RawTensor = tensor.RawTensor

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// DataType represents runtime type information for tensors.
type DataType = tensor.DataType

// DType is the constraint for supported element types.
type DType = tensor.DType

// Supported data types.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
	Int32   = tensor.Int32
	Int64   = tensor.Int64
	Uint8   = tensor.Uint8
	Bool    = tensor.Bool
)

// NewRaw creates a zero-filled tensor.
func NewRaw(shape Shape, dtype DataType, target device.Target) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, target)
}

// FromSlice creates a tensor holding a copy of values.
func FromSlice[T DType](values []T, shape Shape, target device.Target) (*RawTensor, error) {
	return tensor.FromSlice(values, shape, target)
}
