// Copyright 2026 The Haplotype Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the numeric array values exchanged with the
// prediction pipeline and their on-disk format.
//
// # Basic Usage
//
//	import (
//	    "github.com/bedict/haplotype/device"
//	    "github.com/bedict/haplotype/tensor"
//	)
//
//	func main() {
//	    target := device.Select(device.DefaultRuntime(), true, 0)
//
//	    scores, _ := tensor.FromSlice([]float32{0.1, 0.9}, tensor.Shape{2}, target)
//	    _ = tensor.Dump(scores, "scores.hapt")
//
//	    // Load onto the CPU regardless of where it was saved from.
//	    back, _ := tensor.Load("scores.hapt", device.CPU())
//	    _ = back.AsFloat32()
//	}
//
// # Supported Data Types
//
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers, one-hot encoded bases)
//   - bool (boolean masks)
package tensor
