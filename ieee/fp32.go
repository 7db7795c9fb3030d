// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee

import "math"

// Native float32 and float64 values already use the binary32 and binary64
// layouts, so these conversions are bit-for-bit reinterpretations.

// Decode32 returns the float32 with the binary32 bit pattern b.
func Decode32(b uint32) float32 {
	return math.Float32frombits(b)
}

// Encode32 returns the binary32 bit pattern of f.
func Encode32(f float32) uint32 {
	return math.Float32bits(f)
}

// Decode64 returns the float64 with the binary64 bit pattern b.
func Decode64(b uint64) float64 {
	return math.Float64frombits(b)
}

// Encode64 returns the binary64 bit pattern of f.
func Encode64(f float64) uint64 {
	return math.Float64bits(f)
}
