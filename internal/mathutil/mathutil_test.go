package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordsFor(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n, words, bytes int
	}{
		{0, 0, 0},
		{-3, 0, 0},
		{1, 1, 1},
		{5, 1, 1},
		{8, 1, 1},
		{9, 1, 2},
		{64, 1, 8},
		{65, 2, 9},
		{200, 4, 25},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.words, WordsFor(test.n))
			a.Equal(test.bytes, BytesFor(test.n))
		})
	}
}

func TestLowMask(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(0), LowMask(0))
	a.Equal(uint64(0), LowMask(-1))
	a.Equal(uint64(0x1f), LowMask(5))
	a.Equal(uint64(0x7fffffffffffffff), LowMask(63))
	a.Equal(uint64(math.MaxUint64), LowMask(64))
	a.Equal(uint64(math.MaxUint64), LowMask(100))
}

func TestBias(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		expBits   int
		bias      int64
		maxBiased int64
	}{
		{5, 15, 31},
		{8, 127, 255},
		{11, 1023, 2047},
		{15, 16383, 32767},
		{16, 32767, 65535},
		{62, 1<<61 - 1, 1<<62 - 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.bias, Bias(test.expBits))
			a.Equal(test.maxBiased, MaxBiased(test.expBits))
		})
	}
}

func TestBinaryDigits(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, BinaryDigits(0))
	a.Equal(1, BinaryDigits(1))
	a.Equal(11, BinaryDigits(1024))
	a.Equal(64, BinaryDigits(math.MaxUint64))
}

func TestClamp(t *testing.T) {
	a := assert.New(t)
	a.Equal(5, Clamp(5, -10, 10))
	a.Equal(-10, Clamp(-1<<40, -10, 10))
	a.Equal(10, Clamp(1<<40, -10, 10))
	a.Equal(-1, Uint64Cmp(1, 2))
	a.Equal(0, Uint64Cmp(2, 2))
	a.Equal(1, Uint64Cmp(3, 2))
}
