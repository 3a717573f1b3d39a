package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 stored as bits in an atomic word
// Zero value reads as 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Store(val float64) { f.bits.Store(math.Float64bits(val)) }

func (f *AtomicFloat) Load() float64 { return math.Float64frombits(f.bits.Load()) }
