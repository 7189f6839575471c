package Vectors

import (
	"math/bits"
	"sync/atomic"
)

const (
	// FirstBucketSize is the length of bucket 0, in elements. Must be a power of two.
	FirstBucketSize = 8
	// MaxBuckets bounds the bucket array; total capacity is FirstBucketSize*(2^MaxBuckets-1).
	MaxBuckets = 32

	log2FirstBucket = 3 // log2(FirstBucketSize); FirstBucketSize must stay a power of two for this to hold
)

// decompose maps a zero-based logical index to (bucket, offset). Bucket b
// holds FirstBucketSize<<b elements, so adding FirstBucketSize to i and
// taking the position of the most significant set bit recovers which
// bucket i falls in: that bit position, less log2(FirstBucketSize), is the
// bucket number, and clearing that leading bit leaves the offset within it.
func decompose(i uint64) (bucket, offset uint64) {
	p := i + FirstBucketSize
	h := uint64(bits.Len64(p)) - 1
	bucket = h - log2FirstBucket
	offset = p &^ (1 << h)
	return
}

// ensureBucket returns buckets[b], allocating and installing it if absent.
// A losing allocation is simply dropped for the garbage collector to
// reclaim; no explicit free is needed on the losing side of the race.
func (v *LockFreeVector[T]) ensureBucket(b uint64) *[]atomic.Pointer[T] {
	if p := v.buckets[b].Load(); p != nil {
		return p
	}
	blk := make([]atomic.Pointer[T], FirstBucketSize<<b)
	v.buckets[b].CompareAndSwap(nil, &blk)
	return v.buckets[b].Load()
}

// bucketAt returns buckets[b] assuming the caller's invariant (i < Size())
// guarantees it is already allocated. Violating that contract dereferences
// a nil bucket and panics.
func (v *LockFreeVector[T]) bucketAt(b uint64) *[]atomic.Pointer[T] {
	return v.buckets[b].Load()
}
