package Vectors

// Read returns the value currently stored at i. The caller must ensure
// i < Size(). An index whose bucket is not allocated dereferences a nil
// bucket and panics; an index past Size() inside an allocated bucket
// returns whatever that slot holds (the zero value if it is empty).
func (v *LockFreeVector[T]) Read(i uint64) T {
	bucket, offset := decompose(i)
	blk := v.bucketAt(bucket)
	p := (*blk)[offset].Load()
	var val T
	if p != nil {
		val = *p
	}
	return val
}

// Write installs val at i, bypassing the descriptor entirely. Like Read,
// it does not coordinate with a concurrent PushBack/PopBack touching the
// same slot and does not linearize against them. The caller must ensure
// i < Size().
func (v *LockFreeVector[T]) Write(i uint64, val T) {
	bucket, offset := decompose(i)
	blk := v.bucketAt(bucket)
	boxed := new(T)
	*boxed = val
	(*blk)[offset].Store(boxed)
}
