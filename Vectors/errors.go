package Vectors

// EmptyVectorError indicates PopBack was called on a vector whose
// observed size was zero.
type EmptyVectorError struct{}

func (e *EmptyVectorError) Error() string {
	return "Vector is Empty: cannot PopBack."
}

// CapacityExceededError indicates PushBack would require a bucket
// beyond MaxBuckets.
type CapacityExceededError struct{}

func (e *CapacityExceededError) Error() string {
	return "Vector capacity exhausted: cannot PushBack."
}
