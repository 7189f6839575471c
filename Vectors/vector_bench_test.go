package Vectors

import "testing"

func BenchmarkLockFreeVector_PushBack(b *testing.B) {
	v := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.PushBack(i)
	}
}

func BenchmarkLockFreeVector_Read(b *testing.B) {
	v := New[int]()
	for i := 0; i < 1<<16; i++ {
		_ = v.PushBack(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Read(uint64(i % (1 << 16)))
	}
}

func BenchmarkLockFreeVector_PushBack_Parallel(b *testing.B) {
	v := New[int]()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = v.PushBack(i)
			i++
		}
	})
}
