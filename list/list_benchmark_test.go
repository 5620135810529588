//go:build bench

package list

import "testing"

func BenchmarkInsertCurrentNext(b *testing.B) {
	l := New[int]()
	for i := 0; i < b.N; i++ {
		l.InsertCurrentNext(i)
	}
}

func BenchmarkAdvanceCursor(b *testing.B) {
	l := New[int]()
	for i := 0; i < 1024; i++ {
		l.InsertBeginning(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.AdvanceCursor()
	}
}

func BenchmarkValues(b *testing.B) {
	l := New[int]()
	for i := 0; i < 1024; i++ {
		l.InsertBeginning(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for v := range l.Values() {
			sum += v
		}
		_ = sum
	}
}
