package ptw

import (
	"fmt"
	"testing"
)

func BenchmarkActivePTWUpdate(b *testing.B) {
	depths := []int{10, 16, 20}

	for _, d := range depths {
		b.Run(fmt.Sprintf("depth%d", d), func(b *testing.B) {
			benchmarkActivePTWUpdate(b, d)
		})
	}
}

func benchmarkActivePTWUpdate(b *testing.B, depth int) {
	m := NewActivePTW(depth, 4)
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if uint64(i) >= uint64(1)<<uint(depth) {
			m = NewActivePTW(depth, 4)
		}
		m.Update(i%2, i%4)
	}
}

func BenchmarkActivePTWLevelPosterior(b *testing.B) {
	m := NewActivePTW(16, 4)
	for i := 0; i < 1000; i++ {
		m.Update(i%2, i%4)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.LevelPosterior()
	}
}
