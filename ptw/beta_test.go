package ptw

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleBetaRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		z := SampleBeta(rng, 2.0, 5.0)
		if z < 0.0 || z > 1.0 {
			t.Fatalf("SampleBeta returned %v, outside [0,1]", z)
		}
		if math.IsNaN(z) {
			t.Fatalf("SampleBeta returned NaN")
		}
	}
}

func TestSampleBetaMeanApproximatesAnalyticMean(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alpha, beta := 3.0, 3.0

	total := 0.0
	const n = 20000
	for i := 0; i < n; i++ {
		total += SampleBeta(rng, alpha, beta)
	}
	mean := total / n

	want := alpha / (alpha + beta)
	if math.Abs(mean-want) > 0.02 {
		t.Errorf("sample mean %v too far from analytic mean %v", mean, want)
	}
}

func BenchmarkSampleBeta(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		SampleBeta(rng, 1.5, 2.5)
	}
}
