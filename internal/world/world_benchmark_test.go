package world

import "testing"

func BenchmarkPopulateChunk(b *testing.B) {
	g := NewGenerator(NewNoiseHeightSource(42, 0.05), 50, 10)
	ch := NewChunk(ChunkCoord{Y: 1})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.PopulateChunk(ch)
	}
}

func BenchmarkTargetHeight(b *testing.B) {
	g := NewGenerator(NewNoiseHeightSource(42, 0.05), 50, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.TargetHeight(i%1024, (i*31)%1024)
	}
}

func BenchmarkBuildReferenceWorld(b *testing.B) {
	g := NewGenerator(NewNoiseHeightSource(42, 0.05), 50, 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Build(New(), g, Extent{X: 5, Z: 5, HeightChunks: 4})
	}
}
