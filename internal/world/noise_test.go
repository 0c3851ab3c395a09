package world

import "testing"

func TestTerrainHeightDeterministic(t *testing.T) {
	coords := [][2]float64{
		{0, 0},
		{6, 45},
		{-31.7, 12.2},
		{1000.5, -2048.25},
	}
	for _, c := range coords {
		a := TerrainHeight(c[0], c[1], 42)
		b := TerrainHeight(c[0], c[1], 42)
		if a != b {
			t.Errorf("TerrainHeight(%v, %v) not deterministic: %v != %v", c[0], c[1], a, b)
		}
	}
}

func TestTerrainHeightVariesWithSeed(t *testing.T) {
	same := true
	for x := -40.0; x <= 40.0; x += 13.0 {
		if TerrainHeight(x, x*0.7, 1) != TerrainHeight(x, x*0.7, 2) {
			same = false
		}
	}
	if same {
		t.Error("seeds 1 and 2 produced identical terrain at every sample")
	}
}

func TestTerrainHashRange(t *testing.T) {
	for ix := -50; ix <= 50; ix += 7 {
		for iz := -50; iz <= 50; iz += 7 {
			h := terrainHash(ix, iz, 12345)
			if h < 0 || h > 1 {
				t.Fatalf("terrainHash(%d, %d) = %v, want within [0, 1]", ix, iz, h)
			}
		}
	}
}

func TestLandmarkPeakHeight(t *testing.T) {
	peak := TerrainHeight(landmarkX, landmarkZ, 42)
	if peak < 20 {
		t.Errorf("height at landmark = %v, want a proper peak above 20", peak)
	}
	flat := TerrainHeight(landmarkX+200, landmarkZ+200, 42)
	if flat >= peak {
		t.Errorf("terrain 200 units out (%v) should sit below the landmark (%v)", flat, peak)
	}
}

func TestChunkHasMountainAtLandmark(t *testing.T) {
	// Chunk (0, 3) at size 12 has its centre 3 units from the landmark.
	if !ChunkHasMountain(0, 3, 12.0, 42) {
		t.Error("chunk containing the landmark peak not classified as mountain")
	}
}

func TestMountainChunksAreRare(t *testing.T) {
	count, total := 0, 0
	for cx := 10; cx < 40; cx++ {
		for cz := 10; cz < 40; cz++ {
			total++
			if ChunkHasMountain(cx, cz, 12.0, 42) {
				count++
			}
		}
	}
	if count > total/2 {
		t.Errorf("%d of %d chunks classified as mountain; peaks should be the exception", count, total)
	}
}

func BenchmarkTerrainHeight(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = TerrainHeight(float64(i%512)*0.37, float64(i%509)*0.53, 42)
	}
	benchSink = sink
}

var benchSink float64
