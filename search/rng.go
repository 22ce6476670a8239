package search

import "math/rand/v2"

// Stream namespaces. Trial streams use k directly; graph streams set the
// top bit so they never collide with a trial.
const graphStream uint64 = 1 << 63

// splitmix64 is the SplitMix64 finalizer.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// deriveSeed mixes the run seed, a partition index and a stream id into
// one 64-bit seed. Nearby inputs give unrelated outputs.
func deriveSeed(seed uint64, partition int, stream uint64) uint64 {
	if seed == 0 {
		seed = DefaultSeed
	}
	x := splitmix64(seed ^ splitmix64(uint64(partition)))
	return splitmix64(x ^ stream)
}

// stream is a reseedable generator. Reseeding does not allocate.
type stream struct {
	src *rand.PCG
	rng *rand.Rand
}

func newStream() *stream {
	src := rand.NewPCG(0, 0)
	return &stream{src: src, rng: rand.New(src)}
}

// at reseeds s for (seed, partition, id) and returns its generator.
func (s *stream) at(seed uint64, partition int, id uint64) *rand.Rand {
	d := deriveSeed(seed, partition, id)
	s.src.Seed(d, splitmix64(d))
	return s.rng
}
