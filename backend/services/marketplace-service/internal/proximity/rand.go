package proximity

// unit maps an integer seed to a reproducible value in [0,1) using a single
// splitmix64 mixing step. The same seed always yields the same value, which is
// what makes generated listings stable across calls and across processes.
func unit(seed int64) float64 {
	x := uint64(seed) + 0x9e3779b97f4a7c15
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return float64(x>>11) / (1 << 53)
}

// pick selects a deterministic element of a list by seed.
func pick(list []string, seed int64) string {
	return list[int(unit(seed)*float64(len(list)))]
}
