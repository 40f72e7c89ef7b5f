package utils

// CreateRankList builds position-based ranks for an already sorted
// result list. Rank 1 is the first (best) item.
func CreateRankList(count int) []uint16 {
	if count <= 0 {
		return []uint16{}
	}
	ranks := make([]uint16, count)
	for i := 0; i < count; i++ {
		ranks[i] = uint16(i + 1)
	}
	return ranks
}
