package recommender

import (
	"math"
	"sort"
)

// Neighbor is one result of a nearest-neighbor query.
type Neighbor struct {
	Index    int
	Distance float64
}

// NearestNeighbors is a brute-force Euclidean index over a standardized pool.
// Pools are request-sized, so an exhaustive scan is enough.
type NearestNeighbors struct {
	points [][]float64
}

// NewNearestNeighbors indexes the rows of matrix.
func NewNearestNeighbors(matrix [][]float64) *NearestNeighbors {
	return &NearestNeighbors{points: matrix}
}

// Query returns the k points closest to query, nearest first. k is capped at
// the number of indexed points; equal distances keep index order.
func (nn *NearestNeighbors) Query(query []float64, k int) []Neighbor {
	if k <= 0 || len(nn.points) == 0 {
		return []Neighbor{}
	}
	k = min(k, len(nn.points))

	all := make([]Neighbor, len(nn.points))
	for i, p := range nn.points {
		all[i] = Neighbor{Index: i, Distance: euclidean(p, query)}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Distance < all[j].Distance
	})

	return all[:k]
}

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
