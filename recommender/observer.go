package recommender

// Observer receives optional callbacks at fixed points of a ranking. It is
// called synchronously from the ranking goroutine and must not modify the
// values it receives.
type Observer interface {
	// Normalized is called once the pool has been projected and standardized.
	Normalized(NormalizedEvent)
	// Ranked is called with the final, sorted recommendations.
	Ranked(RankedEvent)
}

// NormalizedEvent describes the feature matrix of one ranking.
type NormalizedEvent struct {
	Mode     string
	PoolSize int
	Mean     []float64
	Scale    []float64
	Query    []float64
}

// RankedEvent describes the result of one ranking.
type RankedEvent struct {
	Mode            string
	PoolSize        int
	K               int
	Recommendations []Recommendation
}

// Ranking modes reported to observers.
const (
	ModeEmployee = "employee"
	ModeSimilar  = "similar"
)

type nopObserver struct{}

func (nopObserver) Normalized(NormalizedEvent) {}
func (nopObserver) Ranked(RankedEvent)         {}
