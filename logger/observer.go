package logger

import (
	"go.uber.org/zap"

	"github.com/myjobmatch/recommender/recommender"
)

// RankingObserver reports engine progress at debug level.
type RankingObserver struct {
	logger *zap.Logger
}

// NewRankingObserver wraps logger as a recommender.Observer.
func NewRankingObserver(logger *zap.Logger) *RankingObserver {
	return &RankingObserver{logger: logger}
}

func (o *RankingObserver) Normalized(e recommender.NormalizedEvent) {
	o.logger.Debug("feature matrix standardized",
		zap.String("mode", e.Mode),
		zap.Int("pool_size", e.PoolSize),
		zap.Float64s("mean", e.Mean),
		zap.Float64s("scale", e.Scale),
		zap.Float64s("query", e.Query),
	)
}

func (o *RankingObserver) Ranked(e recommender.RankedEvent) {
	ids := make([]string, 0, len(e.Recommendations))
	scores := make([]float64, 0, len(e.Recommendations))
	for _, rec := range e.Recommendations {
		ids = append(ids, rec.Job.ID)
		scores = append(scores, rec.SimilarityScore)
	}

	o.logger.Debug("jobs ranked",
		zap.String("mode", e.Mode),
		zap.Int("pool_size", e.PoolSize),
		zap.Int("k", e.K),
		zap.Strings("job_ids", ids),
		zap.Float64s("scores", scores),
	)
}
