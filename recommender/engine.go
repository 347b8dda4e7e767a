package recommender

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

// Weights blends the three similarity signals into the final score.
type Weights struct {
	Distance float64 `validate:"gte=0,lte=1"`
	Skill    float64 `validate:"gte=0,lte=1"`
	Salary   float64 `validate:"gte=0,lte=1"`
}

// DefaultWeights returns the 0.5 / 0.3 / 0.2 blend.
func DefaultWeights() Weights {
	return Weights{Distance: 0.5, Skill: 0.3, Salary: 0.2}
}

// Options configures an Engine.
type Options struct {
	Weights Weights
	// ExcludeSelf drops the queried job from its own similar-jobs pool.
	ExcludeSelf bool
	// Observer is optional.
	Observer Observer `validate:"-"`
}

// DefaultOptions returns the default blend with self-exclusion enabled.
func DefaultOptions() Options {
	return Options{
		Weights:     DefaultWeights(),
		ExcludeSelf: true,
	}
}

// Engine ranks job pools. It holds no per-request state and is safe for
// concurrent use.
type Engine struct {
	weights     Weights
	excludeSelf bool
	observer    Observer
}

// NewEngine validates the options and creates an engine.
func NewEngine(opts Options) (*Engine, error) {
	if err := validator.New().Struct(opts); err != nil {
		return nil, fmt.Errorf("%w: engine options: %v", ErrInvalidInput, err)
	}

	observer := opts.Observer
	if observer == nil {
		observer = nopObserver{}
	}

	return &Engine{
		weights:     opts.Weights,
		excludeSelf: opts.ExcludeSelf,
		observer:    observer,
	}, nil
}

// RankJobsForEmployee returns the k jobs of the pool closest to the employee,
// best first. An empty pool yields an empty result and k below 1 is treated
// as 1.
func (e *Engine) RankJobsForEmployee(employee EmployeeProfile, jobs []JobRecord, k int) []Recommendation {
	return e.rank(ModeEmployee, employee, jobs, k)
}

// RankSimilarJobs returns the k jobs of the pool closest to the job with the
// given id. It fails with ErrNotFound when the id is not in the pool.
func (e *Engine) RankSimilarJobs(targetJobID string, jobs []JobRecord, k int) ([]Recommendation, error) {
	target := -1
	for i, job := range jobs {
		if job.ID == targetJobID {
			target = i
			break
		}
	}
	if target < 0 {
		return nil, fmt.Errorf("%w: job %q", ErrNotFound, targetJobID)
	}

	pool := jobs
	if e.excludeSelf {
		pool = make([]JobRecord, 0, len(jobs)-1)
		for _, job := range jobs {
			if job.ID != targetJobID {
				pool = append(pool, job)
			}
		}
	}

	return e.rank(ModeSimilar, ProfileFromJob(jobs[target]), pool, k), nil
}

func (e *Engine) rank(mode string, context EmployeeProfile, jobs []JobRecord, k int) []Recommendation {
	if len(jobs) == 0 {
		return []Recommendation{}
	}
	k = max(k, 1)

	normalizer := NewNormalizer(context)
	matrix := normalizer.Jobs(jobs)

	scaler, err := FitScaler(matrix)
	if err != nil {
		// Unreachable: the matrix is non-empty and every row has FeatureCount columns.
		return []Recommendation{}
	}
	query := scaler.Transform(normalizer.Employee())

	e.observer.Normalized(NormalizedEvent{
		Mode:     mode,
		PoolSize: len(jobs),
		Mean:     scaler.Mean,
		Scale:    scaler.Scale,
		Query:    query,
	})

	index := NewNearestNeighbors(scaler.TransformAll(matrix))
	neighbors := index.Query(query, k)

	employeeSalary := context.EmployeeSalary()
	recommendations := make([]Recommendation, 0, len(neighbors))
	for _, n := range neighbors {
		job := jobs[n.Index]

		skill := SkillMatch(context.SkillIDs, job.SkillIDs)
		salary := SalaryCompatibility(employeeSalary, job.Salary())
		base := 1 / (1 + n.Distance)

		recommendations = append(recommendations, Recommendation{
			Job:                 job,
			SimilarityScore:     e.weights.Distance*base + e.weights.Skill*skill + e.weights.Salary*salary,
			SkillMatch:          skill,
			SalaryCompatibility: salary,
			Distance:            n.Distance,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].SimilarityScore > recommendations[j].SimilarityScore
	})

	e.observer.Ranked(RankedEvent{
		Mode:            mode,
		PoolSize:        len(jobs),
		K:               k,
		Recommendations: recommendations,
	})

	return recommendations
}
