// Package service orchestrates ranking requests: it flattens wire payloads,
// loads pools from a catalog when asked to, and runs the engine.
package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/myjobmatch/recommender/config"
	"github.com/myjobmatch/recommender/models"
	"github.com/myjobmatch/recommender/recommender"
	"github.com/myjobmatch/recommender/storage"
)

// ErrCatalogUnavailable is returned by catalog-backed operations when no
// catalog backend is configured.
var ErrCatalogUnavailable = errors.New("no catalog configured")

// Recommender ranks job pools for employees and for other jobs
type Recommender struct {
	engine           *recommender.Engine
	catalog          storage.Catalog
	policy           models.DefaultPolicy
	defaultK         int
	maxK             int
	batchConcurrency int
	logger           *zap.Logger
}

// NewRecommender creates a recommender. catalog may be nil.
func NewRecommender(cfg *config.Config, engine *recommender.Engine, catalog storage.Catalog, logger *zap.Logger) *Recommender {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Recommender{
		engine:           engine,
		catalog:          catalog,
		policy:           models.DefaultPolicy(cfg.MissingFieldPolicy),
		defaultK:         cfg.DefaultK,
		maxK:             cfg.MaxK,
		batchConcurrency: max(cfg.BatchConcurrency, 1),
		logger:           logger.Named("service"),
	}
}

// HasCatalog reports whether catalog-backed operations are available
func (r *Recommender) HasCatalog() bool {
	return r.catalog != nil
}

// Recommend ranks the pool for one employee
func (r *Recommender) Recommend(ctx context.Context, employee *models.EmployeePayload, jobs []*models.JobPayload, k int) ([]recommender.Recommendation, error) {
	if employee == nil {
		return nil, fmt.Errorf("%w: employee is required", recommender.ErrInvalidInput)
	}

	records, err := models.FlattenJobs(jobs, r.policy)
	if err != nil {
		return nil, err
	}
	profile, err := employee.Flatten(r.policy)
	if err != nil {
		return nil, fmt.Errorf("employee: %w", err)
	}

	return r.rankEmployee(ctx, profile, records, k)
}

// Similar ranks the pool against the job with the given id
func (r *Recommender) Similar(ctx context.Context, jobID string, jobs []*models.JobPayload, k int) ([]recommender.Recommendation, error) {
	if jobID == "" {
		return nil, fmt.Errorf("%w: jobId is required", recommender.ErrInvalidInput)
	}

	records, err := models.FlattenJobs(jobs, r.policy)
	if err != nil {
		return nil, err
	}

	return r.rankSimilar(ctx, jobID, records, k)
}

// RecommendBatch ranks one pool for many employees concurrently. Results are
// returned in the order of employees.
func (r *Recommender) RecommendBatch(ctx context.Context, employees []*models.EmployeePayload, jobs []*models.JobPayload, k int) ([][]recommender.Recommendation, error) {
	records, err := models.FlattenJobs(jobs, r.policy)
	if err != nil {
		return nil, err
	}

	profiles := make([]recommender.EmployeeProfile, len(employees))
	for i, employee := range employees {
		if employee == nil {
			return nil, fmt.Errorf("%w: employee %d is null", recommender.ErrInvalidInput, i)
		}
		if profiles[i], err = employee.Flatten(r.policy); err != nil {
			return nil, fmt.Errorf("employee %d: %w", i, err)
		}
	}

	results := make([][]recommender.Recommendation, len(profiles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.batchConcurrency)

	for i, profile := range profiles {
		g.Go(func() error {
			recs, err := r.rankEmployee(gctx, profile, records, k)
			if err != nil {
				return err
			}
			results[i] = recs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger.Debug("batch ranked",
		zap.Int("employees", len(profiles)),
		zap.Int("pool", len(records)),
	)
	return results, nil
}

// RecommendForEmployee ranks the catalog's jobs for a catalog employee
func (r *Recommender) RecommendForEmployee(ctx context.Context, employeeID string, k int) ([]recommender.Recommendation, error) {
	if r.catalog == nil {
		return nil, ErrCatalogUnavailable
	}

	profile, err := r.catalog.Employee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	records, err := r.catalog.Jobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}

	return r.rankEmployee(ctx, profile, records, k)
}

// SimilarForJob ranks the catalog's jobs against one of them
func (r *Recommender) SimilarForJob(ctx context.Context, jobID string, k int) ([]recommender.Recommendation, error) {
	if r.catalog == nil {
		return nil, ErrCatalogUnavailable
	}

	records, err := r.catalog.Jobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}

	return r.rankSimilar(ctx, jobID, records, k)
}

// ResolveK applies the configured default and cap to a requested k
func (r *Recommender) ResolveK(k int) int {
	if k <= 0 {
		k = r.defaultK
	}
	if r.maxK > 0 && k > r.maxK {
		k = r.maxK
	}
	return k
}

func (r *Recommender) rankEmployee(ctx context.Context, profile recommender.EmployeeProfile, records []recommender.JobRecord, k int) ([]recommender.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	recs := r.engine.RankJobsForEmployee(profile, records, r.ResolveK(k))
	r.logger.Debug("employee ranked",
		zap.Int("pool", len(records)),
		zap.Int("results", len(recs)),
	)
	return recs, nil
}

func (r *Recommender) rankSimilar(ctx context.Context, jobID string, records []recommender.JobRecord, k int) ([]recommender.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	recs, err := r.engine.RankSimilarJobs(jobID, records, r.ResolveK(k))
	if err != nil {
		return nil, err
	}

	r.logger.Debug("similar jobs ranked",
		zap.String("job_id", jobID),
		zap.Int("pool", len(records)),
		zap.Int("results", len(recs)),
	)
	return recs, nil
}
