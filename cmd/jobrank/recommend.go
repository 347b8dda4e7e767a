package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/myjobmatch/recommender/models"
	"github.com/myjobmatch/recommender/recommender"
)

func newRecommendCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Rank the request's jobs for its employee",
		Long:  "Reads a {employee, jobs, k} request and prints [{jobId, similarityScore}] best first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := getConfig(v)
			if err != nil {
				return err
			}

			var req models.RecommendRequest
			if err := readRequest(cmd, cfg.Input, &req); err != nil {
				return err
			}
			if req.Employee == nil || req.Jobs == nil {
				return fmt.Errorf("%w: employee and jobs are required", recommender.ErrInvalidInput)
			}

			svc, log, err := newRecommender(cfg)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			k := req.K
			if cfg.K > 0 {
				k = cfg.K
			}

			recs, err := svc.Recommend(cmd.Context(), req.Employee, req.Jobs, k)
			if err != nil {
				return err
			}
			log.Debug("recommendations ready", zap.Int("count", len(recs)))

			return writeJSON(cmd, models.NewRecommendationItems(recs, models.IndexJobIDs(req.Jobs), cfg.Explain))
		},
	}
}

func newBatchCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "batch",
		Short: "Rank the request's jobs for each of its employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := getConfig(v)
			if err != nil {
				return err
			}

			var req models.BatchRecommendRequest
			if err := readRequest(cmd, cfg.Input, &req); err != nil {
				return err
			}
			if req.Employees == nil || req.Jobs == nil {
				return fmt.Errorf("%w: employees and jobs are required", recommender.ErrInvalidInput)
			}

			svc, log, err := newRecommender(cfg)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			k := req.K
			if cfg.K > 0 {
				k = cfg.K
			}

			batch, err := svc.RecommendBatch(cmd.Context(), req.Employees, req.Jobs, k)
			if err != nil {
				return err
			}

			ids := models.IndexJobIDs(req.Jobs)
			results := make([][]models.RecommendationItem, 0, len(batch))
			for _, recs := range batch {
				results = append(results, models.NewRecommendationItems(recs, ids, cfg.Explain))
			}
			return writeJSON(cmd, models.BatchResponse{Results: results})
		},
	}
}
