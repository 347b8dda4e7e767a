package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/myjobmatch/recommender/models"
	"github.com/myjobmatch/recommender/recommender"
)

func newSimilarCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "similar",
		Short: "Rank the request's jobs against one of them",
		Long:  "Reads a {jobId, jobs, k} request and prints [{jobId, similarityScore}] best first. --job-id overrides the request's jobId.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := getConfig(v)
			if err != nil {
				return err
			}

			var req models.SimilarRequest
			if err := readRequest(cmd, cfg.Input, &req); err != nil {
				return err
			}
			if req.Jobs == nil {
				return fmt.Errorf("%w: jobs are required", recommender.ErrInvalidInput)
			}

			jobID := req.JobID.String()
			if cfg.JobID != "" {
				jobID = cfg.JobID
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

			recs, err := svc.Similar(cmd.Context(), jobID, req.Jobs, k)
			if err != nil {
				return err
			}

			return writeJSON(cmd, models.NewRecommendationItems(recs, models.IndexJobIDs(req.Jobs), cfg.Explain))
		},
	}

	cmd.Flags().String("job-id", "", "id of the job to compare against")
	cmd.Flags().Bool("exclude-self", true, "drop the target job from its own results")
	_ = v.BindPFlag("job-id", cmd.Flags().Lookup("job-id"))
	_ = v.BindPFlag("exclude-self", cmd.Flags().Lookup("exclude-self"))

	return cmd
}
