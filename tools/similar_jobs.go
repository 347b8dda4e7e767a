package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/myjobmatch/recommender/models"
	"github.com/myjobmatch/recommender/service"
)

// SimilarJobsTool ranks a job pool against one of its jobs
type SimilarJobsTool struct {
	recommender *service.Recommender
}

// NewSimilarJobsTool creates a new similar jobs tool
func NewSimilarJobsTool(recommender *service.Recommender) *SimilarJobsTool {
	return &SimilarJobsTool{
		recommender: recommender,
	}
}

func (t *SimilarJobsTool) Name() string {
	return "recommend_similar_jobs"
}

func (t *SimilarJobsTool) Description() string {
	return `Find job postings similar to a given posting.
Input should include the target job id and the pool of jobs that contains it.
Returns the most similar job ids with a similarity score, best first.`
}

func (t *SimilarJobsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"jobId": map[string]interface{}{
				"type":        []string{"integer", "string"},
				"description": "Id of the job to compare against",
			},
			"jobs": map[string]interface{}{
				"type":        "array",
				"items":       jobSchema(),
				"description": "Job pool containing the target job",
			},
			"k": kSchema(),
			"explain": map[string]interface{}{
				"type":        "boolean",
				"description": "Include skill, salary and distance scores",
			},
		},
		"required": []string{"jobId", "jobs"},
	}
}

// SimilarJobsInput represents the input for similar jobs
type SimilarJobsInput struct {
	models.SimilarRequest
	Explain bool `json:"explain,omitempty"`
}

func (t *SimilarJobsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	if err := ValidateInput(t.InputSchema(), input); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	var req SimilarJobsInput
	if err := json.Unmarshal(input, &req); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	recs, err := t.recommender.Similar(ctx, req.JobID.String(), req.Jobs, req.K)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("ranking failed: %v", err))
	}

	return NewSuccessResult(models.NewRecommendationItems(recs, models.IndexJobIDs(req.Jobs), req.Explain))
}
