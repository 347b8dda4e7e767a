package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/myjobmatch/recommender/models"
	"github.com/myjobmatch/recommender/service"
)

// RecommendJobsTool ranks a job pool for an employee
type RecommendJobsTool struct {
	recommender *service.Recommender
}

// NewRecommendJobsTool creates a new employee recommendation tool
func NewRecommendJobsTool(recommender *service.Recommender) *RecommendJobsTool {
	return &RecommendJobsTool{
		recommender: recommender,
	}
}

func (t *RecommendJobsTool) Name() string {
	return "recommend_jobs"
}

func (t *RecommendJobsTool) Description() string {
	return `Rank job postings for a job seeker.
Input should include the employee profile and the pool of jobs to rank.
Returns the best matching job ids with a similarity score, best first.`
}

func (t *RecommendJobsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"employee": employeeSchema(),
			"jobs": map[string]interface{}{
				"type":        "array",
				"items":       jobSchema(),
				"description": "Candidate job postings",
			},
			"k": kSchema(),
			"explain": map[string]interface{}{
				"type":        "boolean",
				"description": "Include skill, salary and distance scores",
			},
		},
		"required": []string{"employee", "jobs"},
	}
}

// RecommendJobsInput represents the input for employee recommendations
type RecommendJobsInput struct {
	models.RecommendRequest
	Explain bool `json:"explain,omitempty"`
}

func (t *RecommendJobsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	if err := ValidateInput(t.InputSchema(), input); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	var req RecommendJobsInput
	if err := json.Unmarshal(input, &req); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	recs, err := t.recommender.Recommend(ctx, req.Employee, req.Jobs, req.K)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("ranking failed: %v", err))
	}

	return NewSuccessResult(models.NewRecommendationItems(recs, models.IndexJobIDs(req.Jobs), req.Explain))
}
