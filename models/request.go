package models

import (
	"github.com/myjobmatch/recommender/recommender"
)

// RecommendRequest represents the API request for employee recommendations
// @Description Rank a job pool against one employee
type RecommendRequest struct {
	Employee *EmployeePayload `json:"employee" binding:"required"`
	Jobs     []*JobPayload    `json:"jobs" binding:"required"`
	K        int              `json:"k,omitempty" binding:"gte=0" example:"3"`
}

// SimilarRequest represents the API request for similar jobs
// @Description Rank a job pool against one of its jobs
type SimilarRequest struct {
	JobID JobID         `json:"jobId" swaggertype:"string" example:"42"`
	Jobs  []*JobPayload `json:"jobs" binding:"required"`
	K     int           `json:"k,omitempty" binding:"gte=0" example:"3"`
}

// BatchRecommendRequest ranks one job pool for several employees
// @Description Rank a job pool against many employees
type BatchRecommendRequest struct {
	Employees []*EmployeePayload `json:"employees" binding:"required"`
	Jobs      []*JobPayload      `json:"jobs" binding:"required"`
	K         int                `json:"k,omitempty" binding:"gte=0" example:"3"`
}

// RecommendationItem is one ranked job in a response
// @Description Ranked job id with its blended score
type RecommendationItem struct {
	JobID               JobID    `json:"jobId" swaggertype:"string" example:"42"`
	SimilarityScore     float64  `json:"similarityScore" example:"0.83"`
	SkillMatch          *float64 `json:"skillMatch,omitempty" example:"1"`
	SalaryCompatibility *float64 `json:"salaryCompatibility,omitempty" example:"0.6"`
	Distance            *float64 `json:"distance,omitempty" example:"1.2"`
}

// BatchResponse holds one ranking per employee, in request order
// @Description Batch ranking results
type BatchResponse struct {
	Results [][]RecommendationItem `json:"results"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid input"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"job id is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// JobIDs maps flattened ids back to the ids upstream sent.
type JobIDs map[string]JobID

// IndexJobIDs collects the ids of a payload pool.
func IndexJobIDs(jobs []*JobPayload) JobIDs {
	ids := make(JobIDs, len(jobs))
	for _, job := range jobs {
		if job == nil || job.ID.IsZero() {
			continue
		}
		ids[job.ID.String()] = job.ID
	}
	return ids
}

// Lookup returns the upstream id, or one rebuilt from the string form for
// jobs that did not come from a payload.
func (ids JobIDs) Lookup(id string) JobID {
	if raw, ok := ids[id]; ok {
		return raw
	}
	return JobIDFromString(id)
}

// NewRecommendationItems converts engine output into response items. With
// explain set the per-signal scores are included.
func NewRecommendationItems(recs []recommender.Recommendation, ids JobIDs, explain bool) []RecommendationItem {
	items := make([]RecommendationItem, 0, len(recs))
	for _, rec := range recs {
		item := RecommendationItem{
			JobID:           ids.Lookup(rec.Job.ID),
			SimilarityScore: rec.SimilarityScore,
		}
		if explain {
			skill, salary, distance := rec.SkillMatch, rec.SalaryCompatibility, rec.Distance
			item.SkillMatch = &skill
			item.SalaryCompatibility = &salary
			item.Distance = &distance
		}
		items = append(items, item)
	}
	return items
}
