package models

import (
	"fmt"
	"strings"

	"github.com/myjobmatch/recommender/recommender"
)

// DefaultPolicy decides how missing or malformed numeric fields are treated
// when upstream records are flattened.
type DefaultPolicy string

const (
	// PolicyZero turns missing and malformed numbers into 0.
	PolicyZero DefaultPolicy = "zero"
	// PolicyStrict turns missing numbers into 0 but rejects malformed ones.
	PolicyStrict DefaultPolicy = "strict"
)

// JobPayload is a job posting as sent by the upstream jobs service
type JobPayload struct {
	ID             JobID         `json:"id" swaggertype:"string" example:"42"`
	JobType        *Ref          `json:"jobType,omitempty"`
	Position       *Ref          `json:"position,omitempty"`
	YearExperience FlexibleInt   `json:"yearExperience" swaggertype:"integer" example:"2"`
	MaxSalary      FlexibleInt   `json:"maxSalary" swaggertype:"integer" example:"1500"`
	MinSalary      FlexibleInt   `json:"minSalary" swaggertype:"integer" example:"900"`
	Industry       *Ref          `json:"industry,omitempty"`
	ContractType   *Ref          `json:"contractType,omitempty"`
	District       *Ref          `json:"district,omitempty"`
	City           *Ref          `json:"city,omitempty"`
	SkillIDs       []FlexibleInt `json:"skill_ids" swaggertype:"array,integer"`
}

// Flatten converts the payload into an engine record.
func (p *JobPayload) Flatten(policy DefaultPolicy) (recommender.JobRecord, error) {
	if p.ID.IsZero() {
		return recommender.JobRecord{}, fmt.Errorf("%w: job id is required", recommender.ErrInvalidInput)
	}

	r := newFieldReader(policy)
	record := recommender.JobRecord{
		ID:             p.ID.String(),
		JobTypeID:      r.num(recommender.FieldJobTypeID, p.JobType.id()),
		PositionID:     r.num(recommender.FieldPositionID, p.Position.id()),
		YearExperience: r.num(recommender.FieldYearExperience, p.YearExperience),
		MaxSalary:      r.num(recommender.FieldMaxSalary, p.MaxSalary),
		MinSalary:      r.num(recommender.FieldMinSalary, p.MinSalary),
		IndustryID:     r.num(recommender.FieldIndustryID, p.Industry.id()),
		ContractTypeID: r.num(recommender.FieldContractTypeID, p.ContractType.id()),
		DistrictID:     r.num(recommender.FieldDistrictID, p.District.id()),
		CityID:         r.num(recommender.FieldCityID, p.City.id()),
		SkillIDs:       r.ids("skill_ids", p.SkillIDs),
	}

	if err := r.err(); err != nil {
		return recommender.JobRecord{}, fmt.Errorf("job %s: %w", record.ID, err)
	}
	return record, nil
}

// FlattenJobs converts a job pool, skipping null entries.
func FlattenJobs(jobs []*JobPayload, policy DefaultPolicy) ([]recommender.JobRecord, error) {
	records := make([]recommender.JobRecord, 0, len(jobs))
	for _, job := range jobs {
		if job == nil {
			continue
		}
		record, err := job.Flatten(policy)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// fieldReader applies a DefaultPolicy and collects the names of malformed fields.
type fieldReader struct {
	policy    DefaultPolicy
	malformed []string
}

func newFieldReader(policy DefaultPolicy) *fieldReader {
	return &fieldReader{policy: policy}
}

func (r *fieldReader) num(name string, v FlexibleInt) int {
	if v.Malformed {
		r.malformed = append(r.malformed, name)
		return 0
	}
	return v.Value
}

// first returns the first set, non-zero value, the way a career goal value
// overrides a profile-level fallback.
func (r *fieldReader) first(name string, values ...FlexibleInt) int {
	for _, v := range values {
		if n := r.num(name, v); n != 0 {
			return n
		}
	}
	return 0
}

func (r *fieldReader) ids(name string, values []FlexibleInt) []int {
	ids := make([]int, 0, len(values))
	for _, v := range values {
		switch {
		case v.Malformed:
			r.malformed = append(r.malformed, name)
		case v.Set:
			ids = append(ids, v.Value)
		}
	}
	return ids
}

func (r *fieldReader) err() error {
	if r.policy != PolicyStrict || len(r.malformed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: malformed numeric fields: %s", recommender.ErrInvalidInput, strings.Join(r.malformed, ", "))
}
