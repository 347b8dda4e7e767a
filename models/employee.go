package models

import (
	"github.com/myjobmatch/recommender/recommender"
)

// CareerGoal represents an employee's career preferences
type CareerGoal struct {
	IndustryID FlexibleInt `json:"industryId" swaggertype:"integer" example:"3"`
	JobTypeID  FlexibleInt `json:"jobTypeId" swaggertype:"integer" example:"1"`
	PositionID FlexibleInt `json:"positionId" swaggertype:"integer" example:"7"`
	MinSalary  FlexibleInt `json:"minSalary" swaggertype:"integer" example:"500"`
	MaxSalary  FlexibleInt `json:"maxSalary" swaggertype:"integer" example:"1000"`
}

// EmployeePayload is a job seeker as sent by the upstream profile service.
// Career goal values take precedence over the profile-level fallbacks.
type EmployeePayload struct {
	EducationLevelIDs []FlexibleInt `json:"educationLevelIds" swaggertype:"array,integer"`
	CareerGoal        *CareerGoal   `json:"careerGoal,omitempty"`
	Industry          *Ref          `json:"industry,omitempty"`
	JobType           *Ref          `json:"jobType,omitempty"`
	Position          *Ref          `json:"position,omitempty"`
	ContractType      *Ref          `json:"contractType,omitempty"`
	District          *Ref          `json:"district,omitempty"`
	City              *Ref          `json:"city,omitempty"`
	YearExperience    FlexibleInt   `json:"yearExperience" swaggertype:"integer"`
	MinSalary         FlexibleInt   `json:"minSalary" swaggertype:"integer"`
	MaxSalary         FlexibleInt   `json:"maxSalary" swaggertype:"integer"`
	SkillIDs          []FlexibleInt `json:"skillIds" swaggertype:"array,integer"`
}

// Flatten converts the payload into an engine profile.
func (p *EmployeePayload) Flatten(policy DefaultPolicy) (recommender.EmployeeProfile, error) {
	goal := p.CareerGoal
	if goal == nil {
		goal = &CareerGoal{}
	}

	r := newFieldReader(policy)
	profile := recommender.EmployeeProfile{
		IndustryID:        r.first(recommender.FieldIndustryID, goal.IndustryID, p.Industry.id()),
		JobTypeID:         r.first(recommender.FieldJobTypeID, goal.JobTypeID, p.JobType.id()),
		PositionID:        r.first(recommender.FieldPositionID, goal.PositionID, p.Position.id()),
		MinSalary:         r.first(recommender.FieldMinSalary, goal.MinSalary, p.MinSalary),
		MaxSalary:         r.first(recommender.FieldMaxSalary, goal.MaxSalary, p.MaxSalary),
		ContractTypeID:    r.num(recommender.FieldContractTypeID, p.ContractType.id()),
		DistrictID:        r.num(recommender.FieldDistrictID, p.District.id()),
		CityID:            r.num(recommender.FieldCityID, p.City.id()),
		YearExperience:    r.num(recommender.FieldYearExperience, p.YearExperience),
		SkillIDs:          r.ids("skillIds", p.SkillIDs),
		EducationLevelIDs: r.ids("educationLevelIds", p.EducationLevelIDs),
	}

	if err := r.err(); err != nil {
		return recommender.EmployeeProfile{}, err
	}
	return profile, nil
}
