// Package recommender ranks job postings against a job seeker profile or
// against another job posting using standardized feature vectors, a
// nearest-neighbor search and two domain compatibility scores.
package recommender

// FeatureCount is the length of every feature vector: the nine profile
// fields followed by the skill match score.
const FeatureCount = 10

// Field names used when reporting malformed upstream values.
const (
	FieldJobTypeID      = "job_type_id"
	FieldPositionID     = "position_id"
	FieldYearExperience = "year_experience"
	FieldMaxSalary      = "max_salary"
	FieldMinSalary      = "min_salary"
	FieldIndustryID     = "industry_id"
	FieldContractTypeID = "contract_type_id"
	FieldDistrictID     = "district_id"
	FieldCityID         = "city_id"
)

// JobRecord is one candidate posting. Every numeric field is already
// defaulted to 0 when the upstream value was missing.
type JobRecord struct {
	ID             string `json:"id"`
	JobTypeID      int    `json:"job_type_id"`
	PositionID     int    `json:"position_id"`
	IndustryID     int    `json:"industry_id"`
	ContractTypeID int    `json:"contract_type_id"`
	DistrictID     int    `json:"district_id"`
	CityID         int    `json:"city_id"`
	YearExperience int    `json:"year_experience"`
	MinSalary      int    `json:"min_salary"`
	MaxSalary      int    `json:"max_salary"`
	SkillIDs       []int  `json:"skill_ids"`
}

// EmployeeProfile holds a job seeker's stated preferences.
// A MaxSalary of 0 means the employee set no upper bound.
type EmployeeProfile struct {
	JobTypeID         int   `json:"job_type_id"`
	PositionID        int   `json:"position_id"`
	IndustryID        int   `json:"industry_id"`
	ContractTypeID    int   `json:"contract_type_id"`
	DistrictID        int   `json:"district_id"`
	CityID            int   `json:"city_id"`
	YearExperience    int   `json:"year_experience"`
	MinSalary         int   `json:"min_salary"`
	MaxSalary         int   `json:"max_salary"`
	SkillIDs          []int `json:"skill_ids"`
	EducationLevelIDs []int `json:"education_level_ids,omitempty"` // carried through, not scored
}

// ProfileFromJob turns a posting into a matching context so postings can be
// compared with each other.
func ProfileFromJob(job JobRecord) EmployeeProfile {
	return EmployeeProfile{
		JobTypeID:      job.JobTypeID,
		PositionID:     job.PositionID,
		IndustryID:     job.IndustryID,
		ContractTypeID: job.ContractTypeID,
		DistrictID:     job.DistrictID,
		CityID:         job.CityID,
		YearExperience: job.YearExperience,
		MinSalary:      job.MinSalary,
		MaxSalary:      job.MaxSalary,
		SkillIDs:       job.SkillIDs,
	}
}

// Recommendation is one ranked job with the scores that produced its rank.
type Recommendation struct {
	Job                 JobRecord `json:"job"`
	SimilarityScore     float64   `json:"similarity_score"`
	SkillMatch          float64   `json:"skill_match"`
	SalaryCompatibility float64   `json:"salary_compatibility"`
	Distance            float64   `json:"distance"`
}
