package recommender

// Normalizer projects records onto feature vectors relative to one employee
// context. Job salary fields are collapsed into the compatibility score with
// that context and the skill component is the match against its skills.
// Vectors are laid out as job type, position, years of experience, max
// salary, min salary, industry, contract type, district, city and skill match.
type Normalizer struct {
	context EmployeeProfile
}

// NewNormalizer creates a normalizer for the given employee context.
func NewNormalizer(context EmployeeProfile) *Normalizer {
	return &Normalizer{context: context}
}

// Employee returns the context's own feature vector with raw salary values.
func (n *Normalizer) Employee() []float64 {
	p := n.context
	return []float64{
		float64(p.JobTypeID),
		float64(p.PositionID),
		float64(p.YearExperience),
		float64(p.MaxSalary),
		float64(p.MinSalary),
		float64(p.IndustryID),
		float64(p.ContractTypeID),
		float64(p.DistrictID),
		float64(p.CityID),
		SkillMatch(p.SkillIDs, p.SkillIDs),
	}
}

// Job returns the feature vector of a posting. Both salary slots hold the
// same salary compatibility score.
func (n *Normalizer) Job(job JobRecord) []float64 {
	salary := SalaryCompatibility(n.context.EmployeeSalary(), job.Salary())
	return []float64{
		float64(job.JobTypeID),
		float64(job.PositionID),
		float64(job.YearExperience),
		salary,
		salary,
		float64(job.IndustryID),
		float64(job.ContractTypeID),
		float64(job.DistrictID),
		float64(job.CityID),
		SkillMatch(n.context.SkillIDs, job.SkillIDs),
	}
}

// Jobs builds the feature matrix of a pool, one row per job.
func (n *Normalizer) Jobs(jobs []JobRecord) [][]float64 {
	matrix := make([][]float64, len(jobs))
	for i, job := range jobs {
		matrix[i] = n.Job(job)
	}
	return matrix
}
