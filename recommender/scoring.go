package recommender

import "math"

// Skill match weights.
const (
	exactSkillWeight   = 0.7
	partialSkillWeight = 0.3
)

// noOverlapFactor scales the proximity penalty when salary ranges do not meet.
const noOverlapFactor = 0.5

// SkillMatch scores how much of the employee's skill set the target covers.
// The score is weighted on the employee set size, so it is not symmetric.
// Duplicate ids count once.
func SkillMatch(employeeSkills, targetSkills []int) float64 {
	employee := toSet(employeeSkills)
	target := toSet(targetSkills)
	if len(employee) == 0 || len(target) == 0 {
		return 0
	}

	exact := 0
	for id := range employee {
		if _, ok := target[id]; ok {
			exact++
		}
	}
	union := len(employee) + len(target) - exact

	partial := float64(exact) / float64(union)
	score := exactSkillWeight*(float64(exact)/float64(max(len(employee), 1))) +
		partialSkillWeight*partial

	return math.Min(1, score)
}

// SalaryRange is an inclusive salary interval. A zero Max on the employee side
// means the range is unbounded above.
type SalaryRange struct {
	Min int
	Max int
}

// EmployeeSalary returns the salary preference of a profile.
func (p EmployeeProfile) EmployeeSalary() SalaryRange {
	return SalaryRange{Min: p.MinSalary, Max: p.MaxSalary}
}

// Salary returns the salary range offered by a posting.
func (j JobRecord) Salary() SalaryRange {
	return SalaryRange{Min: j.MinSalary, Max: j.MaxSalary}
}

// SalaryCompatibility scores how well the target range fits the employee's
// preferred range. Overlapping ranges score by the share of the employee range
// covered; disjoint ranges score by proximity, halved.
func SalaryCompatibility(employee, target SalaryRange) float64 {
	eMin := float64(employee.Min)
	eMax := math.Inf(1)
	if employee.Max != 0 {
		eMax = float64(employee.Max)
	}
	tMin := float64(target.Min)
	tMax := float64(target.Max)

	if tMin <= eMax && tMax >= eMin {
		span := eMax - eMin
		if span == 0 {
			// A single-point preference that lies inside the target range.
			return 1
		}
		overlap := math.Max(0, math.Min(eMax, tMax)-math.Max(eMin, tMin))
		return clamp01(overlap / span)
	}

	var penalty float64
	if tMax < eMin {
		if eMin <= 0 {
			return 0
		}
		penalty = 1 - (eMin-tMax)/eMin
	} else {
		if tMin <= 0 {
			return 0
		}
		penalty = 1 - (tMin-eMax)/tMin
	}

	return clamp01(penalty * noOverlapFactor)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

func toSet(ids []int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
