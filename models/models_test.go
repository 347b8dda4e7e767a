package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myjobmatch/recommender/recommender"
)

func TestFlexibleInt_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      int
		set       bool
		malformed bool
	}{
		{name: "number", input: `12`, want: 12, set: true},
		{name: "float truncated", input: `12.9`, want: 12, set: true},
		{name: "numeric string", input: `" 700 "`, want: 700, set: true},
		{name: "null", input: `null`},
		{name: "empty string", input: `""`},
		{name: "word", input: `"abc"`, malformed: true},
		{name: "bool", input: `true`, malformed: true},
		{name: "object", input: `{"id":1}`, malformed: true},
		{name: "negative float truncated", input: `-2.5`, want: -2, set: true},
		{name: "too large", input: `1e30`, malformed: true},
		{name: "too small", input: `-1e30`, malformed: true},
		{name: "too large string", input: `"9.3e18"`, malformed: true},
		{name: "overflow string", input: `"1e400"`, malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v FlexibleInt
			require.NoError(t, json.Unmarshal([]byte(tt.input), &v))
			assert.Equal(t, tt.want, v.Value)
			assert.Equal(t, tt.set, v.Set)
			assert.Equal(t, tt.malformed, v.Malformed)
		})
	}
}

func TestJobID_RoundTripKeepsForm(t *testing.T) {
	var payload struct {
		A JobID `json:"a"`
		B JobID `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 42, "b": "job-7"}`), &payload))

	assert.Equal(t, "42", payload.A.String())
	assert.Equal(t, "job-7", payload.B.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 42, "b": "job-7"}`, string(out))
}

func TestJobIDFromString(t *testing.T) {
	out, err := json.Marshal([]JobID{JobIDFromString("7"), JobIDFromString("007"), JobIDFromString("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `[7, "007", "x"]`, string(out))
}

const jobJSON = `{
	"id": 42,
	"jobType": {"id": 1},
	"position": {"id": "3"},
	"yearExperience": null,
	"maxSalary": 1500,
	"minSalary": "900",
	"industry": {"id": 5},
	"city": {"id": 9},
	"skill_ids": [1, null, "4"]
}`

func TestJobPayload_Flatten(t *testing.T) {
	var payload JobPayload
	require.NoError(t, json.Unmarshal([]byte(jobJSON), &payload))

	record, err := payload.Flatten(PolicyZero)
	require.NoError(t, err)

	assert.Equal(t, recommender.JobRecord{
		ID:         "42",
		JobTypeID:  1,
		PositionID: 3,
		MaxSalary:  1500,
		MinSalary:  900,
		IndustryID: 5,
		CityID:     9,
		SkillIDs:   []int{1, 4},
	}, record)
}

func TestJobPayload_FlattenRequiresID(t *testing.T) {
	payload := JobPayload{MinSalary: Int(10)}

	_, err := payload.Flatten(PolicyZero)

	assert.True(t, errors.Is(err, recommender.ErrInvalidInput))
}

func TestJobPayload_Policies(t *testing.T) {
	raw := `{"id": "a", "minSalary": "lots", "skill_ids": [1, "two"]}`
	var payload JobPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	record, err := payload.Flatten(PolicyZero)
	require.NoError(t, err)
	assert.Equal(t, 0, record.MinSalary)
	assert.Equal(t, []int{1}, record.SkillIDs)

	_, err = payload.Flatten(PolicyStrict)
	require.Error(t, err)
	assert.True(t, errors.Is(err, recommender.ErrInvalidInput))
	assert.Contains(t, err.Error(), recommender.FieldMinSalary)
	assert.Contains(t, err.Error(), "skill_ids")
}

func TestJobPayload_OutOfRangeSalary(t *testing.T) {
	var payload JobPayload
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "minSalary": 100, "maxSalary": 1e30}`), &payload))

	record, err := payload.Flatten(PolicyZero)
	require.NoError(t, err)
	assert.Equal(t, 0, record.MaxSalary)
	assert.Equal(t, 100, record.MinSalary)

	_, err = payload.Flatten(PolicyStrict)
	require.Error(t, err)
	assert.Contains(t, err.Error(), recommender.FieldMaxSalary)
}

func TestRef_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      int
		malformed bool
	}{
		{name: "object", input: `{"id": 5}`, want: 5},
		{name: "object with string id", input: `{"id": "5", "name": "IT"}`, want: 5},
		{name: "empty object", input: `{}`},
		{name: "null", input: `null`},
		{name: "bare number", input: `5`, malformed: true},
		{name: "string", input: `"IT"`, malformed: true},
		{name: "array", input: `[1]`, malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref Ref
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ref))
			assert.Equal(t, tt.want, ref.ID.Value)
			assert.Equal(t, tt.malformed, ref.ID.Malformed)
		})
	}
}

func TestJobPayload_ScalarRef(t *testing.T) {
	var payload JobPayload
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "jobType": 5, "city": {"id": 3}}`), &payload))

	record, err := payload.Flatten(PolicyZero)
	require.NoError(t, err)
	assert.Equal(t, 0, record.JobTypeID)
	assert.Equal(t, 3, record.CityID)

	_, err = payload.Flatten(PolicyStrict)
	require.Error(t, err)
	assert.True(t, errors.Is(err, recommender.ErrInvalidInput))
	assert.Contains(t, err.Error(), recommender.FieldJobTypeID)
}

func TestEmployeePayload_ScalarRef(t *testing.T) {
	var payload EmployeePayload
	require.NoError(t, json.Unmarshal([]byte(`{"industry": 4, "skillIds": [1]}`), &payload))

	profile, err := payload.Flatten(PolicyZero)
	require.NoError(t, err)
	assert.Equal(t, 0, profile.IndustryID)
	assert.Equal(t, []int{1}, profile.SkillIDs)

	_, err = payload.Flatten(PolicyStrict)
	assert.True(t, errors.Is(err, recommender.ErrInvalidInput))
}

func TestJobPayload_StrictAcceptsMissing(t *testing.T) {
	payload := JobPayload{ID: JobIDFromString("1")}

	record, err := payload.Flatten(PolicyStrict)

	require.NoError(t, err)
	assert.Equal(t, "1", record.ID)
	assert.Empty(t, record.SkillIDs)
}

func TestFlattenJobs_SkipsNull(t *testing.T) {
	var jobs []*JobPayload
	require.NoError(t, json.Unmarshal([]byte(`[{"id": 1}, null, {"id": 2}]`), &jobs))

	records, err := FlattenJobs(jobs, PolicyZero)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, "2", records[1].ID)
}

func TestEmployeePayload_CareerGoalWins(t *testing.T) {
	raw := `{
		"educationLevelIds": [2, 3],
		"careerGoal": {"industryId": 7, "jobTypeId": 0, "minSalary": 600, "maxSalary": null, "positionId": "4"},
		"industry": {"id": 1},
		"jobType": {"id": 2},
		"position": {"id": 3},
		"minSalary": 100,
		"maxSalary": 900,
		"skillIds": [5, 6]
	}`
	var payload EmployeePayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	profile, err := payload.Flatten(PolicyZero)
	require.NoError(t, err)

	assert.Equal(t, 7, profile.IndustryID)
	assert.Equal(t, 2, profile.JobTypeID, "zero career goal falls back")
	assert.Equal(t, 4, profile.PositionID)
	assert.Equal(t, 600, profile.MinSalary)
	assert.Equal(t, 900, profile.MaxSalary, "null career goal falls back")
	assert.Equal(t, []int{5, 6}, profile.SkillIDs)
	assert.Equal(t, []int{2, 3}, profile.EducationLevelIDs)
}

func TestEmployeePayload_NoCareerGoal(t *testing.T) {
	payload := EmployeePayload{
		Industry:  &Ref{ID: Int(8)},
		MinSalary: Int(300),
	}

	profile, err := payload.Flatten(PolicyStrict)

	require.NoError(t, err)
	assert.Equal(t, 8, profile.IndustryID)
	assert.Equal(t, 300, profile.MinSalary)
	assert.Equal(t, 0, profile.MaxSalary)
	assert.Empty(t, profile.SkillIDs)
}

func TestEmployeePayload_StrictRejectsMalformed(t *testing.T) {
	var payload EmployeePayload
	require.NoError(t, json.Unmarshal([]byte(`{"careerGoal": {"maxSalary": "a lot"}}`), &payload))

	_, err := payload.Flatten(PolicyStrict)

	assert.True(t, errors.Is(err, recommender.ErrInvalidInput))
}

func TestNewRecommendationItems(t *testing.T) {
	var jobs []*JobPayload
	require.NoError(t, json.Unmarshal([]byte(`[{"id": 42}, {"id": "42b"}]`), &jobs))
	recs := []recommender.Recommendation{
		{Job: recommender.JobRecord{ID: "42"}, SimilarityScore: 0.8, SkillMatch: 1, SalaryCompatibility: 0.5, Distance: 0.2},
		{Job: recommender.JobRecord{ID: "42b"}, SimilarityScore: 0.4},
	}

	plain, err := json.Marshal(NewRecommendationItems(recs, IndexJobIDs(jobs), false))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"jobId": 42, "similarityScore": 0.8}, {"jobId": "42b", "similarityScore": 0.4}]`, string(plain))

	explained := NewRecommendationItems(recs, IndexJobIDs(jobs), true)
	require.NotNil(t, explained[0].SkillMatch)
	assert.Equal(t, 1.0, *explained[0].SkillMatch)
	assert.Equal(t, 0.5, *explained[0].SalaryCompatibility)
	assert.Equal(t, 0.2, *explained[0].Distance)
}

func TestNewRecommendationItems_Empty(t *testing.T) {
	out, err := json.Marshal(NewRecommendationItems(nil, nil, false))

	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}
