package storage

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myjobmatch/recommender/models"
	"github.com/myjobmatch/recommender/recommender"
)

const snapshotJSON = `{
	"jobs": [
		{"id": 1, "jobType": {"id": 2}, "minSalary": 500, "maxSalary": "900", "skill_ids": [3, 4]},
		null,
		{"id": "b", "city": {"id": 7}, "minSalary": "n/a"}
	],
	"employees": {
		"e1": {"careerGoal": {"industryId": 5, "minSalary": 400}, "maxSalary": 1000, "skillIds": [3]}
	}
}`

func TestSnapshot_JobRecords(t *testing.T) {
	snap, err := DecodeSnapshot(strings.NewReader(snapshotJSON))
	require.NoError(t, err)

	records, err := snap.JobRecords(models.PolicyZero)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, recommender.JobRecord{ID: "1", JobTypeID: 2, MinSalary: 500, MaxSalary: 900, SkillIDs: []int{3, 4}}, records[0])
	assert.Equal(t, "b", records[1].ID)
	assert.Equal(t, 7, records[1].CityID)
	assert.Equal(t, 0, records[1].MinSalary)

	_, err = snap.JobRecords(models.PolicyStrict)
	assert.True(t, errors.Is(err, recommender.ErrInvalidInput))
}

func TestSnapshot_EmployeeProfile(t *testing.T) {
	snap, err := DecodeSnapshot(strings.NewReader(snapshotJSON))
	require.NoError(t, err)

	profile, err := snap.EmployeeProfile("e1", models.PolicyZero)
	require.NoError(t, err)
	assert.Equal(t, 5, profile.IndustryID)
	assert.Equal(t, 400, profile.MinSalary)
	assert.Equal(t, 1000, profile.MaxSalary)
	assert.Equal(t, []int{3}, profile.SkillIDs)

	_, err = snap.EmployeeProfile("missing", models.PolicyZero)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDecodeSnapshot_Invalid(t *testing.T) {
	_, err := DecodeSnapshot(strings.NewReader(`{"jobs": `))
	assert.Error(t, err)
}

func TestDecodeDocument(t *testing.T) {
	data := map[string]interface{}{
		"id":        int64(9),
		"position":  map[string]interface{}{"id": int64(4)},
		"maxSalary": float64(1200),
		"skill_ids": []interface{}{int64(1), nil, "2"},
	}

	var payload models.JobPayload
	require.NoError(t, decodeDocument(data, &payload))

	record, err := payload.Flatten(models.PolicyStrict)
	require.NoError(t, err)
	assert.Equal(t, recommender.JobRecord{ID: "9", PositionID: 4, MaxSalary: 1200, SkillIDs: []int{1, 2}}, record)
}

func TestPostgresRows(t *testing.T) {
	job := jobRow{ID: "3", JobTypeID: 1, MinSalary: 100, MaxSalary: 200, CityID: 8, SkillIDs: []int32{5, 6}}
	assert.Equal(t, recommender.JobRecord{ID: "3", JobTypeID: 1, MinSalary: 100, MaxSalary: 200, CityID: 8, SkillIDs: []int{5, 6}}, job.record())

	employee := employeeRow{IndustryID: 2, MaxSalary: 900, EducationLevelIDs: []int32{1}}
	profile := employee.profile()
	assert.Equal(t, 2, profile.IndustryID)
	assert.Equal(t, 900, profile.MaxSalary)
	assert.Empty(t, profile.SkillIDs)
	assert.Equal(t, []int{1}, profile.EducationLevelIDs)
}
