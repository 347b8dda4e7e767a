package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myjobmatch/recommender/models"
)

const jobsJSON = `[
	{"id": 1, "minSalary": 500, "maxSalary": 1000, "skill_ids": [1, 2]},
	{"id": 2, "minSalary": 2000, "maxSalary": 3000, "skill_ids": [7]},
	{"id": "3", "minSalary": 600, "maxSalary": 900, "skill_ids": [1]},
	{"id": 4, "minSalary": 100, "maxSalary": 200}
]`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRecommendCommand(t *testing.T) {
	req := `{"employee": {"careerGoal": {"minSalary": 500, "maxSalary": 1000}, "skillIds": [1, 2]}, "jobs": ` + jobsJSON + `}`

	out, err := run(t, req, "recommend")
	require.NoError(t, err)

	var items []models.RecommendationItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 3)
	assert.Equal(t, "1", items[0].JobID.String())
	assert.Nil(t, items[0].SkillMatch)
}

func TestRecommendCommand_FileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.json")
	req := `{"employee": {"skillIds": [1]}, "jobs": ` + jobsJSON + `, "k": 3}`
	require.NoError(t, os.WriteFile(path, []byte(req), 0o600))

	out, err := run(t, "", "recommend", "--input", path, "--k", "1", "--explain")
	require.NoError(t, err)

	var items []models.RecommendationItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 1)
	require.NotNil(t, items[0].SkillMatch)
}

func TestRecommendCommand_RequestKAboveDefault(t *testing.T) {
	jobs := make([]string, 0, 8)
	for i := 1; i <= 8; i++ {
		jobs = append(jobs, fmt.Sprintf(`{"id": %d, "minSalary": %d, "maxSalary": %d, "skill_ids": [%d]}`, i, i*100, i*200, i))
	}
	req := `{"employee": {"skillIds": [1, 2]}, "jobs": [` + strings.Join(jobs, ", ") + `], "k": 6}`

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "request k", args: []string{"recommend"}, want: 6},
		{name: "flag k", args: []string{"recommend", "--k", "7"}, want: 7},
		{name: "capped by max-k", args: []string{"recommend", "--max-k", "4"}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, req, tt.args...)
			require.NoError(t, err)

			var items []models.RecommendationItem
			require.NoError(t, json.Unmarshal([]byte(out), &items))
			assert.Len(t, items, tt.want)
		})
	}
}

func TestRecommendCommand_InvalidInput(t *testing.T) {
	_, err := run(t, `{"jobs": []}`, "recommend")
	assert.ErrorContains(t, err, "employee and jobs are required")

	_, err = run(t, `not json`, "recommend")
	assert.ErrorContains(t, err, "decoding request")

	_, err = run(t, `{"employee": {}, "jobs": []}`, "recommend", "--policy", "lenient")
	assert.ErrorContains(t, err, "MISSING_FIELD_POLICY")

	_, err = run(t, `{"employee": {}, "jobs": []}`, "recommend", "--max-k", "2")
	assert.ErrorContains(t, err, "MAX_K")

	_, err = run(t, "", "recommend", "--input", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "opening input")
}

func TestRecommendCommand_StrictPolicyFromEnv(t *testing.T) {
	t.Setenv("JOBRANK_POLICY", "strict")
	req := `{"employee": {"minSalary": "plenty"}, "jobs": ` + jobsJSON + `}`

	_, err := run(t, req, "recommend")

	assert.ErrorContains(t, err, "malformed")
}

func TestBatchCommand(t *testing.T) {
	req := `{"employees": [{"skillIds": [1, 2]}, {"skillIds": [7]}], "jobs": ` + jobsJSON + `, "k": 2}`

	out, err := run(t, req, "batch")
	require.NoError(t, err)

	var resp models.BatchResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Results, 2)
	assert.Len(t, resp.Results[0], 2)
	assert.Len(t, resp.Results[1], 2)
}

func TestSimilarCommand(t *testing.T) {
	req := `{"jobId": 1, "jobs": ` + jobsJSON + `}`

	out, err := run(t, req, "similar")
	require.NoError(t, err)

	var items []models.RecommendationItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 3)
	for _, item := range items {
		assert.NotEqual(t, "1", item.JobID.String())
	}
}

func TestSimilarCommand_Flags(t *testing.T) {
	req := `{"jobId": 1, "jobs": ` + jobsJSON + `}`

	out, err := run(t, req, "similar", "--job-id", "3", "--exclude-self=false", "--k", "4")
	require.NoError(t, err)

	var items []models.RecommendationItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 4)

	_, err = run(t, req, "similar", "--job-id", "99")
	assert.ErrorContains(t, err, "not found")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "jobrank version")
}
