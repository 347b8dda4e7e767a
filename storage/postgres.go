package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/myjobmatch/recommender/config"
	"github.com/myjobmatch/recommender/recommender"
)

const jobsQuery = `
SELECT j.id::text,
       COALESCE(j.job_type_id, 0),
       COALESCE(j.position_id, 0),
       COALESCE(j.year_experience, 0),
       COALESCE(j.min_salary, 0),
       COALESCE(j.max_salary, 0),
       COALESCE(j.contract_type_id, 0),
       COALESCE(j.district_id, 0),
       COALESCE(j.city_id, 0),
       COALESCE(array_agg(js.skill_id ORDER BY js.skill_id) FILTER (WHERE js.skill_id IS NOT NULL), '{}')
  FROM jobs j
  LEFT JOIN job_skill js ON js.job_id = j.id
 GROUP BY j.id
 ORDER BY j.id`

const employeeQuery = `
SELECT COALESCE(cg.industry_id, 0),
       COALESCE(cg.job_type_id, 0),
       COALESCE(cg.position_id, 0),
       COALESCE(cg.min_salary, 0),
       COALESCE(cg.max_salary, 0),
       COALESCE((SELECT array_agg(es.skill_id ORDER BY es.skill_id) FROM employee_skill es WHERE es.employee_id = e.id), '{}'),
       COALESCE((SELECT array_agg(ed.education_level_id ORDER BY ed.education_level_id) FROM education ed WHERE ed.employee_id = e.id), '{}')
  FROM employee e
  LEFT JOIN career_goal cg ON cg.id = e.career_goal_id
 WHERE e.id::text = $1`

// jobRow mirrors one row of jobsQuery.
type jobRow struct {
	ID             string
	JobTypeID      int64
	PositionID     int64
	YearExperience int64
	MinSalary      int64
	MaxSalary      int64
	ContractTypeID int64
	DistrictID     int64
	CityID         int64
	SkillIDs       []int32
}

func (r jobRow) record() recommender.JobRecord {
	return recommender.JobRecord{
		ID:             r.ID,
		JobTypeID:      int(r.JobTypeID),
		PositionID:     int(r.PositionID),
		YearExperience: int(r.YearExperience),
		MinSalary:      int(r.MinSalary),
		MaxSalary:      int(r.MaxSalary),
		ContractTypeID: int(r.ContractTypeID),
		DistrictID:     int(r.DistrictID),
		CityID:         int(r.CityID),
		SkillIDs:       toInts(r.SkillIDs),
	}
}

// employeeRow mirrors one row of employeeQuery.
type employeeRow struct {
	IndustryID        int64
	JobTypeID         int64
	PositionID        int64
	MinSalary         int64
	MaxSalary         int64
	SkillIDs          []int32
	EducationLevelIDs []int32
}

func (r employeeRow) profile() recommender.EmployeeProfile {
	return recommender.EmployeeProfile{
		IndustryID:        int(r.IndustryID),
		JobTypeID:         int(r.JobTypeID),
		PositionID:        int(r.PositionID),
		MinSalary:         int(r.MinSalary),
		MaxSalary:         int(r.MaxSalary),
		SkillIDs:          toInts(r.SkillIDs),
		EducationLevelIDs: toInts(r.EducationLevelIDs),
	}
}

// PostgresCatalog reads jobs and employees from the recruitment database
type PostgresCatalog struct {
	pool *pgxpool.Pool
}

// NewPostgresCatalog creates a connection pool and verifies it
func NewPostgresCatalog(ctx context.Context, cfg *config.Config) (*PostgresCatalog, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	if cfg.DBMaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.DBMaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresCatalog{pool: pool}, nil
}

// Close closes the connection pool
func (p *PostgresCatalog) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

// Jobs returns every job ordered by id
func (p *PostgresCatalog) Jobs(ctx context.Context) ([]recommender.JobRecord, error) {
	rows, err := p.pool.Query(ctx, jobsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}

	jobRows, err := pgx.CollectRows(rows, pgx.RowToStructByPos[jobRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}

	records := make([]recommender.JobRecord, 0, len(jobRows))
	for _, row := range jobRows {
		records = append(records, row.record())
	}
	return records, nil
}

// Employee returns an employee's career goal, skills and education levels
func (p *PostgresCatalog) Employee(ctx context.Context, id string) (recommender.EmployeeProfile, error) {
	rows, err := p.pool.Query(ctx, employeeQuery, id)
	if err != nil {
		return recommender.EmployeeProfile{}, fmt.Errorf("failed to query employee: %w", err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[employeeRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recommender.EmployeeProfile{}, fmt.Errorf("employee %s: %w", id, ErrNotFound)
		}
		return recommender.EmployeeProfile{}, fmt.Errorf("failed to scan employee: %w", err)
	}

	return row.profile(), nil
}

func toInts(values []int32) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out
}
