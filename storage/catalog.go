// Package storage provides read-only job and employee catalogs backed by
// PostgreSQL, Firestore or a Cloud Storage snapshot.
package storage

import (
	"context"
	"errors"

	"github.com/myjobmatch/recommender/recommender"
)

// ErrNotFound is returned when an employee does not exist in the catalog
var ErrNotFound = errors.New("not found in catalog")

// Catalog supplies job pools and employee profiles for ranking.
type Catalog interface {
	// Jobs returns every job of the catalog in a stable order
	Jobs(ctx context.Context) ([]recommender.JobRecord, error)

	// Employee returns one employee, or ErrNotFound
	Employee(ctx context.Context, id string) (recommender.EmployeeProfile, error)
}
