package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/myjobmatch/recommender/config"
	"github.com/myjobmatch/recommender/models"
	"github.com/myjobmatch/recommender/recommender"
)

const (
	jobsCollection      = "jobs"
	employeesCollection = "employees"
)

// FirestoreCatalog reads jobs and employees stored in the upstream wire shape
type FirestoreCatalog struct {
	client *firestore.Client
	policy models.DefaultPolicy
}

// NewFirestoreCatalog creates a new Firestore catalog
func NewFirestoreCatalog(ctx context.Context, cfg *config.Config) (*FirestoreCatalog, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreCatalog{
		client: client,
		policy: models.DefaultPolicy(cfg.MissingFieldPolicy),
	}, nil
}

// Close closes the Firestore client
func (f *FirestoreCatalog) Close() error {
	return f.client.Close()
}

// Jobs returns every job document ordered by document id
func (f *FirestoreCatalog) Jobs(ctx context.Context) ([]recommender.JobRecord, error) {
	iter := f.client.Collection(jobsCollection).OrderBy(firestore.DocumentID, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	records := make([]recommender.JobRecord, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query jobs: %w", err)
		}

		var payload models.JobPayload
		if err := decodeDocument(doc.Data(), &payload); err != nil {
			return nil, fmt.Errorf("failed to parse job %s: %w", doc.Ref.ID, err)
		}
		if payload.ID.IsZero() {
			payload.ID = models.JobIDFromString(doc.Ref.ID)
		}

		record, err := payload.Flatten(f.policy)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// Employee retrieves an employee by document id
func (f *FirestoreCatalog) Employee(ctx context.Context, id string) (recommender.EmployeeProfile, error) {
	doc, err := f.client.Collection(employeesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return recommender.EmployeeProfile{}, fmt.Errorf("employee %s: %w", id, ErrNotFound)
		}
		return recommender.EmployeeProfile{}, fmt.Errorf("failed to get employee: %w", err)
	}

	var payload models.EmployeePayload
	if err := decodeDocument(doc.Data(), &payload); err != nil {
		return recommender.EmployeeProfile{}, fmt.Errorf("failed to parse employee %s: %w", id, err)
	}

	return payload.Flatten(f.policy)
}

// decodeDocument routes Firestore data through the JSON wire decoders so
// documents accept the same loose numbers as HTTP payloads.
func decodeDocument(data map[string]interface{}, v interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
