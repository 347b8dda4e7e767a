package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"cloud.google.com/go/storage"

	"github.com/myjobmatch/recommender/config"
	"github.com/myjobmatch/recommender/models"
	"github.com/myjobmatch/recommender/recommender"
)

// Snapshot is the JSON document a snapshot catalog reads
type Snapshot struct {
	Jobs      []*models.JobPayload               `json:"jobs"`
	Employees map[string]*models.EmployeePayload `json:"employees"`
}

// DecodeSnapshot reads a snapshot document
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode catalog snapshot: %w", err)
	}
	return &snap, nil
}

// JobRecords flattens the snapshot's jobs
func (s *Snapshot) JobRecords(policy models.DefaultPolicy) ([]recommender.JobRecord, error) {
	return models.FlattenJobs(s.Jobs, policy)
}

// EmployeeProfile flattens one employee of the snapshot
func (s *Snapshot) EmployeeProfile(id string, policy models.DefaultPolicy) (recommender.EmployeeProfile, error) {
	payload, ok := s.Employees[id]
	if !ok || payload == nil {
		return recommender.EmployeeProfile{}, fmt.Errorf("employee %s: %w", id, ErrNotFound)
	}
	return payload.Flatten(policy)
}

// CloudStorageCatalog reads a JSON snapshot object on every call
type CloudStorageCatalog struct {
	client     *storage.Client
	bucketName string
	objectName string
	policy     models.DefaultPolicy
}

// NewCloudStorageCatalog creates a new Cloud Storage snapshot catalog
func NewCloudStorageCatalog(ctx context.Context, cfg *config.Config) (*CloudStorageCatalog, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageCatalog{
		client:     client,
		bucketName: cfg.CatalogBucket,
		objectName: cfg.CatalogObject,
		policy:     models.DefaultPolicy(cfg.MissingFieldPolicy),
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageCatalog) Close() error {
	return c.client.Close()
}

// Jobs returns the snapshot's jobs in document order
func (c *CloudStorageCatalog) Jobs(ctx context.Context) ([]recommender.JobRecord, error) {
	snap, err := c.download(ctx)
	if err != nil {
		return nil, err
	}
	return snap.JobRecords(c.policy)
}

// Employee returns one employee of the snapshot
func (c *CloudStorageCatalog) Employee(ctx context.Context, id string) (recommender.EmployeeProfile, error) {
	snap, err := c.download(ctx)
	if err != nil {
		return recommender.EmployeeProfile{}, err
	}
	return snap.EmployeeProfile(id, c.policy)
}

func (c *CloudStorageCatalog) download(ctx context.Context) (*Snapshot, error) {
	rc, err := c.client.Bucket(c.bucketName).Object(c.objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer rc.Close()

	return DecodeSnapshot(rc)
}
