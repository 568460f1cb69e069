// Package store is the in-memory registry of uploaded datasets. Every
// upload is parsed once and cached here under a generated handle. Nothing
// survives a restart; each session re-derives its analytics from the file
// it uploaded.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/parkdash/models"
)

// Kind discriminates what an uploaded dataset contains.
type Kind string

const (
	KindTransactions Kind = "transactions"
	KindSurveys      Kind = "surveys"
)

// Dataset is one uploaded, cleaned file.
type Dataset struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploaded_at"`

	Lines     []models.TicketLine     `json:"-"`
	Responses []models.SurveyResponse `json:"-"`
}

var (
	mu       sync.RWMutex
	datasets map[string]*Dataset
)

// Initialize resets the registry. Call once at startup.
func Initialize() {
	mu.Lock()
	defer mu.Unlock()
	datasets = make(map[string]*Dataset)
}

// Put registers a dataset, assigning its handle and upload time.
func Put(ds *Dataset) string {
	mu.Lock()
	defer mu.Unlock()
	ds.ID = uuid.NewString()
	ds.UploadedAt = time.Now()
	datasets[ds.ID] = ds
	return ds.ID
}

// Get looks a dataset up by handle.
func Get(id string) (*Dataset, bool) {
	mu.RLock()
	defer mu.RUnlock()
	ds, ok := datasets[id]
	return ds, ok
}

// Remove drops a dataset from the registry.
func Remove(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(datasets, id)
}

// Count returns the number of cached datasets.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(datasets)
}
