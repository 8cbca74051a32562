package memrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mrled/suns/palin/internal/model"
)

// MemoryRepository is an in-memory implementation of CheckRepository optionally backed by a JSON file
type MemoryRepository struct {
	mu       sync.RWMutex
	data     map[string]*model.CheckRecord
	filePath string
}

// NewMemoryRepository creates a new in-memory repository without persistence.
// Data is stored only in memory and will be lost when the process terminates.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		data: make(map[string]*model.CheckRecord),
	}
}

// NewMemoryRepositoryWithPersistence creates a new in-memory repository backed by a JSON file.
// The repository will load existing data from the file on initialization and persist
// all changes (Store, Delete) to the file automatically.
func NewMemoryRepositoryWithPersistence(filePath string) (*MemoryRepository, error) {
	repo := &MemoryRepository{
		data:     make(map[string]*model.CheckRecord),
		filePath: filePath,
	}

	// Create parent directory if it doesn't exist
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	if err := repo.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return repo, nil
}

// NewMemoryRepositoryFromJsonString creates a new in-memory repository initialized with data from a JSON string.
// The repository will not be backed by a file and will not persist changes.
func NewMemoryRepositoryFromJsonString(jsonString string) (*MemoryRepository, error) {
	repo := NewMemoryRepository()
	if err := repo.loadFromReader(strings.NewReader(jsonString)); err != nil {
		return nil, err
	}
	return repo, nil
}

// loadFromReader reads JSON data from a reader and populates the in-memory data
func (r *MemoryRepository) loadFromReader(reader io.Reader) error {
	var records []*model.CheckRecord
	if err := json.NewDecoder(reader).Decode(&records); err != nil {
		return fmt.Errorf("failed to decode check records: %w", err)
	}

	r.data = make(map[string]*model.CheckRecord, len(records))
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
		// Later duplicates win, as a DynamoDB PUT would
		r.data[rec.Key()] = rec
	}

	return nil
}

// load reads the JSON file and populates the in-memory data
func (r *MemoryRepository) load() error {
	file, err := os.Open(r.filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return err
	}
	if stat.Size() == 0 {
		return nil
	}

	return r.loadFromReader(file)
}

// save writes the in-memory data to the JSON file.
// If filePath is empty, this is a no-op.
func (r *MemoryRepository) save() error {
	if r.filePath == "" {
		return nil
	}

	records := make([]*model.CheckRecord, 0, len(r.data))
	for _, rec := range r.data {
		records = append(records, rec)
	}
	model.SortRecords(records, string(model.SortByDefault))

	file, err := os.Create(r.filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

// Store saves a check record, replacing any existing record for the same fold and text
func (r *MemoryRepository) Store(ctx context.Context, record *model.CheckRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *record
	stored.Rev = 1
	if existing, ok := r.data[record.Key()]; ok {
		stored.Rev = existing.Rev + 1
	}
	r.data[record.Key()] = &stored
	record.Rev = stored.Rev

	return r.save()
}

// Get retrieves a check record by fold and text
func (r *MemoryRepository) Get(ctx context.Context, fold, text string) (*model.CheckRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.data[model.MakeKey(fold, text)]
	if !exists {
		return nil, model.ErrNotFound
	}

	out := *rec
	return &out, nil
}

// List retrieves all check records
func (r *MemoryRepository) List(ctx context.Context) ([]*model.CheckRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.CheckRecord, 0, len(r.data))
	for _, rec := range r.data {
		out := *rec
		result = append(result, &out)
	}

	return result, nil
}

// Delete removes a check record by fold and text
func (r *MemoryRepository) Delete(ctx context.Context, fold, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := model.MakeKey(fold, text)
	if _, exists := r.data[key]; !exists {
		return model.ErrNotFound
	}

	delete(r.data, key)
	return r.save()
}
