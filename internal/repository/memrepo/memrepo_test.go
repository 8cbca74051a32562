package memrepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/mrled/suns/palin/internal/model"
)

func newRecord(text string, isPalindrome bool) *model.CheckRecord {
	return &model.CheckRecord{
		Text:         text,
		Fold:         "offset",
		IsPalindrome: isPalindrome,
		CheckTime:    time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC),
	}
}

func TestMemoryRepository_StoreAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	if err := repo.Store(ctx, newRecord("level", true)); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	got, err := repo.Get(ctx, "offset", "level")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.IsPalindrome || got.Rev != 1 {
		t.Errorf("Expected palindrome with rev 1, got %+v", got)
	}

	if _, err := repo.Get(ctx, "ascii", "level"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for other fold, got %v", err)
	}
}

func TestMemoryRepository_StoreBumpsRev(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	rec := newRecord("noon", true)
	for i := 1; i <= 3; i++ {
		if err := repo.Store(ctx, rec); err != nil {
			t.Fatalf("Store %d failed: %v", i, err)
		}
		if rec.Rev != int64(i) {
			t.Errorf("After store %d expected rev %d, got %d", i, i, rec.Rev)
		}
	}

	records, _ := repo.List(ctx)
	if len(records) != 1 {
		t.Errorf("Expected 1 record after repeated stores, got %d", len(records))
	}
}

func TestMemoryRepository_StoreInvalid(t *testing.T) {
	repo := NewMemoryRepository()
	if err := repo.Store(context.Background(), nil); !errors.Is(err, model.ErrInvalidRecord) {
		t.Errorf("Expected ErrInvalidRecord for nil, got %v", err)
	}
	if err := repo.Store(context.Background(), &model.CheckRecord{Text: "x"}); !errors.Is(err, model.ErrInvalidRecord) {
		t.Errorf("Expected ErrInvalidRecord for missing fold, got %v", err)
	}
}

func TestMemoryRepository_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	_ = repo.Store(ctx, newRecord("abba", true))

	got, _ := repo.Get(ctx, "offset", "abba")
	got.IsPalindrome = false

	again, _ := repo.Get(ctx, "offset", "abba")
	if !again.IsPalindrome {
		t.Error("Mutating a returned record changed the stored record")
	}
}

func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	_ = repo.Store(ctx, newRecord("kayak", true))

	if err := repo.Delete(ctx, "offset", "kayak"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(ctx, "offset", "kayak"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestMemoryRepository_Persistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "history.json")

	repo, err := NewMemoryRepositoryWithPersistence(path)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	_ = repo.Store(ctx, newRecord("level", true))
	_ = repo.Store(ctx, newRecord("ad8dF90", false))

	reopened, err := NewMemoryRepositoryWithPersistence(path)
	if err != nil {
		t.Fatalf("Failed to reopen repository: %v", err)
	}
	records, _ := reopened.List(ctx)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records after reopen, got %d", len(records))
	}

	if err := reopened.Delete(ctx, "offset", "level"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	again, _ := NewMemoryRepositoryWithPersistence(path)
	if _, err := again.Get(ctx, "offset", "level"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected deleted record to stay deleted, got %v", err)
	}
}

func TestMemoryRepository_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	repo, err := NewMemoryRepositoryWithPersistence(path)
	if err != nil {
		t.Fatalf("Expected empty file to load, got: %v", err)
	}
	records, _ := repo.List(context.Background())
	if len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
}

func TestNewMemoryRepositoryFromJsonString(t *testing.T) {
	repo, err := NewMemoryRepositoryFromJsonString(`[
		{"Text": "noon", "Fold": "offset", "IsPalindrome": true, "Rev": 4},
		{"Text": "noon", "Fold": "offset", "IsPalindrome": true, "Rev": 5}
	]`)
	if err != nil {
		t.Fatalf("Failed to load JSON: %v", err)
	}
	got, err := repo.Get(context.Background(), "offset", "noon")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Rev != 5 {
		t.Errorf("Expected last duplicate (rev 5) to win, got rev %d", got.Rev)
	}

	if _, err := NewMemoryRepositoryFromJsonString(`not json`); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestMemoryRepository_ConcurrentStore(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Store(ctx, newRecord(fmt.Sprintf("text-%d", i%5), false))
		}(i)
	}
	wg.Wait()

	records, _ := repo.List(ctx)
	if len(records) != 5 {
		t.Fatalf("Expected 5 records, got %d", len(records))
	}
	var total int64
	for _, r := range records {
		total += r.Rev
	}
	if total != 50 {
		t.Errorf("Expected revisions to sum to 50, got %d", total)
	}
}

func ExampleMemoryRepository() {
	tmpFile, _ := os.CreateTemp("", "example-*.json")
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	ctx := context.Background()
	repo, _ := NewMemoryRepositoryWithPersistence(tmpPath)

	repo.Store(ctx, &model.CheckRecord{
		Text:         "KayAk",
		Fold:         "offset",
		IsPalindrome: true,
		CheckTime:    time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC),
	})

	content, _ := os.ReadFile(tmpPath)
	fmt.Println(string(content))

	// Output:
	// [
	//   {
	//     "Text": "KayAk",
	//     "Fold": "offset",
	//     "IsPalindrome": true,
	//     "CheckTime": "2025-10-17T12:00:00Z",
	//     "Rev": 1
	//   }
	// ]
}
