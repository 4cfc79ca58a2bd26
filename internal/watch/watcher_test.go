package watch

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestSampleWatcher_ChangeTriggersCallback(t *testing.T) {
	tmpDir := t.TempDir()

	sample := filepath.Join(tmpDir, "person.json")
	if err := os.WriteFile(sample, []byte(`{"name": "Ada"}`), 0644); err != nil {
		t.Fatalf("Failed to create sample file: %v", err)
	}
	ignored := filepath.Join(tmpDir, "other.json")
	if err := os.WriteFile(ignored, []byte(`{}`), 0644); err != nil {
		t.Fatalf("Failed to create unwatched file: %v", err)
	}

	var mu sync.Mutex
	var changes [][]string

	watcher, err := New([]string{sample}, zap.NewNop(), func(files []string) error {
		mu.Lock()
		defer mu.Unlock()
		changes = append(changes, files)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}

	time.Sleep(200 * time.Millisecond) // Allow watcher to initialize
	if err := os.WriteFile(sample, []byte(`{"name": "Bob"}`), 0644); err != nil {
		t.Fatalf("Failed to modify sample: %v", err)
	}
	if err := os.WriteFile(ignored, []byte(`{"x": 1}`), 0644); err != nil {
		t.Fatalf("Failed to modify unwatched file: %v", err)
	}

	// Wait for debounce
	time.Sleep(400 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(changes) == 0 {
		t.Fatal("expected at least one change callback")
	}

	abs, _ := filepath.Abs(sample)
	for _, batch := range changes {
		for _, file := range batch {
			if file != abs {
				t.Errorf("unexpected file in callback: %s", file)
			}
		}
	}
}

func TestSampleWatcher_StopTwice(t *testing.T) {
	tmpDir := t.TempDir()
	sample := filepath.Join(tmpDir, "a.json")
	os.WriteFile(sample, []byte(`{}`), 0644)

	watcher, err := New([]string{sample}, zap.NewNop(), func([]string) error { return nil })
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	if err := watcher.Start(); err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}

	if err := watcher.Stop(); err != nil {
		t.Errorf("first Stop failed: %v", err)
	}
	if err := watcher.Stop(); err != nil {
		t.Errorf("second Stop failed: %v", err)
	}
}

func TestDebouncer_CoalescesBursts(t *testing.T) {
	var mu sync.Mutex
	var batches [][]string

	d := NewDebouncer(50 * time.Millisecond)
	d.SetCallback(func(files []string) {
		mu.Lock()
		defer mu.Unlock()
		batches = append(batches, files)
	})
	defer d.Stop()

	d.Add("a.json")
	d.Add("b.json")
	d.Add("a.json")

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(batches) != 1 {
		t.Fatalf("expected one coalesced batch, got %d", len(batches))
	}
	if len(batches[0]) != 2 {
		t.Errorf("expected two distinct files, got %v", batches[0])
	}
}
