package snowflake

import (
	"strings"
	"sync"
	"testing"
)

func TestGenID(t *testing.T) {
	id := GenID()
	if id <= 0 {
		t.Fatalf("expected id > 0, got %d", id)
	}
}

func TestGenPaymentID(t *testing.T) {
	id := GenPaymentID()
	if !strings.HasPrefix(id, "pay-") {
		t.Fatalf("unexpected payment id format: %s", id)
	}
}

// 一意性テスト：シングルスレッド
func TestGenID_Unique(t *testing.T) {
	const n = 10000
	ids := make(map[int64]struct{}, n)

	for i := 0; i < n; i++ {
		id := GenID()
		if _, exists := ids[id]; exists {
			t.Fatalf("duplicate id found: %d", id)
		}
		ids[id] = struct{}{}
	}
}

// 並行テスト：複数 goroutine から採番しても衝突しないこと
func TestGenID_Concurrent(t *testing.T) {
	const (
		goroutines = 20
		perRoutine = 5000
	)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[int64]struct{}, goroutines*perRoutine)
	)

	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perRoutine; i++ {
				id := GenID()

				mu.Lock()
				if _, exists := ids[id]; exists {
					mu.Unlock()
					t.Errorf("duplicate id found in concurrent test: %d", id)
					return
				}
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
}
