package checker

import (
	"fmt"
	"hash/fnv"
	"os"
	"runtime"
	"sync"

	"github.com/abramin/annolint/internal/cache"
	"github.com/abramin/annolint/internal/checks"
	"github.com/abramin/annolint/internal/pyast"
	"github.com/abramin/annolint/internal/settings"
)

// Runner checks a set of AST dump files. Files are independent of each
// other, so they fan out over a bounded worker pool; each file's own
// diagnostic order is preserved, and results come back in input order.
type Runner struct {
	Settings *settings.Settings
	Patch    bool
	Cache    *cache.Cache // nil disables caching
	Workers  int          // <= 0 means GOMAXPROCS
}

// FileResult is the outcome for a single file.
type FileResult struct {
	Path     string
	Messages []checks.Message
	Cached   bool
	Err      error
}

// Run checks every path and returns one result per path, in input order.
func (r *Runner) Run(paths []string) []FileResult {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	results := make([]FileResult, len(paths))
	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = r.checkFile(paths[i])
			}
		}()
	}
	for i := range paths {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
	return results
}

func (r *Runner) checkFile(path string) FileResult {
	result := FileResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = err
		return result
	}

	fileHash := hashBytes(data)
	settingsHash := r.Settings.Hash()

	if r.Cache != nil {
		messages, hit, err := r.Cache.Get(path, fileHash, settingsHash)
		if err == nil && hit {
			result.Messages = messages
			result.Cached = true
			return result
		}
	}

	module, err := pyast.DecodeModule(data)
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", path, err)
		return result
	}

	result.Messages = New(r.Settings, r.Patch).CheckModule(module)

	if r.Cache != nil {
		// A failed write only costs a re-check next run.
		_ = r.Cache.Put(path, fileHash, settingsHash, result.Messages)
	}
	return result
}

func hashBytes(data []byte) uint64 {
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}
