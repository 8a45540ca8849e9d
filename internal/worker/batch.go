package worker

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/divinelang/divinepl/internal/model"
)

// Confessor defines the interface for confessing a single script
type Confessor interface {
	ConfessScript(ctx context.Context, path string) (*model.Report, error)
}

// ConfessionJob confesses one script path
type ConfessionJob struct {
	Path      string
	Confessor Confessor
}

// Execute runs the confession job
func (j *ConfessionJob) Execute(ctx context.Context) Result {
	report, err := j.Confessor.ConfessScript(ctx, j.Path)
	return &ConfessionResult{
		Path:   j.Path,
		Report: report,
		Error:  err,
	}
}

// ConfessionResult is the result of one confession job
type ConfessionResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the error from the confession result
func (r *ConfessionResult) GetError() error {
	return r.Error
}

// BatchConfessor confesses multiple scripts concurrently
type BatchConfessor struct {
	confessor   Confessor
	concurrency int
}

// NewBatchConfessor creates a new batch confessor
func NewBatchConfessor(confessor Confessor, concurrency int) *BatchConfessor {
	return &BatchConfessor{
		confessor:   confessor,
		concurrency: concurrency,
	}
}

// ConfessPaths confesses the given script paths concurrently. Result order is
// completion order, not submission order.
func (b *BatchConfessor) ConfessPaths(ctx context.Context, paths []string) []*ConfessionResult {
	if len(paths) == 0 {
		return []*ConfessionResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()
	defer pool.Shutdown()

	for _, path := range paths {
		pool.Submit(&ConfessionJob{
			Path:      path,
			Confessor: b.confessor,
		})
	}

	results := pool.Wait()

	confessions := make([]*ConfessionResult, len(results))
	for i, result := range results {
		confessions[i] = result.(*ConfessionResult)
	}

	return confessions
}

// ExpandPaths resolves the given arguments to script files: plain files pass
// through, directories contribute every .divine/.dpl file under them. The
// result is deduplicated and sorted.
func ExpandPaths(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}

		if !info.IsDir() {
			add(arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if IsScriptPath(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// IsScriptPath reports whether a path looks like a DivinePL script
func IsScriptPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".divine" || ext == ".dpl"
}
