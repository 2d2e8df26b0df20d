// Package pipeline orchestrates C3 through C6 across a file set: each
// translation unit is parsed and built single-threaded, a bounded worker
// pool runs translation units concurrently, and a single mutex serializes
// merging each file's top-level entities into one shared root (§5).
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/cxxdoc/cxxdoc/internal/cache"
	"github.com/cxxdoc/cxxdoc/internal/diag"
	"github.com/cxxdoc/cxxdoc/internal/discover"
	"github.com/cxxdoc/cxxdoc/internal/entity"
	"github.com/cxxdoc/cxxdoc/internal/markup"
	"github.com/cxxdoc/cxxdoc/internal/syntax"
)

// Result is the outcome of a full build: the merged tree and every
// diagnostic raised along the way.
type Result struct {
	Root *entity.Entity
	Sink *diag.Sink
}

// Run discovers files under baseDir, keeps those matching at least one of
// patterns (glob patterns relative to baseDir, per §3.4/§4.8 — "**"
// matches any number of path segments), parses and builds the survivors
// concurrently, merges their entities into one shared root, pre-declares
// groups, and resolves @ingroup relocations.
func Run(ctx context.Context, baseDir string, patterns []string, groups []string, rc *cache.Cache) (*Result, error) {
	found, err := discover.Files(baseDir)
	if err != nil {
		return nil, fmt.Errorf("discovering files under %s: %w", baseDir, err)
	}
	var files []discover.File
	for _, f := range found {
		if discover.MatchAny(patterns, f.Path) {
			files = append(files, f)
		}
	}

	root := entity.NewRoot()
	sink := &diag.Sink{}
	for _, name := range groups {
		entity.DeclareGroup(root, name)
	}

	driver := syntax.NewDriver(sink)
	if sink.HasFatal() {
		return &Result{Root: root, Sink: sink}, nil
	}

	buildFiles(ctx, driver, files, root, sink, rc)

	entity.ResolveGroups(root, sink)
	return &Result{Root: root, Sink: sink}, nil
}

type job struct {
	index int
	file  discover.File
}

// buildFiles runs a bounded worker pool over files, mirroring the
// teacher's channel/sync.WaitGroup idiom, and serializes merging each
// file's root into the shared root with mergeMu. A tree-sitter parser is
// not safe for concurrent use, so the first worker uses driver and every
// other worker compiles a Driver of its own.
func buildFiles(ctx context.Context, driver *syntax.Driver, files []discover.File, root *entity.Entity, sink *diag.Sink, rc *cache.Cache) {
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > len(files) {
		numWorkers = len(files)
	}
	if numWorkers == 0 {
		return
	}

	work := make(chan job, len(files))
	for i, f := range files {
		work <- job{index: i, file: f}
	}
	close(work)

	var wg sync.WaitGroup
	var mergeMu sync.Mutex
	var sinkMu sync.Mutex

	for i := 0; i < numWorkers; i++ {
		wd := driver
		if i > 0 {
			wd = syntax.NewDriver(nil)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range work {
				fileSink := &diag.Sink{}
				fileRoot := buildOne(ctx, wd, j.file, fileSink, rc)

				sinkMu.Lock()
				sink.Merge(fileSink)
				sinkMu.Unlock()

				mergeMu.Lock()
				mergeInto(root, fileRoot)
				mergeMu.Unlock()
			}
		}()
	}
	wg.Wait()
}

// buildOne parses and builds a single translation unit's entity tree. On a
// cache hit the file is not re-parsed or re-translated; its previously
// built tree is decoded from the cache instead (§4.9).
func buildOne(ctx context.Context, driver *syntax.Driver, f discover.File, sink *diag.Sink, rc *cache.Cache) *entity.Entity {
	path := filepath.Join(f.Root, f.Path)
	source, err := os.ReadFile(path)
	if err != nil {
		sink.Fatalf(f.Path, "reading file: %v", err)
		return entity.NewRoot()
	}

	var key string
	if rc != nil {
		key = cache.Key(source, []byte(syntax.QuerySource))
		if cached, ok, err := rc.Get(key); err == nil && ok {
			if fileRoot, err := entity.Unmarshal(cached); err == nil {
				return fileRoot
			}
		}
	}

	matches := driver.Matches(ctx, source, sink)

	fileRoot := entity.NewRoot()
	b := entity.NewBuilder(fileRoot, markup.Translator{}, sink)
	for _, m := range matches {
		b.Add(m)
	}
	b.Finish()

	if rc != nil {
		if encoded, err := entity.Marshal(fileRoot); err == nil {
			if err := rc.Put(key, encoded); err != nil {
				sink.Warningf(f.Path, "storing render cache entry: %v", err)
			}
		}
	}
	return fileRoot
}

// mergeInto adopts every top-level entity of src under dst, preserving
// the per-kind dispatch and duplicate-key warning behavior of Adopt.
func mergeInto(dst, src *entity.Entity) {
	for _, set := range []*entity.ChildSet{src.Namespaces, src.Types, src.Variables, src.Enumerators, src.Macros, src.Groups, src.Functions, src.Operators} {
		for _, child := range set.All() {
			dst.Adopt(child)
		}
	}
}
