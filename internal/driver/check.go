package driver

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"graft/internal/diag"
	"graft/internal/parser"
	"graft/internal/project"
	"graft/internal/source"
)

// CheckOptions configure a batch check run.
type CheckOptions struct {
	Profile        parser.GrammarProfile
	MaxDiagnostics int
	// Jobs limits parallelism; zero means one worker per CPU.
	Jobs  int
	Cache *DiskCache
	// Events receives per-file progress when non-nil. The channel is not
	// closed by CheckPaths; the caller owns its lifetime.
	Events chan<- CheckEvent
}

// CheckStatus tracks where a file is in the check pipeline.
type CheckStatus uint8

const (
	StatusQueued CheckStatus = iota
	StatusParsing
	StatusCached
	StatusDone
	StatusError
)

// CheckEvent is one progress notification for a file being checked.
type CheckEvent struct {
	Path   string
	Status CheckStatus
}

func (o *CheckOptions) emit(path string, status CheckStatus) {
	if o.Events != nil {
		o.Events <- CheckEvent{Path: path, Status: status}
	}
}

// FileReport is the outcome of checking one file. FileSet holds just that
// file, so diagnostic spans resolve against it.
type FileReport struct {
	Path      string
	FileSet   *source.FileSet
	File      *source.File
	Items     int
	Diags     []diag.Diagnostic
	FromCache bool
}

// HasErrors reports whether any diagnostic is error severity.
func (r *FileReport) HasErrors() bool {
	for _, d := range r.Diags {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

// CheckPaths parses every listed file concurrently and returns one report
// per file, in input order. Unchanged files are answered from the cache
// when one is configured.
func CheckPaths(ctx context.Context, paths []string, opts CheckOptions) ([]FileReport, error) {
	reports := make([]FileReport, len(paths))
	optsKey := optionsDigest(opts.Profile)

	g, ctx := errgroup.WithContext(ctx)
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	g.SetLimit(jobs)

	for _, p := range paths {
		opts.emit(p, StatusQueued)
	}
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			opts.emit(p, StatusParsing)
			rep, err := checkOne(p, optsKey, opts)
			if err != nil {
				opts.emit(p, StatusError)
				return err
			}
			switch {
			case rep.HasErrors():
				opts.emit(p, StatusError)
			case rep.FromCache:
				opts.emit(p, StatusCached)
			default:
				opts.emit(p, StatusDone)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func checkOne(filePath string, optsKey project.Digest, opts CheckOptions) (FileReport, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return FileReport{}, err
	}
	fset := source.NewFileSet()
	fileID := fset.Add(filePath, content)
	file := fset.Get(fileID)
	rep := FileReport{Path: filePath, FileSet: fset, File: file}

	key := project.Combine(project.Digest(file.Hash), optsKey)
	var payload CheckPayload
	if hit, err := opts.Cache.Get(key, &payload); err == nil && hit {
		rep.FromCache = true
		rep.Items = payload.ItemCount
		rep.Diags = thawDiagnostics(payload.Diags, fileID)
		return rep, nil
	}

	f, parseErr := parser.ParseFile(file, parser.Options{Profile: opts.Profile})
	if parseErr != nil {
		rep.Diags = append(rep.Diags, toDiagnostic(parseErr))
	} else {
		rep.Items = len(f.Items)
	}
	if len(rep.Diags) > opts.MaxDiagnostics && opts.MaxDiagnostics > 0 {
		rep.Diags = rep.Diags[:opts.MaxDiagnostics]
	}

	// Best effort: a failed write only costs the next run a reparse.
	_ = opts.Cache.Put(key, &CheckPayload{
		Schema:    diskCacheSchemaVersion,
		Path:      filePath,
		ItemCount: rep.Items,
		Diags:     freezeDiagnostics(rep.Diags),
	})
	return rep, nil
}

func optionsDigest(profile parser.GrammarProfile) project.Digest {
	return project.HashBytes([]byte{
		byte(diskCacheSchemaVersion >> 8),
		byte(diskCacheSchemaVersion),
		byte(profile),
	})
}

func freezeDiagnostics(diags []diag.Diagnostic) []CachedDiagnostic {
	out := make([]CachedDiagnostic, len(diags))
	for i, d := range diags {
		out[i] = CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
	}
	return out
}

func thawDiagnostics(cached []CachedDiagnostic, fileID source.FileID) []diag.Diagnostic {
	if len(cached) == 0 {
		return nil
	}
	out := make([]diag.Diagnostic, len(cached))
	for i, c := range cached {
		out[i] = diag.Diagnostic{
			Severity: diag.Severity(c.Severity),
			Code:     diag.Code(c.Code),
			Message:  c.Message,
			Primary: source.Span{
				File:  fileID,
				Start: c.Start,
				End:   c.End,
			},
		}
	}
	return out
}

// CollectFiles walks root and returns the source files to check, sorted.
// Include patterns match slash-separated paths relative to root; an empty
// list accepts every .rs file. Hidden directories and target/ are skipped.
func CollectFiles(root string, include []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if p != root && (strings.HasPrefix(name, ".") || name == "target") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".rs") {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if len(include) == 0 {
			files = append(files, p)
			return nil
		}
		for _, pattern := range include {
			if ok, err := path.Match(pattern, rel); err != nil {
				return err
			} else if ok {
				files = append(files, p)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
