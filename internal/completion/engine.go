// Package completion computes Tab completions for file paths.
//
// Completion cycles through the entries of one directory: the candidates
// are the entries whose names start with the fragment typed before the
// first Tab, sorted by full path, and each call returns the candidate after
// the one currently shown, wrapping at the end.
package completion

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	serr "filedrop/internal/errors"
	"filedrop/internal/log"

	"github.com/gobwas/glob"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Options tune candidate selection.
type Options struct {
	// Exclude holds glob patterns; entries whose name matches any are skipped.
	Exclude []string
}

// Engine lists directories on fs to produce completions.
type Engine struct {
	fs      afero.Fs
	exclude []glob.Glob
}

// New creates an engine over the OS filesystem.
func New(opts Options) (*Engine, error) {
	return NewWithFs(afero.NewOsFs(), opts)
}

// NewWithFs creates an engine over fs.
func NewWithFs(fs afero.Fs, opts Options) (*Engine, error) {
	e := &Engine{fs: fs}
	for _, pattern := range opts.Exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, serr.NewConfigError("bad exclude pattern", pattern, serr.InvalidConfig, err)
		}
		e.exclude = append(e.exclude, g)
	}
	return e, nil
}

// split resolves the directory to scan and the name prefix to filter by.
// An existing directory is scanned whole; anything else is split into its
// parent and final element.
func (e *Engine) split(inputPath string) (dir, prefix string) {
	if inputPath != "" {
		if ok, _ := afero.IsDir(e.fs, inputPath); ok {
			return inputPath, ""
		}
	}
	if inputPath == "" || strings.HasSuffix(inputPath, string(filepath.Separator)) {
		return inputPath, ""
	}
	dir, prefix = filepath.Split(inputPath)
	if dir == "" {
		dir = "."
	}
	return dir, prefix
}

func (e *Engine) excluded(name string) bool {
	for _, g := range e.exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Candidates returns the sorted completion candidates for inputPath.
func (e *Engine) Candidates(inputPath string) ([]string, error) {
	dir, prefix := e.split(inputPath)
	if dir == "" {
		return nil, serr.NewFileError("nothing to complete", inputPath, serr.InvalidPath, nil)
	}

	ok, err := afero.IsDir(e.fs, dir)
	if err != nil {
		return nil, serr.FromFS(err, "cannot stat directory", dir)
	}
	if !ok {
		return nil, serr.NewFileError("not a directory", dir, serr.NotADirectory, nil)
	}

	entries, err := afero.ReadDir(e.fs, dir)
	if err != nil {
		return nil, serr.FromFS(err, "cannot read directory", dir)
	}

	matched := lo.Filter(entries, func(info os.FileInfo, _ int) bool {
		return strings.HasPrefix(info.Name(), prefix) && !e.excluded(info.Name())
	})
	candidates := lo.Map(matched, func(info os.FileInfo, _ int) string {
		return filepath.Join(dir, info.Name())
	})
	sort.Strings(candidates)
	return candidates, nil
}

// Next returns the completion following current in the cycle computed from
// inputPath. When there is nothing to complete, current is returned as is.
func (e *Engine) Next(inputPath, current string) string {
	candidates, err := e.Candidates(inputPath)
	if err != nil {
		log.LogWithError(err).Debug("completion skipped")
		return current
	}
	if len(candidates) == 0 {
		return current
	}

	index := lo.IndexOf(candidates, filepath.Clean(current))
	if index < 0 || index == len(candidates)-1 {
		return candidates[0]
	}
	return candidates[index+1]
}
