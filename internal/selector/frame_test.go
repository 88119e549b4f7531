package selector_test

import (
	"path/filepath"
	"testing"

	"filedrop/internal/completion"
	"filedrop/internal/selector"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a Completer that remembers its calls and cycles through fixed names.
type recorder struct {
	calls [][2]string
	names []string
}

func (r *recorder) Next(input, current string) string {
	r.calls = append(r.calls, [2]string{input, current})
	for i, n := range r.names {
		if n == current {
			return r.names[(i+1)%len(r.names)]
		}
	}
	return r.names[0]
}

func TestPollReportsOnce(t *testing.T) {
	f := selector.New(&recorder{names: []string{"x"}})

	_, ok := f.Poll()
	assert.False(t, ok, "nothing committed yet")

	f.Edit("/tmp/a.txt")
	f.Enter()
	path, ok := f.Poll()
	require.True(t, ok)
	assert.Equal(t, "/tmp/a.txt", path)

	_, ok = f.Poll()
	assert.False(t, ok, "no duplicate report on the following frame")
}

func TestSetPickedPath(t *testing.T) {
	f := selector.New(&recorder{names: []string{"x"}})
	f.Edit("/tmp/a")
	f.Tab()
	require.NotEmpty(t, f.CycleBase())

	f.SetPickedPath("/home/me/dropped.txt")
	assert.Equal(t, "/home/me/dropped.txt", f.Path())
	assert.Empty(t, f.CycleBase(), "a dropped file ends the cycle")

	path, ok := f.Poll()
	require.True(t, ok)
	assert.Equal(t, "/home/me/dropped.txt", path)
	_, ok = f.Poll()
	assert.False(t, ok)
}

func TestTabFreezesCycleBase(t *testing.T) {
	rec := &recorder{names: []string{"/d/a1", "/d/a2"}}
	f := selector.New(rec)

	f.Edit("/d/a")
	f.Tab()
	assert.Equal(t, "/d/a1", f.Path())
	assert.Equal(t, "/d/a", f.CycleBase())

	f.Tab()
	assert.Equal(t, "/d/a2", f.Path())
	f.Tab()
	assert.Equal(t, "/d/a1", f.Path())

	assert.Equal(t, [][2]string{{"/d/a", "/d/a"}, {"/d/a", "/d/a1"}, {"/d/a", "/d/a2"}}, rec.calls)

	_, ok := f.Poll()
	assert.False(t, ok, "Tab never commits")
}

func TestEditResetsCycle(t *testing.T) {
	rec := &recorder{names: []string{"/d/a1", "/d/b1"}}
	f := selector.New(rec)

	f.Edit("/d/a")
	f.Tab()
	f.Edit("/d/a1/")
	assert.Empty(t, f.CycleBase())

	f.Tab()
	assert.Equal(t, "/d/a1/", f.CycleBase(), "next Tab starts from the newly typed text")
}

func TestEditWithSameTextKeepsCycle(t *testing.T) {
	f := selector.New(&recorder{names: []string{"/d/a1", "/d/a2"}})
	f.Edit("/d/a")
	f.Tab()

	// Toolkits echo programmatic text updates back as change events.
	f.Edit(f.Path())
	assert.Equal(t, "/d/a", f.CycleBase())
}

func TestEnterKeepsCycle(t *testing.T) {
	f := selector.New(&recorder{names: []string{"/d/a1", "/d/a2"}})
	f.Edit("/d/a")
	f.Tab()
	f.Enter()

	path, ok := f.Poll()
	require.True(t, ok)
	assert.Equal(t, "/d/a1", path)
	assert.Equal(t, "/d/a", f.CycleBase())
}

func TestCompleterFunc(t *testing.T) {
	f := selector.New(selector.CompleterFunc(func(input, current string) string {
		return input + "!"
	}))
	f.Edit("x")
	f.Tab()
	assert.Equal(t, "x!", f.Path())
}

func TestWithCompletionEngine(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"a.txt", "ab.txt", "b.txt"} {
		require.NoError(t, afero.WriteFile(fs, filepath.Join("/tmp/x", name), nil, 0644))
	}
	engine, err := completion.NewWithFs(fs, completion.Options{})
	require.NoError(t, err)

	f := selector.New(engine)
	f.Edit("/tmp/x/a")
	f.Tab()
	assert.Equal(t, "/tmp/x/a.txt", f.Path())
	f.Tab()
	assert.Equal(t, "/tmp/x/ab.txt", f.Path())
	f.Tab()
	assert.Equal(t, "/tmp/x/a.txt", f.Path())

	f.Edit("/tmp/x/b")
	f.Tab()
	assert.Equal(t, "/tmp/x/b.txt", f.Path())
	f.Tab()
	assert.Equal(t, "/tmp/x/b.txt", f.Path(), "a single candidate cycles onto itself")
}
