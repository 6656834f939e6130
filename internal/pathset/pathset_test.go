// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pathset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-FFFFFF/maker/internal/fsys"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTree(t *testing.T, files ...string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(f), 0o755))
		require.NoError(t, afero.WriteFile(fs, f, []byte(f), 0o644))
	}

	return fs
}

func TestLiteral(t *testing.T) {
	for _, p := range []string{"a.txt", "/does/not/exist", "", "dir/*.go"} {
		ps := Literal(p)
		require.Len(t, ps, 1)
		assert.Equal(t, p, ps[0], "literal paths are returned verbatim")
	}
}

func TestGlobFs(t *testing.T) {
	fs := newTree(t,
		"/src/b.txt",
		"/src/a.txt",
		"/src/c.md",
		"/src/sub/d.txt",
		"/src/sub/deeper/e.txt",
	)

	tests := []struct {
		name    string
		pattern string
		want    PathSet
	}{
		{
			name:    "star in one directory, lexical order",
			pattern: "/src/*.txt",
			want:    PathSet{"/src/a.txt", "/src/b.txt"},
		},
		{
			name:    "double star crosses directories",
			pattern: "/src/**/*.txt",
			want:    PathSet{"/src/a.txt", "/src/b.txt", "/src/sub/d.txt", "/src/sub/deeper/e.txt"},
		},
		{
			name:    "alternatives",
			pattern: "/src/{a.txt,c.md}",
			want:    PathSet{"/src/a.txt", "/src/c.md"},
		},
		{
			name:    "no meta and existing",
			pattern: "/src/c.md",
			want:    PathSet{"/src/c.md"},
		},
		{
			name:    "no meta and missing",
			pattern: "/src/nope.md",
			want:    PathSet{},
		},
		{
			name:    "zero matches",
			pattern: "/src/*.go",
			want:    PathSet{},
		},
		{
			name:    "missing base directory",
			pattern: "/elsewhere/*.txt",
			want:    PathSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GlobFs(fs, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// openFailFs fails every Open of one path, as an unreadable directory would.
type openFailFs struct {
	afero.Fs
	fail string
}

func (o openFailFs) Open(name string) (afero.File, error) {
	if filepath.Clean(name) == o.fail {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}

	return o.Fs.Open(name)
}

func TestGlobFs_UnreadableEntriesDropped(t *testing.T) {
	fs := openFailFs{
		Fs:   newTree(t, "/src/a.txt", "/src/sub/d.txt", "/src/z/e.txt"),
		fail: filepath.FromSlash("/src/sub"),
	}

	got, err := GlobFs(fs, "/src/**/*.txt")
	require.NoError(t, err)
	assert.Equal(t, PathSet{"/src/a.txt", "/src/z/e.txt"}, got)
}

func TestGlobFs_BadPattern(t *testing.T) {
	fs := newTree(t, "/src/a.txt")

	for _, p := range []string{"/src/[a.txt", "/src/{a,b", "["} {
		got, err := GlobFs(fs, p)
		require.Error(t, err, p)
		assert.ErrorIs(t, err, ErrBadPattern)
		assert.Nil(t, got, "no partial result")
	}
}

func TestGlob_UsesFsFactory(t *testing.T) {
	fs := newTree(t, "/proj/x.go", "/proj/y.go")
	stubs := gostub.Stub(&fsys.FsFactory, func() afero.Fs { return fs })
	defer stubs.Reset()

	got, err := Glob("/proj/*.go")
	require.NoError(t, err)
	assert.Equal(t, PathSet{"/proj/x.go", "/proj/y.go"}, got)

	assert.Equal(t, PathSet{"/proj/x.go", "/proj/y.go"}, MustGlob("/proj/*.go"))
}

func TestMustGlob_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustGlob("/[unterminated")
	})
}

func TestGlob_RelativePatternOnDisk(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	fs := afero.NewOsFs()
	require.NoError(t, fs.MkdirAll("assets/img", 0o755))
	require.NoError(t, afero.WriteFile(fs, "assets/app.css", nil, 0o644))
	require.NoError(t, afero.WriteFile(fs, "assets/img/logo.png", nil, 0o644))

	got, err := GlobFs(fs, "assets/**/*.*")
	require.NoError(t, err)
	assert.Equal(t, PathSet{
		filepath.Join("assets", "app.css"),
		filepath.Join("assets", "img", "logo.png"),
	}, got, "relative patterns yield relative paths")

	got, err = GlobFs(fs, "*")
	require.NoError(t, err)
	assert.Equal(t, PathSet{"assets"}, got)
}
