// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package maker

import (
	"context"
	"errors"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/matt-FFFFFF/maker/internal/fsys"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memFs replaces the default filesystem with an in-memory one for the rest of the test.
func memFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	stubs := gostub.Stub(&fsys.FsFactory, func() afero.Fs { return fs })
	t.Cleanup(stubs.Reset)

	return fs
}

func touch(t *testing.T, fs afero.Fs, path string, mtime time.Time) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(path), 0o644))
	require.NoError(t, fs.Chtimes(path, mtime, mtime))
}

func TestPath(t *testing.T) {
	assert.Equal(t, PathSet{"does/not/exist"}, Path("does/not/exist"))
}

func TestGlobAndCopy(t *testing.T) {
	fs := memFs(t)
	old := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, CreateDir("/proj/assets/img"))
	require.NoError(t, CreateDir("/proj/dist"))
	touch(t, fs, "/proj/assets/a.css", old)
	touch(t, fs, "/proj/assets/b.css", old)
	touch(t, fs, "/proj/assets/img/logo.png", old)

	css, err := Glob("/proj/assets/*.css")
	require.NoError(t, err)
	assert.Equal(t, PathSet{"/proj/assets/a.css", "/proj/assets/b.css"}, css)

	all := MustGlob("/proj/assets/**/*.*")
	assert.Len(t, all, 3)

	require.NoError(t, Copy(css, "/proj/dist"))

	got, err := afero.ReadFile(fs, "/proj/dist/a.css")
	require.NoError(t, err)
	assert.Equal(t, "/proj/assets/a.css", string(got))

	newer, err := IsNewer("/proj/dist/a.css", "/proj/assets/a.css")
	require.NoError(t, err)
	assert.True(t, newer)

	var events []CopyEvent

	report, err := CopyWith(t.Context(), css, "/proj/dist", WithObserver(func(_ context.Context, ev CopyEvent) {
		events = append(events, ev)
	}))
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, 2, report.Count(UpToDate))
}

func TestCopy_NoFileName(t *testing.T) {
	memFs(t)
	require.NoError(t, CreateDir("/dist"))

	err := Copy(Path("/"), "/dist")
	assert.ErrorIs(t, err, ErrNoFileName)
}

func TestCopy_MissingSourceIsSilent(t *testing.T) {
	memFs(t)

	assert.NoError(t, Copy(Path("/nope.txt"), "/out.txt"))
}

func TestGlob_BadPattern(t *testing.T) {
	memFs(t)

	_, err := Glob("[")
	require.ErrorIs(t, err, ErrBadPattern)
	assert.Panics(t, func() { MustGlob("[") })
}

func TestIsNewer_Missing(t *testing.T) {
	memFs(t)

	_, err := IsNewer("/a", "/b")
	assert.ErrorIs(t, err, fsys.ErrStat)
}

func TestEnvOr(t *testing.T) {
	t.Setenv("MAKER_TEST_SET", "value")
	t.Setenv("MAKER_TEST_EMPTY", "")

	assert.Equal(t, "value", EnvOr("MAKER_TEST_SET", "def"))
	assert.Empty(t, EnvOr("MAKER_TEST_EMPTY", "def"), "empty counts as set")
	assert.Equal(t, "def", EnvOr("MAKER_TEST_SURELY_UNSET_42", "def"))
}

func TestIgnore(t *testing.T) {
	boom := errors.New("boom")

	assert.NoError(t, Ignore(42, nil))
	assert.ErrorIs(t, Ignore("x", boom), boom)
}

func TestRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX userland")
	}

	status, err := Run("sh", "-c", "exit 2")
	require.NoError(t, err)
	assert.Equal(t, 2, status.Code)

	_, err = Run("surely-not-a-real-command-7f3a")
	assert.ErrorIs(t, err, ErrCouldNotStartProcess)
}

func TestSh(t *testing.T) {
	status, err := Sh("exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, status.Code)

	status, err = Sh("true")
	require.NoError(t, err)
	assert.True(t, status.Success())
}

func TestCreateDir_RealFs(t *testing.T) {
	dir := t.TempDir() + "/a/b/c"

	require.NoError(t, CreateDir(dir))
	require.NoError(t, CreateDir(dir), "existing directory is fine")

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
