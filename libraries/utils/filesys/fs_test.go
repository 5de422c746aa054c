// Copyright 2023 Marqueeworks, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package filesys

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// filesystems under test, keyed by name. The local filesystem is rooted in a
// temp dir so the test cases can use the same relative paths for both.
func makeFilesystems(t *testing.T) map[string]Filesys {
	return map[string]Filesys{
		"inmem": EmptyInMemFS("/test"),
		"local": rootedLocal{t.TempDir()},
	}
}

// rootedLocal prefixes relative paths with a temp root so LocalFS tests
// do not touch the real working directory.
type rootedLocal struct {
	root string
}

var _ Filesys = rootedLocal{}

func (fs rootedLocal) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(fs.root, path)
}

func (fs rootedLocal) OpenForRead(fp string) (io.ReadCloser, error) {
	return LocalFS.OpenForRead(fs.resolve(fp))
}

func (fs rootedLocal) ReadFile(fp string) ([]byte, error) {
	return LocalFS.ReadFile(fs.resolve(fp))
}

func (fs rootedLocal) Exists(path string) (exists bool, isDir bool) {
	return LocalFS.Exists(fs.resolve(path))
}

func (fs rootedLocal) Iter(directory string, recursive bool, cb FSIterCB) error {
	return LocalFS.Iter(fs.resolve(directory), recursive, cb)
}

func (fs rootedLocal) Abs(path string) (string, error) {
	return LocalFS.Abs(fs.resolve(path))
}

func (fs rootedLocal) OpenForWrite(fp string, perm os.FileMode) (io.WriteCloser, error) {
	return LocalFS.OpenForWrite(fs.resolve(fp), perm)
}

func (fs rootedLocal) WriteFile(fp string, data []byte, perm os.FileMode) error {
	return LocalFS.WriteFile(fs.resolve(fp), data, perm)
}

func (fs rootedLocal) MkDirs(path string) error {
	return LocalFS.MkDirs(fs.resolve(path))
}

func (fs rootedLocal) DeleteFile(path string) error {
	return LocalFS.DeleteFile(fs.resolve(path))
}

func TestFilesysReadWrite(t *testing.T) {
	for fsName, fs := range makeFilesystems(t) {
		t.Run(fsName, func(t *testing.T) {
			require.NoError(t, fs.MkDirs("themes/basic"))

			data := []byte("<theme><version>3</version></theme>")
			require.NoError(t, fs.WriteFile("themes/basic/theme.xml", data, os.ModePerm))

			read, err := fs.ReadFile("themes/basic/theme.xml")
			require.NoError(t, err)
			assert.Equal(t, data, read)

			exists, isDir := fs.Exists("themes/basic/theme.xml")
			assert.True(t, exists)
			assert.False(t, isDir)

			exists, isDir = fs.Exists("themes/basic")
			assert.True(t, exists)
			assert.True(t, isDir)

			exists, _ = fs.Exists("themes/missing.xml")
			assert.False(t, exists)
		})
	}
}

func TestFilesysOpenForRead(t *testing.T) {
	for fsName, fs := range makeFilesystems(t) {
		t.Run(fsName, func(t *testing.T) {
			require.NoError(t, fs.MkDirs("dir"))
			require.NoError(t, fs.WriteFile("dir/file.txt", []byte("contents"), os.ModePerm))

			r, err := fs.OpenForRead("dir/file.txt")
			require.NoError(t, err)
			require.NoError(t, r.Close())

			_, err = fs.OpenForRead("dir/absent.txt")
			assert.ErrorIs(t, err, os.ErrNotExist)

			_, err = fs.OpenForRead("dir")
			assert.ErrorIs(t, err, ErrIsDir)
		})
	}
}

func TestFilesysOpenForWrite(t *testing.T) {
	for fsName, fs := range makeFilesystems(t) {
		t.Run(fsName, func(t *testing.T) {
			require.NoError(t, fs.MkDirs("out"))

			w, err := fs.OpenForWrite("out/report.txt", os.ModePerm)
			require.NoError(t, err)

			_, err = w.Write([]byte("hello"))
			require.NoError(t, err)
			require.NoError(t, w.Close())

			read, err := fs.ReadFile("out/report.txt")
			require.NoError(t, err)
			assert.Equal(t, []byte("hello"), read)
		})
	}
}

func TestFilesysIter(t *testing.T) {
	for fsName, fs := range makeFilesystems(t) {
		t.Run(fsName, func(t *testing.T) {
			require.NoError(t, fs.MkDirs("scan/nested"))
			require.NoError(t, fs.WriteFile("scan/a.xml", []byte("a"), os.ModePerm))
			require.NoError(t, fs.WriteFile("scan/nested/b.xml", []byte("bb"), os.ModePerm))

			var files []string
			var total int64
			err := fs.Iter("scan", true, func(path string, size int64, isDir bool) bool {
				if !isDir {
					files = append(files, filepath.Base(path))
					total += size
				}
				return false
			})
			require.NoError(t, err)

			sort.Strings(files)
			assert.Equal(t, []string{"a.xml", "b.xml"}, files)
			assert.Equal(t, int64(3), total)

			// Non-recursive iteration sees only direct children.
			var direct []string
			err = fs.Iter("scan", false, func(path string, size int64, isDir bool) bool {
				direct = append(direct, filepath.Base(path))
				return false
			})
			require.NoError(t, err)

			sort.Strings(direct)
			assert.Equal(t, []string{"a.xml", "nested"}, direct)

			// Stopping early terminates without error.
			count := 0
			err = fs.Iter("scan", true, func(path string, size int64, isDir bool) bool {
				count++
				return true
			})
			require.NoError(t, err)
			assert.Equal(t, 1, count)
		})
	}
}

func TestFilesysDelete(t *testing.T) {
	for fsName, fs := range makeFilesystems(t) {
		t.Run(fsName, func(t *testing.T) {
			require.NoError(t, fs.MkDirs("del"))
			require.NoError(t, fs.WriteFile("del/file.txt", []byte("x"), os.ModePerm))

			require.NoError(t, fs.DeleteFile("del/file.txt"))

			exists, _ := fs.Exists("del/file.txt")
			assert.False(t, exists)

			assert.ErrorIs(t, fs.DeleteFile("del/file.txt"), os.ErrNotExist)
			assert.ErrorIs(t, fs.DeleteFile("del"), ErrIsDir)
		})
	}
}

func TestInMemFSAbs(t *testing.T) {
	fs := NewInMemFS([]string{"sub"}, map[string][]byte{"sub/f.txt": []byte("f")}, "/work")

	abs, err := fs.Abs("sub/f.txt")
	require.NoError(t, err)
	assert.Equal(t, "/work/sub/f.txt", abs)

	abs, err = fs.Abs("/already/abs")
	require.NoError(t, err)
	assert.Equal(t, "/already/abs", abs)

	exists, isDir := fs.Exists("/work/sub")
	assert.True(t, exists)
	assert.True(t, isDir)
}
