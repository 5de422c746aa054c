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
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

type memObj interface {
	isDir() bool
}

type memFile struct {
	absPath string
	data    []byte
}

func (f *memFile) isDir() bool { return false }

type memDir struct {
	absPath  string
	children map[string]memObj
}

func (d *memDir) isDir() bool { return true }

// InMemFS is an in-memory filesystem implementation primarily intended
// for testing. Paths are slash separated and resolved against the
// working directory given at construction.
type InMemFS struct {
	mu   *sync.RWMutex
	cwd  string
	objs map[string]memObj
}

var _ Filesys = (*InMemFS)(nil)

// EmptyInMemFS creates an empty InMemFS instance.
func EmptyInMemFS(workingDir string) *InMemFS {
	return NewInMemFS(nil, nil, workingDir)
}

// NewInMemFS creates an InMemFS containing the given directories and
// files. cwd must be absolute; relative paths are resolved against it.
func NewInMemFS(dirs []string, files map[string][]byte, cwd string) *InMemFS {
	if cwd == "" {
		cwd = "/"
	}

	if !filepath.IsAbs(cwd) {
		panic("cwd for InMemFS must be an absolute path")
	}

	fs := &InMemFS{
		mu:   &sync.RWMutex{},
		cwd:  cwd,
		objs: map[string]memObj{"/": &memDir{"/", make(map[string]memObj)}},
	}

	for _, dir := range dirs {
		if _, err := fs.mkDirs(fs.abs(dir)); err != nil {
			panic(err)
		}
	}

	for path, data := range files {
		if err := fs.writeFile(fs.abs(path), data); err != nil {
			panic(err)
		}
	}

	return fs
}

func (fs *InMemFS) abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(fs.cwd, path)
}

// Abs converts a path to an absolute path. Already absolute paths are
// returned unaltered.
func (fs *InMemFS) Abs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}

	return filepath.Join(fs.cwd, path), nil
}

// Exists will tell you if a file or directory with a given path already
// exists, and if it does is it a directory.
func (fs *InMemFS) Exists(path string) (exists bool, isDir bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	obj, ok := fs.objs[fs.abs(path)]

	if !ok {
		return false, false
	}

	return true, obj.isDir()
}

// OpenForRead opens a file for reading.
func (fs *InMemFS) OpenForRead(fp string) (io.ReadCloser, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	obj, ok := fs.objs[fs.abs(fp)]

	if !ok {
		return nil, os.ErrNotExist
	} else if obj.isDir() {
		return nil, ErrIsDir
	}

	return io.NopCloser(bytes.NewReader(obj.(*memFile).data)), nil
}

// ReadFile reads the entire contents of a file.
func (fs *InMemFS) ReadFile(fp string) ([]byte, error) {
	r, err := fs.OpenForRead(fp)

	if err != nil {
		return nil, err
	}

	defer r.Close()
	return io.ReadAll(r)
}

type iterEntry struct {
	path  string
	size  int64
	isDir bool
}

// Iter iterates over the files and subdirectories within a given directory,
// optionally recursively. Children are visited in sorted path order.
func (fs *InMemFS) Iter(path string, recursive bool, cb FSIterCB) error {
	fs.mu.RLock()
	entries, err := fs.collect(fs.abs(path), recursive)
	fs.mu.RUnlock()

	if err != nil {
		return err
	}

	for _, entry := range entries {
		if cb(entry.path, entry.size, entry.isDir) {
			return nil
		}
	}

	return nil
}

// collect expects fs.mu to be held and path to be absolute.
func (fs *InMemFS) collect(path string, recursive bool) ([]iterEntry, error) {
	obj, ok := fs.objs[path]

	if !ok {
		return nil, os.ErrNotExist
	} else if !obj.isDir() {
		return nil, ErrIsFile
	}

	dir := obj.(*memDir)
	childPaths := make([]string, 0, len(dir.children))
	for childPath := range dir.children {
		childPaths = append(childPaths, childPath)
	}
	sort.Strings(childPaths)

	var entries []iterEntry
	for _, childPath := range childPaths {
		child := dir.children[childPath]

		var size int64
		if !child.isDir() {
			size = int64(len(child.(*memFile).data))
		}

		entries = append(entries, iterEntry{childPath, size, child.isDir()})

		if recursive && child.isDir() {
			sub, err := fs.collect(childPath, recursive)

			if err != nil {
				return nil, err
			}

			entries = append(entries, sub...)
		}
	}

	return entries, nil
}

type memFileWriter struct {
	fp  string
	fs  *InMemFS
	buf *bytes.Buffer
}

func (w *memFileWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Close commits the buffered contents to the filesystem.
func (w *memFileWriter) Close() error {
	w.fs.mu.Lock()
	defer w.fs.mu.Unlock()

	return w.fs.writeFile(w.fp, w.buf.Bytes())
}

// OpenForWrite opens a file for writing. The contents are held in memory
// and committed when the writer is closed.
func (fs *InMemFS) OpenForWrite(fp string, perm os.FileMode) (io.WriteCloser, error) {
	return &memFileWriter{fp: fs.abs(fp), fs: fs, buf: bytes.NewBuffer(nil)}, nil
}

// WriteFile writes the entire data buffer to a given file. Parent
// directories are created as needed.
func (fs *InMemFS) WriteFile(fp string, data []byte, perm os.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.writeFile(fs.abs(fp), data)
}

// writeFile expects fs.mu to be held (or single-threaded construction)
// and fp to be absolute.
func (fs *InMemFS) writeFile(fp string, data []byte) error {
	if obj, ok := fs.objs[fp]; ok && obj.isDir() {
		return ErrIsDir
	}

	parent, err := fs.mkDirs(filepath.Dir(fp))

	if err != nil {
		return err
	}

	file := &memFile{fp, data}
	parent.children[fp] = file
	fs.objs[fp] = file
	return nil
}

// MkDirs creates a folder and all the parent folders that are necessary to
// create it.
func (fs *InMemFS) MkDirs(path string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	_, err := fs.mkDirs(fs.abs(path))
	return err
}

// mkDirs expects fs.mu to be held (or single-threaded construction) and
// path to be absolute.
func (fs *InMemFS) mkDirs(path string) (*memDir, error) {
	curr := fs.objs["/"].(*memDir)
	currPath := "/"

	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}

		currPath = filepath.Join(currPath, part)
		obj, ok := fs.objs[currPath]

		if !ok {
			child := &memDir{currPath, make(map[string]memObj)}
			curr.children[currPath] = child
			fs.objs[currPath] = child
			curr = child
		} else if !obj.isDir() {
			return nil, errors.New("could not create directory over existing file: " + currPath)
		} else {
			curr = obj.(*memDir)
		}
	}

	return curr, nil
}

// DeleteFile will delete a file at the given path.
func (fs *InMemFS) DeleteFile(path string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	path = fs.abs(path)
	obj, ok := fs.objs[path]

	if !ok {
		return os.ErrNotExist
	} else if obj.isDir() {
		return ErrIsDir
	}

	delete(fs.objs, path)

	if parent, ok := fs.objs[filepath.Dir(path)]; ok && parent.isDir() {
		delete(parent.(*memDir).children, path)
	}

	return nil
}
