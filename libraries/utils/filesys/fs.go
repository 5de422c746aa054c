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

// Package filesys provides a filesystem abstraction so that theme
// loading, path existence probes, and directory scans can run against
// either the local disk or an in-memory filesystem in tests.
package filesys

import (
	"errors"
	"io"
	"os"
)

// ErrIsDir is the error returned when a file operation is attempted on a directory.
var ErrIsDir = errors.New("operation not valid on a directory")

// ErrIsFile is the error returned when a directory operation is attempted on a file.
var ErrIsFile = errors.New("operation not valid on a file")

// FSIterCB specifies the signature of the function that will be called for
// every item found while iterating.
type FSIterCB func(path string, size int64, isDir bool) (stop bool)

// ReadableFS is an interface providing read access to objects in a filesystem.
type ReadableFS interface {
	// OpenForRead opens a file for reading.
	OpenForRead(fp string) (io.ReadCloser, error)

	// ReadFile reads the entire contents of a file.
	ReadFile(fp string) ([]byte, error)

	// Exists will tell you if a file or directory with a given path already
	// exists, and if it does is it a directory.
	Exists(path string) (exists bool, isDir bool)

	// Iter iterates over the files and subdirectories within a given
	// directory, optionally recursively.
	Iter(directory string, recursive bool, cb FSIterCB) error

	// Abs returns the absolute path of the given path.
	Abs(path string) (string, error)
}

// WritableFS is an interface providing write access to objects in a filesystem.
type WritableFS interface {
	// OpenForWrite opens a file for writing. The file will be created if it
	// does not exist, and overwritten if it does.
	OpenForWrite(fp string, perm os.FileMode) (io.WriteCloser, error)

	// WriteFile writes the entire data buffer to a given file. The file will
	// be created if it does not exist, and overwritten if it does.
	WriteFile(fp string, data []byte, perm os.FileMode) error

	// MkDirs creates a folder and all the parent folders that are necessary
	// to create it.
	MkDirs(path string) error

	// DeleteFile will delete a file at the given path.
	DeleteFile(path string) error
}

// Filesys is an interface providing read and write access to the filesystem.
type Filesys interface {
	ReadableFS
	WritableFS
}
