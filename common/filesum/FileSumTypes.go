package filesum

import "errors"
import "os"

import "github.com/sirgallo/jenkins/common/mmap"


// FileSumOpts initialize the FileSum
type FileSumOpts struct {
	// Filepath: path to the file being checksummed
	Filepath string
}

// FileSum holds an open file and the read only memory mapped view the digests are computed over
type FileSum struct {
	// Filepath: path to the mapped file
	Filepath string
	// File: the open file handle
	File *os.File
	// Opened: flag indicating if the file is currently open and mapped
	Opened bool
	// Data: the memory mapped file as a byte slice. Empty files carry an empty, unmapped view
	Data mmap.MMap
}

// ErrClosed is returned when a digest is requested after Close.
var ErrClosed = errors.New("file sum has been closed")
