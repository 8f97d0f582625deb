package filesum

import "os"

import "github.com/sirgallo/utils"

import "github.com/sirgallo/jenkins"
import "github.com/sirgallo/jenkins/common/mmap"


//============================================= FileSum


// Open
//	Opens a file read only and memory maps it for checksumming.
//	Zero length files are valid and are represented with an empty view, no mapping is created for them.
//	The mapping is a read only alias of the file, so the file contents are never copied to hash them.
func Open(opts FileSumOpts) (*FileSum, error) {
	fSum := &FileSum{ Opened: true }

	var openFileErr error

	fSum.File, openFileErr = os.OpenFile(opts.Filepath, os.O_RDONLY, 0600)
	if openFileErr != nil { return nil, openFileErr }

	fSum.Filepath = fSum.File.Name()

	size, sizeErr := fSum.FileSize()
	if sizeErr != nil { return nil, sizeErr }

	if size > 0 {
		mapped, mmapErr := mmap.Map(fSum.File, mmap.RDONLY, 0)
		if mmapErr != nil { return nil, mmapErr }

		fSum.Data = mapped
	} else { fSum.Data = mmap.MMap{} }

	return fSum, nil
}

// FileSize
//	Determine the size of the underlying file.
func (fSum *FileSum) FileSize() (int, error) {
	stat, statErr := fSum.File.Stat()
	if statErr != nil { return 0, statErr }

	return int(stat.Size()), nil
}

// Sum32
//	The 32 bit little endian jenkins digest of the entire file.
func (fSum *FileSum) Sum32(seed uint32) (uint32, error) {
	if ! fSum.Opened { return 0, ErrClosed }

	return jenkins.HashLittle(fSum.Data, seed), nil
}

// Sum64
//	A 64 bit checksum of the entire file, built from both HashLittle2 digests as (first << 32) | second.
//	Useful as a probably unique identifier for file contents.
func (fSum *FileSum) Sum64(seed1 uint32, seed2 uint32) (uint64, error) {
	if ! fSum.Opened { return 0, ErrClosed }

	pc, pb := jenkins.HashLittle2(fSum.Data, seed1, seed2)
	return (uint64(pc) << 32) | uint64(pb), nil
}

// Close
//	Unmaps the view and closes the file. Safe to call more than once.
func (fSum *FileSum) Close() error {
	if ! fSum.Opened { return nil }
	fSum.Opened = false

	if len(fSum.Data) > 0 {
		unmapErr := fSum.Data.Unmap()
		if unmapErr != nil { return unmapErr }
	}

	fSum.Data = mmap.MMap{}

	if fSum.File != nil {
		closeErr := fSum.File.Close()
		if closeErr != nil { return closeErr }
	}

	fSum.Filepath = utils.GetZero[string]()
	return nil
}
