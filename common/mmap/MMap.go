package mmap

import "errors"
import "os"

import "golang.org/x/sys/unix"


//============================================= MMap


// Map
//	Memory maps an entire file.
//
// Parameters:
//	file: the file to be memory mapped
//	prot: the protection level on the mapping (RDONLY, RDWR, COPY, EXEC)
//	flags: if ANON is set, file is ignored and memory is anonymously mapped
//
// Returns:
//	The byte slice view over the mapped file or an error
func Map(file *os.File, prot, flags int) (MMap, error) {
	return MapRegion(file, -1, prot, flags, 0)
}

// MapRegion
//	Memory maps a region of a file. A negative length maps the remainder of the file from offset.
//
// Parameters:
//	file: the file to be memory mapped
//	length: the length in bytes to be mapped
//	prot: the protection level on the mapping (RDONLY, RDWR, COPY, EXEC)
//	flags: if ANON is set, file is ignored and memory is anonymously mapped
//	offset: where in the file the mapping begins, must be page aligned
//
// Returns:
//	The byte slice view over the mapped region or an error
func MapRegion(file *os.File, length int, prot, flags int, offset int64) (MMap, error) {
	if offset % int64(os.Getpagesize()) != 0 {
		return nil, errors.New("offset parameter must be a multiple of the system's page size")
	}

	var fileDescriptor uintptr

	if flags & ANON == 0 {
		fileDescriptor = uintptr(file.Fd())

		if length < 0 {
			fileStat, statErr := file.Stat()
			if statErr != nil { return nil, statErr }

			length = int(fileStat.Size() - offset)
		}

		if length == 0 { return nil, errors.New("cannot map an empty region") }
	} else {
		if length <= 0 { return nil, errors.New("anonymous mapping requires non-zero length") }
		fileDescriptor = ^uintptr(0)
	}

	return mmapHelper(length, uintptr(prot), uintptr(flags), fileDescriptor, offset)
}

// mmapHelper
//	Utility function translating the package protection and flag bits into unix mmap arguments.
//	COPY downgrades the mapping from MAP_SHARED to MAP_PRIVATE so writes never reach the file.
func mmapHelper(length int, inprot, inflags, fileDescriptor uintptr, offset int64) ([]byte, error) {
	flags := unix.MAP_SHARED
	prot := unix.PROT_READ

	switch {
		case inprot & COPY != 0:
			prot |= unix.PROT_WRITE
			flags = unix.MAP_PRIVATE
		case inprot & RDWR != 0:
			prot |= unix.PROT_WRITE
	}

	if inprot & EXEC != 0 { prot |= unix.PROT_EXEC }
	if inflags & ANON != 0 { flags |= unix.MAP_ANON }

	mapped, mmapErr := unix.Mmap(int(fileDescriptor), offset, length, prot, flags)
	if mmapErr != nil { return nil, mmapErr }

	return mapped, nil
}

// Flush
//	Synchronously writes any modified pages in the mapping back to the file.
//
// Returns:
//	nil or error
func (mapped MMap) Flush() error {
	return unix.Msync(mapped, unix.MS_SYNC)
}

// Unmap
//	Removes the mapping. The view must not be used after unmapping.
//
// Returns:
//	nil or error
func (mapped MMap) Unmap() error {
	return unix.Munmap(mapped)
}
