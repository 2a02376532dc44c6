package common

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/edsrzf/mmap-go"
)

// FileStream reads a file through a memory mapping when the platform allows
// it, falling back to plain file reads when mapping fails.
type FileStream struct {
	file           *os.File
	filePosition   int64
	fileSize       int64
	isMemoryMapped bool
	isOpen         bool
	mmapFile       mmap.MMap
}

func NewFileStream(path string) (*FileStream, error) {
	file, openErr := os.Open(path)
	if openErr != nil {
		return nil, errors.Wrapf(openErr, "failed to open file %s", path)
	}

	stat, statErr := file.Stat()
	if statErr != nil {
		file.Close()
		return nil, errors.Wrapf(statErr, "failed to read information while opening file %s", path)
	}

	mmapFile, mmapErr := mmap.Map(file, mmap.RDONLY, 0)
	if mmapErr != nil {
		return &FileStream{
			file:     file,
			fileSize: stat.Size(),
			isOpen:   true,
		}, nil
	}

	return &FileStream{
		file:           file,
		fileSize:       stat.Size(),
		isMemoryMapped: true,
		isOpen:         true,
		mmapFile:       mmapFile,
	}, nil
}

func (f *FileStream) Close() error {
	if !f.isOpen {
		return nil
	}

	f.filePosition = -1
	f.fileSize = -1
	f.isOpen = false

	if f.isMemoryMapped {
		unmapErr := f.mmapFile.Unmap()
		if closeErr := f.file.Close(); closeErr != nil {
			return closeErr
		}

		return unmapErr
	}

	return f.file.Close()
}

func (f *FileStream) Position() int64 {
	return f.filePosition
}

func (f *FileStream) Read(b []byte) (int, error) {
	if f.isMemoryMapped {
		if f.filePosition >= f.fileSize {
			return 0, io.EOF
		}

		requestedByteCount := int64(len(b))
		endIndex := f.filePosition + requestedByteCount
		var err error

		if endIndex >= f.fileSize {
			endIndex = f.fileSize
			err = io.EOF
		}

		bytesCopied := copy(b, f.mmapFile[f.filePosition:endIndex])

		f.filePosition += int64(bytesCopied)

		return bytesCopied, err
	}

	bytesRead, readErr := f.file.Read(b)
	if bytesRead == 0 || (readErr != nil && readErr != io.EOF) {
		return bytesRead, readErr
	}

	f.filePosition += int64(bytesRead)

	return bytesRead, nil
}

// ReadAll returns the remaining contents of the stream from the current
// position. Memory-mapped bytes are copied so callers may hold the result
// past Close.
func (f *FileStream) ReadAll() ([]byte, error) {
	if !f.isOpen {
		return nil, errors.New("stream is closed")
	}

	if f.isMemoryMapped {
		remaining := make([]byte, f.fileSize-f.filePosition)
		copy(remaining, f.mmapFile[f.filePosition:])
		f.filePosition = f.fileSize

		return remaining, nil
	}

	contents, readErr := io.ReadAll(f.file)
	if readErr != nil {
		return nil, errors.Wrap(readErr, "failed to read stream contents")
	}

	f.filePosition += int64(len(contents))

	return contents, nil
}

func (f *FileStream) Seek(offset int64, whence int) (int64, error) {
	if f.isMemoryMapped {
		switch whence {
		case io.SeekCurrent:
			f.filePosition += offset
		case io.SeekEnd:
			f.filePosition = f.fileSize + offset
		case io.SeekStart:
			f.filePosition = offset
		}

		return f.filePosition, nil
	}

	newOffset, seekErr := f.file.Seek(offset, whence)
	if seekErr != nil {
		return newOffset, seekErr
	}

	f.filePosition = newOffset

	return f.filePosition, nil
}

func (f *FileStream) Size() int64 {
	return f.fileSize
}
