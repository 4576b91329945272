package filesystem

import (
	"fmt"

	"emperror.dev/errors"
)

const ErrNotFound = errors.Sentinel("file not found")

type NotFoundError struct {
	err error
}

func (nf *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %v", nf.err)
}

func (nf *NotFoundError) Unwrap() error {
	return nf.err
}

func (nf *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func IsNotFoundError(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// FilePutOptions represents options specified by user for FilePut call
type FilePutOptions struct {
	ContentType string
}

// FileSystem stores item fixtures. A folder is a directory for local stores and a bucket for s3.
type FileSystem interface {
	FolderCreate(folder string) error
	// FileList returns the names in folder ending with suffix, sorted.
	FileList(folder, suffix string) ([]string, error)
	FileExists(folder, name string) (bool, error)
	FileGet(folder, name string) ([]byte, error)
	FilePut(folder, name string, data []byte, opts FilePutOptions) error
	String() string
	Protocol() string
}

// Committer is implemented by stores that record writes in a version history.
type Committer interface {
	Commit(msg, name, email string) error
}
