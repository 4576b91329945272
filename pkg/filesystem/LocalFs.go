package filesystem

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"emperror.dev/errors"
	"github.com/op/go-logging"
)

type LocalFs struct {
	basepath string
	logger   *logging.Logger
}

func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func FolderExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func NewLocalFs(basepath string, logger *logging.Logger) (*LocalFs, error) {
	if !FolderExists(basepath) {
		return nil, errors.Errorf("path %v does not exists", basepath)
	}
	return &LocalFs{basepath: basepath, logger: logger}, nil
}

func (fs *LocalFs) Protocol() string {
	return "file://"
}

func (fs *LocalFs) String() string {
	return fs.basepath
}

func (fs *LocalFs) FileExists(folder, name string) (bool, error) {
	return FileExists(filepath.Join(fs.basepath, folder, name)), nil
}

func (fs *LocalFs) FolderCreate(folder string) error {
	path := filepath.Join(fs.basepath, folder)
	if FolderExists(path) {
		return nil
	}
	fs.logger.Debugf("create folder %v", path)
	if err := os.MkdirAll(path, 0755); err != nil {
		return errors.Wrapf(err, "cannot create folder %v", path)
	}
	return nil
}

func (fs *LocalFs) FileList(folder, suffix string) ([]string, error) {
	path := filepath.Join(fs.basepath, folder)
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{err: err}
		}
		return nil, errors.Wrapf(err, "cannot read folder %v", path)
	}
	result := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		result = append(result, entry.Name())
	}
	sort.Strings(result)
	return result, nil
}

func (fs *LocalFs) FileGet(folder, name string) ([]byte, error) {
	path := filepath.Join(folder, name)
	data, err := os.ReadFile(filepath.Join(fs.basepath, path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{err: err}
		}
		return nil, errors.Wrapf(err, "cannot read file %v", path)
	}
	return data, nil
}

func (fs *LocalFs) FilePut(folder, name string, data []byte, opts FilePutOptions) error {
	if err := fs.FolderCreate(folder); err != nil {
		return errors.Wrapf(err, "cannot create folder %v", folder)
	}
	path := filepath.Join(fs.basepath, folder, name)
	fs.logger.Debugf("writing data to: %v", path)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "cannot write data to %v", path)
	}
	return nil
}
