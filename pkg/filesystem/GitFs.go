package filesystem

import (
	"path/filepath"
	"time"

	"emperror.dev/errors"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/op/go-logging"
)

// GitFs is a LocalFs inside a git worktree. New files are added to the index.
type GitFs struct {
	localFs *LocalFs
	repo    *git.Repository
	logger  *logging.Logger
}

func NewGitFs(basepath string, logger *logging.Logger) (*GitFs, error) {
	localfs, err := NewLocalFs(basepath, logger)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create local fs")
	}
	gitFs := &GitFs{
		localFs: localfs,
		logger:  logger,
	}
	if err := gitFs.Open(); err != nil {
		return nil, errors.Wrap(err, "cannot open gitfs")
	}
	return gitFs, nil
}

func (fs *GitFs) String() string {
	return fs.localFs.basepath
}

func (fs *GitFs) Protocol() string {
	return "git+file://"
}

func (fs *GitFs) Open() error {
	var err error
	fs.repo, err = git.PlainOpen(fs.localFs.basepath)
	if err != nil {
		return errors.Wrapf(err, "cannot open git repository at %v", fs.localFs.basepath)
	}
	return nil
}

func (fs *GitFs) FileExists(folder, name string) (bool, error) {
	return fs.localFs.FileExists(folder, name)
}

func (fs *GitFs) FolderCreate(folder string) error {
	return fs.localFs.FolderCreate(folder)
}

func (fs *GitFs) FileList(folder, suffix string) ([]string, error) {
	return fs.localFs.FileList(folder, suffix)
}

func (fs *GitFs) FileGet(folder, name string) ([]byte, error) {
	return fs.localFs.FileGet(folder, name)
}

func (fs *GitFs) FilePut(folder, name string, data []byte, opts FilePutOptions) error {
	if err := fs.localFs.FilePut(folder, name, data, opts); err != nil {
		return err
	}
	w, err := fs.repo.Worktree()
	if err != nil {
		return errors.Wrapf(err, "cannot open worktree of %v", fs.localFs.basepath)
	}
	fname := filepath.ToSlash(filepath.Join(folder, name))
	fs.logger.Debugf("adding %v to git", fname)
	if _, err := w.Add(fname); err != nil {
		return errors.Wrapf(err, "cannot add %v/%v to repository", fs.localFs.basepath, fname)
	}
	return nil
}

// Commit records the staged files. A clean worktree is not an error.
func (fs *GitFs) Commit(msg, name, email string) error {
	w, err := fs.repo.Worktree()
	if err != nil {
		return errors.Wrap(err, "cannot get worktree")
	}
	status, err := w.Status()
	if err != nil {
		return errors.Wrap(err, "cannot get worktree status")
	}
	if status.IsClean() {
		fs.logger.Infof("nothing to commit in %v", fs.localFs.basepath)
		return nil
	}
	hash, err := w.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  name,
			Email: email,
			When:  time.Now(),
		},
	})
	if err != nil {
		return errors.Wrap(err, "cannot commit")
	}
	obj, err := fs.repo.CommitObject(hash)
	if err != nil {
		return errors.Wrap(err, "cannot load commit")
	}
	fs.logger.Infof("committed %v", obj.Hash)
	return nil
}
