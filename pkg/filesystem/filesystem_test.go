package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = logging.MustGetLogger("filesystem_test")

func TestLocalFs(t *testing.T) {
	base := t.TempDir()
	_, err := NewLocalFs(filepath.Join(base, "missing"), testLogger)
	require.Error(t, err)

	fs, err := NewLocalFs(base, testLogger)
	require.NoError(t, err)
	assert.Equal(t, "file://", fs.Protocol())
	assert.Equal(t, base, fs.String())

	_, err = fs.FileList("items", ".json")
	assert.True(t, IsNotFoundError(err))
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, fs.FilePut("items", "b.json", []byte(`{"key":"B"}`), FilePutOptions{}))
	require.NoError(t, fs.FilePut("items", "a.json", []byte(`{"key":"A"}`), FilePutOptions{}))
	require.NoError(t, fs.FilePut("items", "readme.txt", []byte(`fixtures`), FilePutOptions{}))
	require.NoError(t, os.Mkdir(filepath.Join(base, "items", "c.json"), 0755))

	names, err := fs.FileList("items", ".json")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.json"}, names)

	exists, err := fs.FileExists("items", "a.json")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = fs.FileExists("items", "c.json")
	require.NoError(t, err)
	assert.False(t, exists)

	data, err := fs.FileGet("items", "a.json")
	require.NoError(t, err)
	assert.Equal(t, `{"key":"A"}`, string(data))

	_, err = fs.FileGet("items", "z.json")
	assert.True(t, IsNotFoundError(err))
}

func TestGitFs(t *testing.T) {
	base := t.TempDir()
	_, err := NewGitFs(base, testLogger)
	require.Error(t, err)

	repo, err := git.PlainInit(base, false)
	require.NoError(t, err)

	fs, err := NewGitFs(base, testLogger)
	require.NoError(t, err)
	var _ Committer = fs

	require.NoError(t, fs.FilePut("normalized", "HPXL75GC.json", []byte(`{"key":"HPXL75GC"}`), FilePutOptions{}))
	names, err := fs.FileList("normalized", ".json")
	require.NoError(t, err)
	assert.Equal(t, []string{"HPXL75GC.json"}, names)

	require.NoError(t, fs.Commit("normalize fixtures", "zotcheck", "zotcheck@example.org"))
	head, err := repo.Head()
	require.NoError(t, err)
	commit, err := repo.CommitObject(head.Hash())
	require.NoError(t, err)
	assert.Equal(t, "normalize fixtures", commit.Message)
	_, err = commit.File("normalized/HPXL75GC.json")
	require.NoError(t, err)

	// nothing staged
	require.NoError(t, fs.Commit("again", "zotcheck", "zotcheck@example.org"))
	again, err := repo.Head()
	require.NoError(t, err)
	assert.Equal(t, head.Hash(), again.Hash())
}
