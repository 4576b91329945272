package filesystem

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"emperror.dev/errors"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type S3Fs struct {
	s3       *minio.Client
	endpoint string
}

func NewS3Fs(endpoint string,
	accessKeyId string,
	secretAccessKey string,
	useSSL bool) (*S3Fs, error) {
	s3, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyId, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to s3 instance")
	}
	return &S3Fs{s3: s3, endpoint: endpoint}, nil
}

func (fs *S3Fs) Protocol() string {
	return fmt.Sprintf("s3://%s", fs.endpoint)
}

func (fs *S3Fs) String() string {
	return fs.s3.EndpointURL().String()
}

func notFound(err error) bool {
	var s3Err minio.ErrorResponse
	return errors.As(err, &s3Err) && s3Err.StatusCode == http.StatusNotFound
}

func (fs *S3Fs) FileExists(folder, name string) (bool, error) {
	if _, err := fs.s3.StatObject(context.Background(), folder, name, minio.StatObjectOptions{}); err != nil {
		// no file no error
		if notFound(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "cannot get file info for %v/%v", folder, name)
	}
	return true, nil
}

func (fs *S3Fs) FolderCreate(folder string) error {
	found, err := fs.s3.BucketExists(context.Background(), folder)
	if err != nil {
		return errors.Wrapf(err, "cannot check for bucket %s", folder)
	}
	if found {
		return nil
	}
	if err := fs.s3.MakeBucket(context.Background(), folder, minio.MakeBucketOptions{}); err != nil {
		return errors.Wrapf(err, "cannot create bucket %s", folder)
	}
	return nil
}

func (fs *S3Fs) FileList(folder, suffix string) ([]string, error) {
	result := []string{}
	for info := range fs.s3.ListObjects(context.Background(), folder, minio.ListObjectsOptions{Recursive: true}) {
		if info.Err != nil {
			if notFound(info.Err) {
				return nil, &NotFoundError{err: info.Err}
			}
			return nil, errors.Wrapf(info.Err, "cannot list bucket %s", folder)
		}
		if strings.HasSuffix(info.Key, suffix) {
			result = append(result, info.Key)
		}
	}
	sort.Strings(result)
	return result, nil
}

func (fs *S3Fs) FileGet(folder, name string) ([]byte, error) {
	object, err := fs.s3.GetObject(context.Background(), folder, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "cannot get object %v/%v", folder, name)
	}
	defer object.Close()

	var b = &bytes.Buffer{}
	if _, err := io.Copy(b, object); err != nil {
		// GetObject is lazy, a missing object shows up on the first read
		if notFound(err) {
			return nil, &NotFoundError{err: err}
		}
		return nil, errors.Wrapf(err, "cannot copy data from %v/%v", folder, name)
	}
	return b.Bytes(), nil
}

func (fs *S3Fs) FilePut(folder, name string, data []byte, opts FilePutOptions) error {
	if _, err := fs.s3.PutObject(
		context.Background(),
		folder,
		name,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: opts.ContentType},
	); err != nil {
		return errors.Wrapf(err, "cannot put %v/%v", folder, name)
	}
	return nil
}
