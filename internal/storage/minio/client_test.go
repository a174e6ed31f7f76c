package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/freejob-server/internal/model"
)

// fakeObjects implements objectAPI without a network.
type fakeObjects struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      string

	putErr         error
	putKey         string
	putSize        int64
	putContentType string
	putData        []byte

	getRC  io.ReadCloser
	getErr error

	removeErr error

	statErr error
}

func (f *fakeObjects) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeObjects) MakeBucket(_ context.Context, bucket string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = bucket
	return f.makeBucketErr
}

func (f *fakeObjects) PutObject(_ context.Context, _ string, key string, r io.Reader, size int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	if f.putErr != nil {
		return minioLib.UploadInfo{}, f.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return minioLib.UploadInfo{}, err
	}
	f.putKey, f.putSize, f.putContentType, f.putData = key, size, opts.ContentType, data
	return minioLib.UploadInfo{Key: key, Size: int64(len(data))}, nil
}

func (f *fakeObjects) GetObject(_ context.Context, _ string, _ string, _ minioLib.GetObjectOptions) (io.ReadCloser, error) {
	return f.getRC, f.getErr
}

func (f *fakeObjects) RemoveObject(_ context.Context, _ string, _ string, _ minioLib.RemoveObjectOptions) error {
	return f.removeErr
}

func (f *fakeObjects) StatObject(_ context.Context, _ string, _ string, _ minioLib.StatObjectOptions) (minioLib.ObjectInfo, error) {
	return minioLib.ObjectInfo{}, f.statErr
}

func TestNewClientWithAPI(t *testing.T) {
	ctx := context.Background()

	t.Run("bucket exists", func(t *testing.T) {
		api := &fakeObjects{bucketExists: true}
		c, err := NewClientWithAPI(ctx, api, "resumes")
		require.NoError(t, err)
		assert.Equal(t, "resumes", c.bucket)
		assert.Empty(t, api.madeBucket)
	})

	t.Run("bucket created", func(t *testing.T) {
		api := &fakeObjects{}
		_, err := NewClientWithAPI(ctx, api, "resumes")
		require.NoError(t, err)
		assert.Equal(t, "resumes", api.madeBucket)
	})

	t.Run("check fails", func(t *testing.T) {
		c, err := NewClientWithAPI(ctx, &fakeObjects{bucketExistsErr: errors.New("boom")}, "resumes")
		assert.Nil(t, c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to ensure bucket exists")
	})

	t.Run("create fails", func(t *testing.T) {
		_, err := NewClientWithAPI(ctx, &fakeObjects{makeBucketErr: errors.New("fail")}, "resumes")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create bucket")
	})
}

func TestClient_Upload(t *testing.T) {
	ctx := context.Background()

	api := &fakeObjects{}
	c := &Client{api: api, bucket: "b"}
	require.NoError(t, c.Upload(ctx, "resumes/1", bytes.NewReader([]byte("%PDF")), 4, "application/pdf"))
	assert.Equal(t, "resumes/1", api.putKey)
	assert.Equal(t, int64(4), api.putSize)
	assert.Equal(t, "application/pdf", api.putContentType)
	assert.Equal(t, []byte("%PDF"), api.putData)

	c = &Client{api: &fakeObjects{putErr: errors.New("put-fail")}, bucket: "b"}
	err := c.Upload(ctx, "k", bytes.NewReader(nil), -1, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload object")
}

func TestClient_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		c := &Client{api: &fakeObjects{getRC: io.NopCloser(bytes.NewReader([]byte("abc")))}, bucket: "b"}
		rc, err := c.Download(ctx, "k")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), data)
	})

	t.Run("missing", func(t *testing.T) {
		c := &Client{api: &fakeObjects{statErr: minioLib.ErrorResponse{Code: "NoSuchKey"}}, bucket: "b"}
		rc, err := c.Download(ctx, "k")
		assert.Nil(t, rc)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("get fails", func(t *testing.T) {
		c := &Client{api: &fakeObjects{getErr: errors.New("get-fail")}, bucket: "b"}
		_, err := c.Download(ctx, "k")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get object")
	})
}

func TestClient_Delete(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, (&Client{api: &fakeObjects{}, bucket: "b"}).Delete(ctx, "k"))

	err := (&Client{api: &fakeObjects{removeErr: errors.New("remove-fail")}, bucket: "b"}).Delete(ctx, "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete object")
}

func TestClient_Exists(t *testing.T) {
	ctx := context.Background()

	ok, err := (&Client{api: &fakeObjects{}, bucket: "b"}).Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = (&Client{api: &fakeObjects{statErr: minioLib.ErrorResponse{Code: "NoSuchKey"}}, bucket: "b"}).Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = (&Client{api: &fakeObjects{statErr: errors.New("stat-fail")}, bucket: "b"}).Exists(ctx, "k")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "failed to stat object")
}
