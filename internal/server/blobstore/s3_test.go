package blobstore

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/scankeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	objects map[string]string
	err     error
	lastPut *s3.PutObjectInput
}

func (f *fakeObjects) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(v))}, nil
}

func (f *fakeObjects) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastPut = in
	data, _ := io.ReadAll(in.Body)
	f.objects[aws.ToString(in.Key)] = string(data)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store_RoundTrip(t *testing.T) {
	ctx := context.Background()
	api := &fakeObjects{objects: map[string]string{}}
	store := &S3Store{api: api, bucket: "barcodes"}

	_, err := store.Get(ctx, "global-barcode-list")
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, store.Set(ctx, "global-barcode-list", []byte(`[]`)))
	assert.Equal(t, "barcodes", aws.ToString(api.lastPut.Bucket))
	assert.Equal(t, int64(2), aws.ToInt64(api.lastPut.ContentLength))

	got, err := store.Get(ctx, "global-barcode-list")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	require.NoError(t, store.Delete(ctx, "global-barcode-list"))
	_, err = store.Get(ctx, "global-barcode-list")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestS3Store_BackendErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")
	store := &S3Store{api: &fakeObjects{err: boom}, bucket: "b"}

	_, err := store.Get(ctx, "k")
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, common.ErrorNotFound)

	require.ErrorIs(t, store.Set(ctx, "k", nil), boom)
	require.ErrorIs(t, store.Delete(ctx, "k"), boom)
}

func TestNewS3Store_AppliesOptions(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		require.NotNil(t, lo.Credentials)
		return aws.Config{}, nil
	}

	var opts s3.Options
	fake := &fakeObjects{objects: map[string]string{}}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectAPI {
		for _, fn := range optFns {
			fn(&opts)
		}
		return fake
	}

	store, err := NewS3Store(context.Background(), S3Options{
		Region:       "us-east-1",
		AccessKey:    "admin",
		SecretKey:    "secret",
		BaseEndpoint: "http://127.0.0.1:9000/",
		Bucket:       "barcodes",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000/", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, "barcodes", store.bucket)
}

func TestNewS3Store_ConfigError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	boom := errors.New("bad config")
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, boom
	}

	_, err := NewS3Store(context.Background(), S3Options{})
	require.ErrorIs(t, err, boom)
}
