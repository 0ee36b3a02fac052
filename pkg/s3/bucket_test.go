package bucket

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	s3iface.S3API
	puts    []*s3.PutObjectInput
	body    []byte
	deleted []string
	err     error
}

func (f *fakeS3) PutObjectWithContext(_ aws.Context, in *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.puts = append(f.puts, in)
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObjectWithContext(_ aws.Context, in *s3.DeleteObjectInput, _ ...request.Option) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.StringValue(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestInline(t *testing.T) {
	url, err := Inline{}.Save(context.Background(), "vehicles", "data:image/png;base64,AQID")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AQID", url)
	assert.NoError(t, Inline{}.Remove(context.Background(), url))
}

func TestS3_Save(t *testing.T) {
	fake := &fakeS3{}
	store := &S3{Client: fake, Bucket: "tambua"}

	url, err := store.Save(context.Background(), "vehicles", "data:image/png;base64,AQID")
	require.NoError(t, err)
	require.Len(t, fake.puts, 1)
	assert.True(t, strings.HasPrefix(url, "https://tambua.s3.amazonaws.com/vehicles/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.Equal(t, "image/png", aws.StringValue(fake.puts[0].ContentType))
	assert.Equal(t, []byte{1, 2, 3}, fake.body)

	url, err = store.Save(context.Background(), "vehicles", "https://example.com/p.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/p.jpg", url)
	assert.Len(t, fake.puts, 1)

	require.NoError(t, store.Delete(context.Background(), "vehicles/a.png"))
	assert.Equal(t, []string{"vehicles/a.png"}, fake.deleted)
}

func TestS3_Remove(t *testing.T) {
	fake := &fakeS3{}
	store := &S3{Client: fake, Bucket: "tambua"}
	ctx := context.Background()

	url, err := store.Save(ctx, "motorcycles", "data:image/jpeg;base64,AQID")
	require.NoError(t, err)
	require.NoError(t, store.Remove(ctx, url))
	require.Len(t, fake.deleted, 1)
	assert.Equal(t, strings.TrimPrefix(url, "https://tambua.s3.amazonaws.com/"), fake.deleted[0])
	assert.True(t, strings.HasPrefix(fake.deleted[0], "motorcycles/"))

	require.NoError(t, store.Remove(ctx, "https://picsum.photos/seed/moto1/200/200"))
	require.NoError(t, store.Remove(ctx, "data:image/png;base64,AQID"))
	require.NoError(t, store.Remove(ctx, ""))
	assert.Len(t, fake.deleted, 1)
}

func TestS3_SaveError(t *testing.T) {
	store := &S3{Client: &fakeS3{err: errors.New("denied")}, Bucket: "tambua"}
	_, err := store.Save(context.Background(), "vehicles", "data:image/png;base64,AQID")
	assert.ErrorContains(t, err, "denied")
}

func TestNewS3_MissingSettings(t *testing.T) {
	_, err := NewS3("", "", "", "")
	assert.Error(t, err)
}
