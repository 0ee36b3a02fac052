package bucket

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/uuid"

	"tambua/pkg/dataurl"
)

// PhotoStore keeps photos captured by the registration forms and returns the URL to store on the record.
type PhotoStore interface {
	Save(ctx context.Context, folder, photo string) (string, error)
	// Remove drops a photo returned by Save. URLs the store did not issue are ignored.
	Remove(ctx context.Context, url string) error
}

// Inline keeps the data URL on the record itself.
type Inline struct{}

func (Inline) Save(_ context.Context, _ string, photo string) (string, error) {
	return photo, nil
}

func (Inline) Remove(context.Context, string) error { return nil }

type S3 struct {
	Client s3iface.S3API
	Bucket string
}

func NewS3(accessKeyID, secretAccessKey, region, bucket string) (*S3, error) {
	if accessKeyID == "" || secretAccessKey == "" || region == "" || bucket == "" {
		return nil, fmt.Errorf("AWS credentials, region or bucket are not set")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKeyID, secretAccessKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &S3{Client: s3.New(sess), Bucket: bucket}, nil
}

// Save uploads data URLs; anything else (empty, already a URL) is returned unchanged.
func (b *S3) Save(ctx context.Context, folder, photo string) (string, error) {
	if !strings.HasPrefix(photo, "data:") {
		return photo, nil
	}
	mime, raw, err := dataurl.Decode(photo)
	if err != nil {
		return "", err
	}
	ext := dataurl.Extension(mime)
	if ext == "" {
		ext = "bin"
	}
	key := fmt.Sprintf("%s/%s.%s", folder, uuid.NewString(), ext)
	return b.Upload(ctx, raw, key, mime)
}

func (b *S3) Upload(ctx context.Context, fileBytes []byte, key, contentType string) (string, error) {
	_, err := b.Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(b.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentLength: aws.Int64(int64(len(fileBytes))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}
	return b.urlPrefix() + key, nil
}

func (b *S3) urlPrefix() string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/", b.Bucket)
}

// Remove deletes the object behind a URL issued by Upload.
func (b *S3) Remove(ctx context.Context, url string) error {
	key, ok := strings.CutPrefix(url, b.urlPrefix())
	if !ok || key == "" {
		return nil
	}
	return b.Delete(ctx, key)
}

func (b *S3) Delete(ctx context.Context, key string) error {
	_, err := b.Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}
