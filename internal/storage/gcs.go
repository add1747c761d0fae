package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type gcsProvider struct {
	bucket          string
	credentialsJSON string
}

func newGCSProvider(s Settings) (*gcsProvider, error) {
	if s.GCSBucket == "" {
		return nil, errors.New("GCS_BUCKET is required for the gcs storage provider")
	}
	return &gcsProvider{bucket: s.GCSBucket, credentialsJSON: s.GCSCredentialsJSON}, nil
}

// client builds a GCS client. ADC is preferred (service account or
// GOOGLE_APPLICATION_CREDENTIALS); explicit JSON credentials are supported
// for local development.
func (p *gcsProvider) client(ctx context.Context) (*gcs.Client, error) {
	if strings.TrimSpace(p.credentialsJSON) != "" {
		return gcs.NewClient(ctx, option.WithCredentialsJSON([]byte(p.credentialsJSON)))
	}
	return gcs.NewClient(ctx)
}

func (p *gcsProvider) Put(ctx context.Context, objectKey, contentType string, r io.Reader) error {
	client, err := p.client(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	wc := client.Bucket(p.bucket).Object(objectKey).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}

func (p *gcsProvider) Open(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	client, err := p.client(ctx)
	if err != nil {
		return nil, err
	}

	rc, err := client.Bucket(p.bucket).Object(objectKey).NewReader(ctx)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return &gcsReader{ReadCloser: rc, client: client}, nil
}

func (p *gcsProvider) Delete(ctx context.Context, objectKey string) error {
	client, err := p.client(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	err = client.Bucket(p.bucket).Object(objectKey).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil
	}
	return err
}

func (p *gcsProvider) URL(objectKey string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", p.bucket, objectKey)
}

// gcsReader closes the client together with the object reader.
type gcsReader struct {
	io.ReadCloser
	client *gcs.Client
}

func (r *gcsReader) Close() error {
	err := r.ReadCloser.Close()
	if cerr := r.client.Close(); err == nil {
		err = cerr
	}
	return err
}
