package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"pasaratsiri/pkg/logger"
)

const signedLinkTTL = 15 * time.Minute

// CloudStorageClient turns stored document references into links an admin
// can open. Objects in the configured bucket get short-lived signed URLs.
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	ttl        time.Duration
}

func NewCloudStorageClient(ctx context.Context, bucketName string, opts ...option.ClientOption) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
		ttl:        signedLinkTTL,
	}, nil
}

// Link returns a signed read URL for references into the bucket and the
// reference unchanged for anything else, including signing failures.
func (c *CloudStorageClient) Link(ctx context.Context, ref string) string {
	bucket, object, ok := ParseObjectRef(ref)
	if !ok || bucket != c.bucketName {
		return ref
	}

	signed, err := c.client.Bucket(bucket).SignedURL(object, &storage.SignedURLOptions{
		Method:  http.MethodGet,
		Expires: time.Now().Add(c.ttl),
		Scheme:  storage.SigningSchemeV4,
	})
	if err != nil {
		logger.Warn("failed to sign %s/%s: %v", bucket, object, err)
		return ref
	}
	return signed
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// PassthroughLinker is used when no bucket is configured.
type PassthroughLinker struct{}

func (PassthroughLinker) Link(_ context.Context, ref string) string {
	return ref
}

// ParseObjectRef recognizes gs://bucket/object and
// https://storage.googleapis.com/bucket/object references. Firebase download
// URLs already carry their own token and are not matched.
func ParseObjectRef(ref string) (bucket, object string, ok bool) {
	var path string
	switch {
	case strings.HasPrefix(ref, "gs://"):
		path = strings.TrimPrefix(ref, "gs://")
	case strings.HasPrefix(ref, "https://storage.googleapis.com/"):
		u, err := url.Parse(ref)
		if err != nil || u.RawQuery != "" {
			return "", "", false
		}
		path = strings.TrimPrefix(u.Path, "/")
	default:
		return "", "", false
	}

	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
