// Package storage publishes generated pages to an S3-compatible bucket. Custom
// endpoints (MinIO, Ceph, Hetzner) use path-style addressing.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/easylandingweb/easylanding/internal/config"
	"github.com/easylandingweb/easylanding/internal/page"
)

// ErrNotConfigured is returned by New when no bucket is set.
var ErrNotConfigured = errors.New("s3 publishing is not configured: set s3.bucket")

// putter is the subset of *s3.Client used for publishing.
type putter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Client uploads pages to one bucket.
type Client struct {
	s3        putter
	bucket    string
	region    string
	endpoint  string
	publicURL string
	prefix    string
}

// New creates a client from cfg. Keys missing from cfg are read from
// AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.
func New(cfg config.S3Config) (*Client, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	accessKey, secretKey := cfg.AccessKey, cfg.SecretKey
	if accessKey == "" && secretKey == "" {
		accessKey, secretKey = os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
	}
	if accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("s3 credentials missing: set s3.access_key and s3.secret_key")
	}

	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	}
	if endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
		opts.UsePathStyle = true
	}

	return newClient(s3.New(opts), cfg), nil
}

func newClient(p putter, cfg config.S3Config) *Client {
	return &Client{
		s3:        p,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		endpoint:  strings.TrimRight(cfg.Endpoint, "/"),
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		prefix:    strings.Trim(cfg.Prefix, "/"),
	}
}

// ObjectKey returns the object key a site is stored under:
// <prefix>/<site>/index.html.
func (c *Client) ObjectKey(site string) string {
	return path.Join(c.prefix, site, page.Filename)
}

// Publish uploads html as the index page of site with public-read ACL and
// returns its public URL.
func (c *Client) Publish(ctx context.Context, site string, html []byte) (string, error) {
	if strings.Trim(site, "/") == "" {
		return "", fmt.Errorf("site name is required")
	}
	key := c.ObjectKey(site)

	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(html),
		ContentLength: aws.Int64(int64(len(html))),
		ContentType:   aws.String("text/html; charset=utf-8"),
		CacheControl:  aws.String("no-cache"),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s/%s: %w", c.bucket, key, err)
	}
	return c.FileURL(key), nil
}

// FileURL returns the public URL of an object. Uses the configured public URL
// if set, a path-style URL on custom endpoints, and the virtual-hosted AWS URL
// otherwise.
func (c *Client) FileURL(key string) string {
	switch {
	case c.publicURL != "":
		return c.publicURL + "/" + key
	case c.endpoint != "":
		return c.endpoint + "/" + c.bucket + "/" + key
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
	}
}

// Bucket returns the bucket name.
func (c *Client) Bucket() string {
	return c.bucket
}
