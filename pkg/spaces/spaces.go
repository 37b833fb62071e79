// Package spaces downloads objects from S3-compatible object storage
// (DigitalOcean Spaces).
package spaces

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultTimeout bounds a single object download.
const DefaultTimeout = 60 * time.Second

// objectGetter is the subset of the S3 API the client needs.
// Narrow on purpose so tests can substitute a fake.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Config holds connection settings for a Spaces region/endpoint.
type Config struct {
	Region          string
	EndpointURL     string
	AccessKeyID     string
	SecretAccessKey string
	Timeout         time.Duration
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.AccessKeyID) == "" {
		return fmt.Errorf("spaces: AccessKeyID is required")
	}
	if strings.TrimSpace(c.SecretAccessKey) == "" {
		return fmt.Errorf("spaces: SecretAccessKey is required")
	}
	if strings.TrimSpace(c.Region) == "" {
		return fmt.Errorf("spaces: Region is required")
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// Client downloads objects from a single Spaces endpoint.
type Client struct {
	api objectGetter
	cfg Config
}

// New creates a Spaces client from config.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("spaces: failed to load AWS config: %w", err)
	}

	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
		}
		// Spaces endpoints do not support virtual-host-style addressing
		// for every bucket name.
		o.UsePathStyle = true
	})

	return &Client{api: api, cfg: cfg}, nil
}

// NewWithClient creates a Client with a pre-built S3 API, used in tests.
func NewWithClient(cfg Config, api objectGetter) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{api: api, cfg: cfg}
}

// DownloadFile fetches bucket/key into localPath, creating parent
// directories as needed. The write goes through a temp file so a
// failed download never leaves a truncated artifact behind.
func (c *Client) DownloadFile(ctx context.Context, bucket, key, localPath string) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	out, err := c.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("spaces: failed to get object %s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return fmt.Errorf("spaces: failed to create directory for %s: %w", localPath, err)
	}

	tmpPath := localPath + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("spaces: failed to create %s: %w", tmpPath, err)
	}

	if _, err := io.Copy(f, out.Body); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("spaces: failed to write %s: %w", tmpPath, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("spaces: failed to close %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, localPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("spaces: failed to move %s into place: %w", tmpPath, err)
	}

	return nil
}
