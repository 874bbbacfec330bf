package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/HendryAvila/portfolio-mcp/internal/portfolio"
)

const s3Scheme = "s3://"

// S3Client is the subset of the S3 API the loader needs.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// NewS3Client builds a client from the default AWS configuration chain
// (environment, shared config, instance role).
func NewS3Client(ctx context.Context) (S3Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

func isS3(location string) bool {
	return strings.HasPrefix(location, s3Scheme)
}

// parseS3 splits s3://bucket/key into its parts.
func parseS3(location string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(location, s3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 location %q: want s3://bucket/key", location)
	}
	return bucket, key, nil
}

func (l *Loader) readS3(ctx context.Context, location string) ([]portfolio.Record, error) {
	bucket, key, err := parseS3(location)
	if err != nil {
		return nil, err
	}

	format, err := DetectFormat(key)
	if err != nil {
		return nil, err
	}
	if format == FormatSQLite {
		return nil, fmt.Errorf("%w: SQLite databases cannot be read from S3", ErrUnsupportedFormat)
	}

	if l.s3 == nil {
		c, err := l.newS3(ctx)
		if err != nil {
			return nil, err
		}
		l.s3 = c
	}

	out, err := l.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("%w: %s", ErrNoDataFile, location)
		}
		return nil, fmt.Errorf("fetching object: %w", err)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading object: %w", err)
	}
	return Decode(format, data)
}
