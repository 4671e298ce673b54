package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/MKhiriev/go-qes-vault/internal/config"
	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/internal/validators"
)

const envelopeContentType = "application/json"

// s3API is the subset of *s3.Client used by the envelope storage.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// s3EnvelopeStorage keeps envelopes as objects "<prefix><name>" in one bucket.
type s3EnvelopeStorage struct {
	client s3API
	bucket string
	prefix string
	logger *logger.Logger
}

// NewS3EnvelopeStorage builds an AWS SDK client from cfg. Static credentials
// are used when both keys are set; otherwise the default AWS credential
// chain applies. A custom endpoint switches to path-style addressing for
// MinIO-like servers.
func NewS3EnvelopeStorage(ctx context.Context, cfg config.S3, log *logger.Logger) (EnvelopeStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		creds := credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		opts = append(opts, awsconfig.WithCredentialsProvider(creds))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3EnvelopeStorage").Msg("failed to load AWS config")
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3EnvelopeStorage(client, cfg.Bucket, cfg.Prefix, log), nil
}

func newS3EnvelopeStorage(client s3API, bucket, prefix string, log *logger.Logger) *s3EnvelopeStorage {
	return &s3EnvelopeStorage{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: log,
	}
}

func (s *s3EnvelopeStorage) key(name string) string {
	return s.prefix + name
}

func (s *s3EnvelopeStorage) Put(ctx context.Context, name string, data []byte) error {
	if err := validators.ValidateEnvelopeFileName(name); err != nil {
		return err
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key(name)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(envelopeContentType),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "s3EnvelopeStorage.Put").Str("name", name).Msg("put object failed")
		return fmt.Errorf("put envelope: %w", err)
	}
	return nil
}

func (s *s3EnvelopeStorage) Get(ctx context.Context, name string) ([]byte, error) {
	if err := validators.ValidateEnvelopeFileName(name); err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if isS3NotFound(err) {
		return nil, ErrEnvelopeNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "s3EnvelopeStorage.Get").Str("name", name).Msg("get object failed")
		return nil, fmt.Errorf("get envelope: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read envelope: %w", err)
	}
	return data, nil
}

func (s *s3EnvelopeStorage) List(ctx context.Context) ([]string, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})

	names := make([]string, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "s3EnvelopeStorage.List").Msg("list objects failed")
			return nil, fmt.Errorf("list envelopes: %w", err)
		}
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), s.prefix)
			if validators.ValidateEnvelopeFileName(name) == nil {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// Delete checks existence first: S3 deletes of missing keys succeed silently.
func (s *s3EnvelopeStorage) Delete(ctx context.Context, name string) error {
	if err := validators.ValidateEnvelopeFileName(name); err != nil {
		return err
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if isS3NotFound(err) {
		return ErrEnvelopeNotFound
	}
	if err != nil {
		return fmt.Errorf("head envelope: %w", err)
	}

	if _, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	}); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "s3EnvelopeStorage.Delete").Str("name", name).Msg("delete object failed")
		return fmt.Errorf("delete envelope: %w", err)
	}
	return nil
}

func isS3NotFound(err error) bool {
	if err == nil {
		return false
	}
	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	return errors.As(err, &noSuchKey) || errors.As(err, &notFound)
}

// compile-time check
var _ EnvelopeStorage = (*s3EnvelopeStorage)(nil)
