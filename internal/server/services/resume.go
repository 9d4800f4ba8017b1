package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "github.com/vmelnikov/jobport/internal/server/config"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// ResumeService keeps uploaded resumes in an S3-compatible bucket and
// issues short-lived download links for employers reviewing applicants.
type ResumeService struct {
	config *sc.Config
}

func NewResumeService(config *sc.Config) *ResumeService {
	return &ResumeService{config: config}
}

// GetRandomStorageKey returns a date-prefixed random object key, keeping
// the original file extension so downloads open with the right type.
func GetRandomStorageKey(filename string) string {
	d := time.Now()
	return fmt.Sprintf("resumes/%d/%02d/%02d/%v%s", d.Year(), d.Month(), d.Day(), uuid.New(), filepath.Ext(filename))
}

func (s *ResumeService) getClient() (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,     // MINIO_ROOT_USER
			s.config.S3RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// Store uploads the resume and returns its object key.
func (s *ResumeService) Store(ctx context.Context, filename string, data io.Reader) (string, error) {
	client, err := s.getClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey(filename)

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
		Body:   data,
	})
	if err != nil {
		return "", err
	}

	return key, nil
}

// DownloadURL returns a presigned GET URL for the stored resume, valid for
// 15 minutes.
func (s *ResumeService) DownloadURL(ctx context.Context, key string) (string, error) {
	client, err := s.getClient()
	if err != nil {
		return "", err
	}
	presignClient := newS3PresignClient(client)

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
