package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/auditkeeper/internal/server/config"
)

func newDocSvc() *DocumentService {
	cfg := &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "documents",
	}
	return NewDocumentService(cfg)
}

func stubPresignClient(t *testing.T) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "us-east-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		if opts.BaseEndpoint == nil || *opts.BaseEndpoint != "http://127.0.0.1:9000" {
			t.Fatalf("BaseEndpoint not applied")
		}
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		if c == nil {
			t.Fatalf("nil client passed to presign")
		}
		return &s3.PresignClient{}
	}
}

func TestPresignUpload_Success(t *testing.T) {
	svc := newDocSvc()
	stubPresignClient(t)

	orig := presignPutObject
	defer func() { presignPutObject = orig }()
	var gotBucket, gotKey string
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		gotBucket = *in.Bucket
		gotKey = *in.Key
		return &v4.PresignedHTTPRequest{URL: "https://signed/put"}, nil
	}

	key, url, err := svc.PresignUpload(context.Background())
	if err != nil {
		t.Fatalf("PresignUpload error: %v", err)
	}
	if url != "https://signed/put" {
		t.Fatalf("unexpected url %q", url)
	}
	if key != gotKey || gotBucket != "documents" {
		t.Fatalf("presign input mismatch: key=%q gotKey=%q bucket=%q", key, gotKey, gotBucket)
	}
	if !strings.HasPrefix(key, "documents/") {
		t.Fatalf("storage key must be date-bucketed under documents/, got %q", key)
	}
}

func TestPresignUpload_ErrorFromClientFactory(t *testing.T) {
	svc := newDocSvc()

	orig := loadDefaultAWSConfig
	defer func() { loadDefaultAWSConfig = orig }()
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, _, err := svc.PresignUpload(context.Background())
	if err == nil || err.Error() != "load-fail" {
		t.Fatalf("want load-fail, got %v", err)
	}
}

func TestPresignUpload_ErrorFromPresign(t *testing.T) {
	svc := newDocSvc()
	stubPresignClient(t)

	orig := presignPutObject
	defer func() { presignPutObject = orig }()
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("sign-fail")
	}

	_, _, err := svc.PresignUpload(context.Background())
	if err == nil || err.Error() != "sign-fail" {
		t.Fatalf("want sign-fail, got %v", err)
	}
}

func TestPresignDownload_Success(t *testing.T) {
	svc := newDocSvc()
	stubPresignClient(t)

	orig := presignGetObject
	defer func() { presignGetObject = orig }()
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if *in.Key != "documents/2026/1/2/abc" {
			return nil, errors.New("unexpected key")
		}
		return &v4.PresignedHTTPRequest{URL: "https://signed/get"}, nil
	}

	url, err := svc.PresignDownload(context.Background(), "documents/2026/1/2/abc")
	if err != nil {
		t.Fatalf("PresignDownload error: %v", err)
	}
	if url != "https://signed/get" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestPresignDownload_ErrorFromClientFactory(t *testing.T) {
	svc := newDocSvc()

	orig := loadDefaultAWSConfig
	defer func() { loadDefaultAWSConfig = orig }()
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := svc.PresignDownload(context.Background(), "k")
	if err == nil || err.Error() != "load-fail" {
		t.Fatalf("want load-fail, got %v", err)
	}
}

func TestRandomStorageKey_Unique(t *testing.T) {
	t.Parallel()

	if RandomStorageKey() == RandomStorageKey() {
		t.Fatalf("storage keys must not collide")
	}
}
