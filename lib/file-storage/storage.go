package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"talent-engine-backend/config"
)

type Provider interface {
	UploadAdvertBanner(ctx context.Context, tenantID, requisitionID string, file []byte, fileName string) (key string, err error)
	UploadUserDocument(ctx context.Context, tenantID, userID string, file []byte, fileName string) (key string, err error)
	GetFile(ctx context.Context, tenantID, key string) ([]byte, error)
	MakeTenantBucket(ctx context.Context, tenantID string) error
}

var Instance Provider

func NewHandler(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadAdvertBanner(ctx context.Context, tenantID, requisitionID string, file []byte, fileName string) (key string, err error) {
	key = fmt.Sprintf("adverts/%v/%v", requisitionID, fileName)
	return key, i.upload(ctx, tenantID, key, file)
}

func (i impl) UploadUserDocument(ctx context.Context, tenantID, userID string, file []byte, fileName string) (key string, err error) {
	key = fmt.Sprintf("user-docs/%v/%v", userID, fileName)
	return key, i.upload(ctx, tenantID, key, file)
}

func (i impl) upload(ctx context.Context, tenantID, key string, file []byte) error {
	err := i.MakeTenantBucket(ctx, tenantID)
	if err != nil {
		return err
	}
	_, err = i.s3client.PutObject(ctx, i.getTenantBucketName(tenantID), key,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return errors.Wrap(err, "file upload failed")
	}
	return nil
}

func (i impl) GetFile(ctx context.Context, tenantID, key string) ([]byte, error) {
	obj, err := i.s3client.GetObject(ctx, i.getTenantBucketName(tenantID), key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "file download failed")
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrap(err, "file read failed")
	}
	return data, nil
}

func (i impl) MakeTenantBucket(ctx context.Context, tenantID string) error {
	bucketName := i.getTenantBucketName(tenantID)
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}

func (i impl) getTenantBucketName(tenantID string) string {
	return fmt.Sprintf("%s-%s", config.Conf.S3.BucketName, tenantID)
}
