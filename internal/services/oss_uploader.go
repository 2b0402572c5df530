package services

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	"github.com/fkresna23/promptlabidv2/config"
)

// ImageUploader uploads avatar and cover images to object storage.
type ImageUploader interface {
	UploadImage(r io.Reader, filename string) (string, error)
}

// STSClientManager handles STS token management and OSS client creation
type STSClientManager struct {
	config *config.Config
}

func NewSTSClientManager() *STSClientManager {
	cfg, _ := config.LoadConfig()
	return &STSClientManager{config: cfg}
}

// UploadImage stores the image under a collision-free key
// (images/YYYY/MM/uuid.ext) using STS credentials and returns the
// public URL. A failed put is retried once with a refreshed token.
func (m *STSClientManager) UploadImage(r io.Reader, filename string) (string, error) {
	stsCreds, err := GetOSSTSToken()
	if err != nil {
		return "", fmt.Errorf("failed to get STS token: %v", err)
	}

	client, err := oss.New(
		m.config.OSSEndpoint,
		stsCreds.AccessKeyId,
		stsCreds.AccessKeySecret,
		oss.SecurityToken(stsCreds.SecurityToken),
		oss.Timeout(60, 120), // Connect timeout 60s, Read/Write timeout 120s
	)
	if err != nil {
		return "", fmt.Errorf("failed to create OSS client: %v", err)
	}

	bucket, err := client.Bucket(m.config.OSSBucketName)
	if err != nil {
		return "", fmt.Errorf("failed to get bucket: %v", err)
	}

	ext := ""
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		ext = filename[idx:]
	}
	now := time.Now()
	objectKey := fmt.Sprintf("images/%d/%02d/%s%s",
		now.Year(), now.Month(), uuid.New().String(), ext)

	// Buffer the image so the put can be retried; uploads here are
	// avatars and cover art, small by construction.
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %v", err)
	}

	uploadErr := bucket.PutObject(objectKey, bytes.NewReader(data))
	if uploadErr != nil {
		// Token may have expired mid-request; refresh once and retry
		stsCreds, err = GetOSSTSToken()
		if err == nil {
			client, _ = oss.New(m.config.OSSEndpoint, stsCreds.AccessKeyId, stsCreds.AccessKeySecret, oss.SecurityToken(stsCreds.SecurityToken))
			bucket, _ = client.Bucket(m.config.OSSBucketName)
			uploadErr = bucket.PutObject(objectKey, bytes.NewReader(data))
		}
	}
	if uploadErr != nil {
		return "", fmt.Errorf("upload failed after retry: %v", uploadErr)
	}

	endpoint := m.config.OSSEndpoint
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "https://" + endpoint
	}

	url := ""
	if strings.Contains(endpoint, "://") {
		parts := strings.Split(endpoint, "://")
		url = fmt.Sprintf("%s://%s.%s/%s", parts[0], m.config.OSSBucketName, parts[1], objectKey)
	} else {
		url = fmt.Sprintf("https://%s.%s/%s", m.config.OSSBucketName, endpoint, objectKey)
	}

	return url, nil
}
