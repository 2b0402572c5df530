package services

import (
	"strings"

	"github.com/aliyun/alibaba-cloud-sdk-go/services/sts"

	"github.com/fkresna23/promptlabidv2/config"
)

type STSCredentials struct {
	AccessKeyId     string `json:"accessKeyId"`
	AccessKeySecret string `json:"accessKeySecret"`
	SecurityToken   string `json:"securityToken"`
	Expiration      string `json:"expiration"`
	Region          string `json:"region"`
	Bucket          string `json:"bucket"`
}

// GetOSSTSToken issues short-lived STS credentials so clients can
// upload avatar/cover images straight to the bucket.
func GetOSSTSToken() (*STSCredentials, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// STS client requires region ID without "oss-" prefix (e.g., "cn-beijing" instead of "oss-cn-beijing")
	stsRegion := cfg.OSSRegionID
	if after, ok := strings.CutPrefix(stsRegion, "oss-"); ok {
		stsRegion = after
	}

	client, err := sts.NewClientWithAccessKey(stsRegion, cfg.OSSAccessKeyID, cfg.OSSAccessKeySecret)
	if err != nil {
		return nil, err
	}

	request := sts.CreateAssumeRoleRequest()
	request.Scheme = "https"
	request.RoleArn = cfg.OSSRoleArn
	request.RoleSessionName = "promptlab-session"
	request.DurationSeconds = "3600" // 1 hour

	response, err := client.AssumeRole(request)
	if err != nil {
		return nil, err
	}

	return &STSCredentials{
		AccessKeyId:     response.Credentials.AccessKeyId,
		AccessKeySecret: response.Credentials.AccessKeySecret,
		SecurityToken:   response.Credentials.SecurityToken,
		Expiration:      response.Credentials.Expiration,
		Region:          cfg.OSSRegionID,
		Bucket:          cfg.OSSBucketName,
	}, nil
}
