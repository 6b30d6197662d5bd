package oss

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"github.com/swajayfour/swajay_go_server/config"
)

// Client is a thin wrapper over the OSS bucket used to mirror store
// documents.
type Client struct {
	bucket *oss.Bucket
	prefix string
}

func NewClient(cfg *config.MirrorConfig) (*Client, error) {
	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create OSS client: %w", err)
	}

	bucket, err := client.Bucket(cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket: %w", err)
	}

	return &Client{
		bucket: bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
	}, nil
}

// UploadJSON writes a JSON document under the configured prefix, overwriting
// any previous version of the same name.
func (c *Client) UploadJSON(name string, data []byte) error {
	objectKey := name
	if c.prefix != "" {
		objectKey = c.prefix + "/" + name
	}

	err := c.bucket.PutObject(objectKey, bytes.NewReader(data), oss.ContentType("application/json"))
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return nil
}
