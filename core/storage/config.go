package storage

import (
	"fmt"
	"strings"
)

// Config holds configuration for the image storage provider.
type Config struct {
	// Endpoint is the URL of the storage service. Empty means storage is not configured.
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket gallery images are uploaded to.
	Bucket string `mapstructure:"bucket" default:"gallery"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// PublicBaseURL overrides the base URL used to build public object URLs.
	// If empty, the URL is derived from Endpoint and UseSSL.
	PublicBaseURL string `mapstructure:"public_base_url" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// IsConfigured reports whether the storage provider is set up.
func (c Config) IsConfigured() bool {
	return c.Endpoint != ""
}

// PublicURL builds the public URL for an object in the given bucket.
// It returns an empty string when no public base can be derived.
func (c Config) PublicURL(bucket, objectName string) string {
	base := strings.TrimSuffix(c.PublicBaseURL, "/")
	if base == "" {
		if c.Endpoint == "" {
			return ""
		}
		scheme := "http"
		if c.UseSSL {
			scheme = "https"
		}
		host := strings.TrimPrefix(c.Endpoint, "http://")
		host = strings.TrimPrefix(host, "https://")
		base = fmt.Sprintf("%s://%s", scheme, strings.TrimSuffix(host, "/"))
	}
	return fmt.Sprintf("%s/%s/%s", base, bucket, objectName)
}
