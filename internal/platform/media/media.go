// Package media builds public URLs for image objects kept in object storage.
package media

import (
	"fmt"
	"net/url"
	"strings"
)

// Logical bucket names used by the catalog.
const (
	BucketStores  = "stores"
	BucketDresses = "dresses"
)

const bucketPlaceholder = "{bucket}"

// URLBuilder turns (bucket, key) pairs into absolute URLs.
type URLBuilder struct {
	baseURL string
	buckets map[string]string
}

// NewURLBuilder validates baseURL and returns a builder. baseURL may contain
// {bucket}, which is replaced with the real bucket name; otherwise the bucket
// name is appended as the first path segment. buckets maps logical names to
// real bucket names; names missing from the map are used unchanged.
func NewURLBuilder(baseURL string, buckets map[string]string) (*URLBuilder, error) {
	probe := strings.ReplaceAll(baseURL, bucketPlaceholder, "bucket")
	u, err := url.Parse(probe)
	if err != nil {
		return nil, fmt.Errorf("invalid media base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid media base URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid media base URL %q: missing host", baseURL)
	}

	copied := make(map[string]string, len(buckets))
	for k, v := range buckets {
		copied[k] = v
	}
	return &URLBuilder{
		baseURL: strings.TrimRight(baseURL, "/"),
		buckets: copied,
	}, nil
}

// URLHead returns the URL prefix, ending in "/", under which objects of
// bucket are served.
func (b *URLBuilder) URLHead(bucket string) string {
	name := bucket
	if mapped, ok := b.buckets[bucket]; ok && mapped != "" {
		name = mapped
	}
	if strings.Contains(b.baseURL, bucketPlaceholder) {
		return strings.ReplaceAll(b.baseURL, bucketPlaceholder, name) + "/"
	}
	return b.baseURL + "/" + name + "/"
}

// URL returns the URL of key in bucket, or "" when key is empty.
func (b *URLBuilder) URL(bucket, key string) string {
	if key == "" {
		return ""
	}
	return b.URLHead(bucket) + strings.TrimLeft(key, "/")
}
