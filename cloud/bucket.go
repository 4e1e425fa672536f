/*
Copyright © 2018 the InMAP authors.
This file is part of dustindex.

dustindex is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

dustindex is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with dustindex.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package cloud reads and writes files in blob storage.
package cloud

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
)

// IsBlob returns whether the given filename represents a blob.
// (i.e., if it starts with `gs://`, 's3://', or 'file://').
func IsBlob(path string) bool {
	return strings.HasPrefix(path, "gs://") || strings.HasPrefix(path, "s3://") || strings.HasPrefix(path, "file://")
}

// SplitBlob splits a blob location in the format 'provider://name/key'
// into the bucket and the key within the bucket. For the "file" provider,
// the bucket is the directory containing the file.
func SplitBlob(loc string) (bucketName, key string, err error) {
	u, err := url.Parse(loc)
	if err != nil {
		return "", "", fmt.Errorf("cloud: parsing blob location: %w", err)
	}
	switch u.Scheme {
	case "file":
		dir, file := path.Split(u.Path)
		if file == "" {
			return "", "", fmt.Errorf("cloud: blob location %s is a directory", loc)
		}
		return "file://" + strings.TrimSuffix(dir, "/"), file, nil
	case "gs", "s3":
		key = strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return "", "", fmt.Errorf("cloud: blob location %s should be in the format %s://bucket/key", loc, u.Scheme)
		}
		b := u.Scheme + "://" + u.Host
		if u.RawQuery != "" {
			b += "?" + u.RawQuery
		}
		return b, key, nil
	default:
		return "", "", fmt.Errorf("cloud: invalid provider %q", u.Scheme)
	}
}

// OpenBucket returns the blob storage bucket specified by bucketName,
// where bucketName must be in the format 'provider://name' where provider
// is the name of the storage provider and name is the name of the bucket.
// The currently accepted storage providers are "file" for the local filesystem
// (e.g., for testing), "gs" for Google Cloud Storage, and "s3" for AWS S3.
// Credentials for "gs" and "s3" are taken from the environment.
func OpenBucket(ctx context.Context, bucketName string) (*blob.Bucket, error) {
	b, err := blob.OpenBucket(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("cloud.OpenBucket: %w", err)
	}
	return b, nil
}
