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

package cloud

import (
	"context"
	"fmt"
	"io"

	"gocloud.dev/blob"
)

// Download copies the blob at location loc to w.
func Download(ctx context.Context, loc string, w io.Writer) error {
	bucketName, key, err := SplitBlob(loc)
	if err != nil {
		return err
	}
	bucket, err := OpenBucket(ctx, bucketName)
	if err != nil {
		return err
	}
	defer bucket.Close()
	r, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		return fmt.Errorf("cloud: reading blob key %s: %w", key, err)
	}
	defer r.Close()
	if _, err = io.Copy(w, r); err != nil {
		return fmt.Errorf("cloud: reading blob key %s: %w", key, err)
	}
	return nil
}

// Upload copies the contents of r to the blob at location loc.
func Upload(ctx context.Context, loc string, r io.Reader) error {
	bucketName, key, err := SplitBlob(loc)
	if err != nil {
		return err
	}
	bucket, err := OpenBucket(ctx, bucketName)
	if err != nil {
		return err
	}
	defer bucket.Close()
	w, err := bucket.NewWriter(ctx, key, &blob.WriterOptions{})
	if err != nil {
		return fmt.Errorf("cloud: creating writer for blob %s: %w", key, err)
	}
	if _, err = io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("cloud: copying blob %s: %w", key, err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("cloud: writing blob %s: %w", key, err)
	}
	return nil
}
