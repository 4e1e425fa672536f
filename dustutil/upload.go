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

package dustutil

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/dustindex/cloud"
)

type uploader struct {
	// files is a set of file path pairs. The first of each pair
	// is a local file path and the second is a blob storage
	// path where it should be uploaded to.
	files [][2]string
	dir   string
}

// maybeUpload checks whether the given output file path refers to
// a blob storage location. If it does, then a temporary file location
// is returned. The file will then be uploaded to blob storage when
// the uploadOutput method is run. Each blob gets its own temporary
// directory so outputs with the same base name don't collide.
func (u *uploader) maybeUpload(loc string) (string, error) {
	if !cloud.IsBlob(loc) {
		return loc, nil
	}
	if u.dir == "" {
		dir, err := os.MkdirTemp("", "dustindex")
		if err != nil {
			return "", fmt.Errorf("dustindex: creating temporary directory for upload of '%s': %v", loc, err)
		}
		u.dir = dir
	}
	dir := filepath.Join(u.dir, strconv.Itoa(len(u.files)))
	if err := os.Mkdir(dir, 0755); err != nil {
		return "", fmt.Errorf("dustindex: creating temporary directory for upload of '%s': %v", loc, err)
	}
	f := filepath.Join(dir, path.Base(loc))
	u.files = append(u.files, [2]string{f, loc})
	return f, nil
}

// cleanup removes the temporary files created by maybeUpload.
func (u *uploader) cleanup() error {
	if u.dir == "" {
		return nil
	}
	return os.RemoveAll(u.dir)
}

// uploadOutput copies the local files registered by maybeUpload
// to blob storage.
func (u *uploader) uploadOutput(ctx context.Context, log logrus.FieldLogger) error {
	for _, files := range u.files {
		if err := upload(ctx, files[0], files[1]); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"from": files[0], "to": files[1]}).Debug("uploaded output")
	}
	return nil
}

func upload(ctx context.Context, local, loc string) error {
	r, err := os.Open(local)
	if err != nil {
		return fmt.Errorf("dustindex: opening file '%s' for upload: %v", local, err)
	}
	defer r.Close()
	if err := cloud.Upload(ctx, loc, r); err != nil {
		return fmt.Errorf("dustindex: uploading file '%s' to '%s': %w", local, loc, err)
	}
	return nil
}
