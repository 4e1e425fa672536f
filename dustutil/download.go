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
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/dustindex/cloud"
)

// maybeDownload checks if the input is an existing file locally.
// If not, it checks if the file is a URL or a blob storage location.
// If it is, it downloads the file to a temporary directory and
// returns the path to the downloaded file.
func maybeDownload(ctx context.Context, loc string, log logrus.FieldLogger) (string, error) {
	// Check if local file exists. If it does, return the given path.
	if _, err := os.Stat(loc); !os.IsNotExist(err) {
		return loc, nil
	}

	if strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://") {
		return download(loc, log, func(w io.Writer) error {
			return downloadHTTP(ctx, loc, w)
		})
	}

	if cloud.IsBlob(loc) {
		return download(loc, log, func(w io.Writer) error {
			return cloud.Download(ctx, loc, w)
		})
	}

	return loc, nil
}

// download creates a file in a new temporary directory with the same
// base name as loc and fills it using get.
func download(loc string, log logrus.FieldLogger, get func(io.Writer) error) (string, error) {
	dir, err := os.MkdirTemp("", "dustindex")
	if err != nil {
		return "", fmt.Errorf("dustindex: failed creating temporary download directory: %v", err)
	}
	fname := filepath.Join(dir, path.Base(strings.SplitN(loc, "?", 2)[0]))
	w, err := os.Create(fname)
	if err != nil {
		return "", fmt.Errorf("dustindex: failed creating file for download: %v", err)
	}
	if err = get(w); err != nil {
		w.Close()
		return "", fmt.Errorf("dustindex: downloading %s: %w", loc, err)
	}
	if err = w.Close(); err != nil {
		return "", fmt.Errorf("dustindex: downloading %s: %w", loc, err)
	}
	log.WithFields(logrus.Fields{"from": loc, "to": fname}).Debug("downloaded input")
	return fname, nil
}

// downloadHTTP copies the body of the response from url to w.
func downloadHTTP(ctx context.Context, url string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server responded with status %s", resp.Status)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}
