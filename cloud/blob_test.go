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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitBlob(t *testing.T) {
	tests := []struct {
		loc, bucket, key string
		wantErr          bool
	}{
		{loc: "gs://lidar/plots/DustIndexPlot.js", bucket: "gs://lidar", key: "plots/DustIndexPlot.js"},
		{loc: "s3://lidar/li171111.b532?region=eu-central-1", bucket: "s3://lidar?region=eu-central-1", key: "li171111.b532"},
		{loc: "file:///tmp/plots/DustIndexPlot.js", bucket: "file:///tmp/plots", key: "DustIndexPlot.js"},
		{loc: "file:///tmp/plots/", wantErr: true},
		{loc: "gs://lidar", wantErr: true},
		{loc: "ftp://lidar/x", wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.loc, func(t *testing.T) {
			b, k, err := SplitBlob(test.loc)
			if test.wantErr {
				if err == nil {
					t.Errorf("expected an error, got %s %s", b, k)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if b != test.bucket || k != test.key {
				t.Errorf("(%s, %s) != (%s, %s)", b, k, test.bucket, test.key)
			}
		})
	}
}

func TestIsBlob(t *testing.T) {
	for path, want := range map[string]bool{
		"gs://a/b":         true,
		"s3://a/b":         true,
		"file:///a/b":      true,
		"/a/b":             false,
		"http://a/b":       false,
		"DustIndexPlot.js": false,
	} {
		if IsBlob(path) != want {
			t.Errorf("IsBlob(%s) != %v", path, want)
		}
	}
}

func TestUploadDownload(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	loc := "file://" + filepath.ToSlash(dir) + "/DustIndexPlot.js"
	data := []byte("(function() {})();\n")

	if err := Upload(ctx, loc, bytes.NewReader(data)); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "DustIndexPlot.js"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, data) {
		t.Errorf("%q != %q", b, data)
	}

	buf := new(bytes.Buffer)
	if err := Download(ctx, loc, buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), data) {
		t.Errorf("%q != %q", buf.Bytes(), data)
	}

	if err := Download(ctx, "file://"+filepath.ToSlash(dir)+"/missing.js", buf); err == nil {
		t.Error("missing blob should cause an error")
	}
}
