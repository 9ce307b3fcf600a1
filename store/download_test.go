// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2026 Aurora OSS
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package store_test

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	. "gopkg.in/check.v1"
	"gopkg.in/retry.v1"

	"github.com/aurora-oss/gplay/store"
	"github.com/aurora-oss/gplay/testutil"
)

var downloadContent = []byte("0123456789abcdefghijklmnopqrstuvwxyz")

func contentArtifact(url string) *store.Artifact {
	sum := sha256.Sum256(downloadContent)
	return &store.Artifact{
		Name:   "com.example.app.apk",
		Type:   store.ArtifactBase,
		URL:    url,
		Size:   int64(len(downloadContent)),
		Sha256: hex.EncodeToString(sum[:]),
	}
}

func (s *storeSuite) TestDownload(c *C) {
	var gotCookie string
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("MarketDA"); err == nil {
			gotCookie = cookie.Value
		}
		w.Write(downloadContent)
	}

	artifact := contentArtifact(s.server.URL + "/download/x.apk")
	artifact.Cookies = map[string]string{"MarketDA": "cookie-1"}

	targetPath := filepath.Join(c.MkDir(), artifact.Name)
	err := s.store.Download(artifact, targetPath)
	c.Assert(err, IsNil)

	c.Check(targetPath, testutil.FileEquals, downloadContent)
	c.Check(gotCookie, Equals, "cookie-1")
	// the staging file was renamed away
	_, err = os.Stat(targetPath + ".partial")
	c.Check(os.IsNotExist(err), Equals, true)
}

func (s *storeSuite) TestDownloadResume(c *C) {
	var gotRange string
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		gotRange = r.Header.Get("Range")
		w.WriteHeader(206)
		w.Write(downloadContent[10:])
	}

	artifact := contentArtifact(s.server.URL + "/download/x.apk")
	targetPath := filepath.Join(c.MkDir(), artifact.Name)
	c.Assert(os.WriteFile(targetPath+".partial", downloadContent[:10], 0600), IsNil)

	err := s.store.Download(artifact, targetPath)
	c.Assert(err, IsNil)
	c.Check(gotRange, Equals, "bytes=10-")
	c.Check(targetPath, testutil.FileEquals, downloadContent)
}

func (s *storeSuite) TestDownloadStaleResumeRestarts(c *C) {
	var requests int
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.Header.Get("Range") != "" {
			// resumed attempt completes but over stale data
			w.WriteHeader(206)
			w.Write(downloadContent[10:])
			return
		}
		w.Write(downloadContent)
	}

	artifact := contentArtifact(s.server.URL + "/download/x.apk")
	targetPath := filepath.Join(c.MkDir(), artifact.Name)
	c.Assert(os.WriteFile(targetPath+".partial", []byte("stale-data"), 0600), IsNil)

	err := s.store.Download(artifact, targetPath)
	c.Assert(err, IsNil)
	c.Check(requests, Equals, 2)
	c.Check(targetPath, testutil.FileEquals, downloadContent)
}

func (s *storeSuite) TestDownloadIgnoredRange(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		// a server that does not honor ranges answers 200 with the
		// full content; the partial data must be thrown away
		w.Write(downloadContent)
	}

	artifact := contentArtifact(s.server.URL + "/download/x.apk")
	targetPath := filepath.Join(c.MkDir(), artifact.Name)
	c.Assert(os.WriteFile(targetPath+".partial", downloadContent[:10], 0600), IsNil)

	err := s.store.Download(artifact, targetPath)
	c.Assert(err, IsNil)
	c.Check(targetPath, testutil.FileEquals, downloadContent)
}

func (s *storeSuite) TestDownloadHashMismatch(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not the right content at all"))
	}

	artifact := contentArtifact(s.server.URL + "/download/x.apk")
	targetPath := filepath.Join(c.MkDir(), artifact.Name)

	err := s.store.Download(artifact, targetPath)
	c.Assert(err, ErrorMatches, `cannot verify download of "com.example.app.apk": sha256 mismatch.*`)
	// no final file appears
	_, err = os.Stat(targetPath)
	c.Check(os.IsNotExist(err), Equals, true)
}

func (s *storeSuite) TestDownloadSizeMismatch(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write(downloadContent)
	}

	artifact := contentArtifact(s.server.URL + "/download/x.apk")
	artifact.Sha256 = ""
	artifact.Size = 5

	targetPath := filepath.Join(c.MkDir(), artifact.Name)
	err := s.store.Download(artifact, targetPath)
	c.Assert(err, ErrorMatches, `cannot verify download of "com.example.app.apk": size 36 does not match expected 5`)
}

func (s *storeSuite) TestDownloadNotFound(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", 404)
	}

	artifact := contentArtifact(s.server.URL + "/download/x.apk")
	targetPath := filepath.Join(c.MkDir(), artifact.Name)
	err := s.store.Download(artifact, targetPath)
	c.Assert(err, Equals, store.ErrAppNotFound)
}

func (s *storeSuite) TestDownloadRetriesServerErrors(c *C) {
	restore := store.MockDownloadRetryStrategy(retry.LimitCount(3, retry.Regular{Min: 3}))
	defer restore()

	var requests int
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests < 3 {
			http.Error(w, "hiccup", 502)
			return
		}
		w.Write(downloadContent)
	}

	artifact := contentArtifact(s.server.URL + "/download/x.apk")
	targetPath := filepath.Join(c.MkDir(), artifact.Name)
	err := s.store.Download(artifact, targetPath)
	c.Assert(err, IsNil)
	c.Check(requests, Equals, 3)
	c.Check(targetPath, testutil.FileEquals, downloadContent)
}

func (s *storeSuite) TestDownloadNoURL(c *C) {
	err := s.store.Download(&store.Artifact{Name: "x.apk"}, filepath.Join(c.MkDir(), "x.apk"))
	c.Assert(err, ErrorMatches, fmt.Sprintf(`cannot download %q: no download URL`, "x.apk"))
}
