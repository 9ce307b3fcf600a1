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

package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/aurora-oss/gplay/httputil"
	"github.com/aurora-oss/gplay/logger"
)

var downloadRetryStrategy = httputil.DefaultRetryStrategy

// Download fetches an artifact into targetPath. Data is staged in a
// ".partial" sibling so an interrupted download resumes where it left
// off; the artifact digest is verified before the final rename. A
// resumed download whose digest does not match is restarted once from
// scratch, in case the partial data was stale.
func (s *Store) Download(artifact *Artifact, targetPath string) (err error) {
	if artifact.URL == "" {
		return fmt.Errorf("cannot download %q: no download URL", artifact.Name)
	}

	partialPath := targetPath + ".partial"
	w, err := os.OpenFile(partialPath, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return err
	}
	// the partial file survives a failed download for a later resume
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	resume, err := w.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}

	err = s.downloadTo(artifact, w, resume)
	if err != nil && resume > 0 {
		logger.Debugf("restarting download of %q from scratch: %v", artifact.Name, err)
		if err := truncateFile(w); err != nil {
			return err
		}
		err = s.downloadTo(artifact, w, 0)
	}
	if err != nil {
		return err
	}

	if err = w.Sync(); err != nil {
		return err
	}
	return os.Rename(partialPath, targetPath)
}

func truncateFile(f *os.File) error {
	if err := f.Truncate(0); err != nil {
		return err
	}
	_, err := f.Seek(0, io.SeekStart)
	return err
}

// downloadTo performs one download attempt into w, resuming at the
// given offset, and verifies the digest over the complete content.
func (s *Store) downloadTo(artifact *Artifact, w *os.File, resume int64) error {
	h := sha256.New()
	if resume > 0 {
		if _, err := w.Seek(0, io.SeekStart); err != nil {
			return err
		}
		if _, err := io.Copy(h, w); err != nil {
			return err
		}
	}

	startTime := time.Now()
	var finalErr error
	httpClient := httputil.NewHTTPClient(&httputil.ClientOpts{})
	_, finalErr = httputil.RetryRequest(artifact.URL, func() (*http.Response, error) {
		req, err := http.NewRequest("GET", artifact.URL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", httputil.UserAgent())
		if s.session != nil && s.session.Device != nil {
			req.Header.Set("User-Agent", s.session.Device.UserAgent())
		}
		for name, value := range artifact.Cookies {
			req.AddCookie(&http.Cookie{Name: name, Value: value})
		}
		if resume > 0 {
			req.Header.Set("Range", fmt.Sprintf("bytes=%d-", resume))
		}
		return httpClient.Do(req)
	}, func(resp *http.Response) error {
		switch resp.StatusCode {
		case http.StatusOK, http.StatusPartialContent:
			// carry on
		case http.StatusUnauthorized, http.StatusForbidden:
			return &AuthError{Reason: fmt.Sprintf("download host rejected credentials (%d)", resp.StatusCode)}
		case http.StatusNotFound:
			return ErrAppNotFound
		default:
			return &ServerError{StatusCode: resp.StatusCode}
		}

		if resume > 0 && resp.StatusCode == http.StatusOK {
			// server ignored the range request
			if err := truncateFile(w); err != nil {
				return err
			}
			h.Reset()
		}
		if _, err := io.Copy(io.MultiWriter(w, h), resp.Body); err != nil {
			// not retryable in place, the file position has moved;
			// the caller restarts from scratch instead
			return fmt.Errorf("cannot write download of %q: %v", artifact.Name, err)
		}
		return nil
	}, downloadRetryStrategy)
	if finalErr != nil {
		return finalErr
	}

	if artifact.Sha256 != "" {
		if sum := hex.EncodeToString(h.Sum(nil)); sum != artifact.Sha256 {
			return fmt.Errorf("cannot verify download of %q: sha256 mismatch (got %s)", artifact.Name, sum)
		}
	}
	if artifact.Size > 0 {
		fi, err := w.Stat()
		if err != nil {
			return err
		}
		if fi.Size() != artifact.Size {
			return fmt.Errorf("cannot verify download of %q: size %d does not match expected %d", artifact.Name, fi.Size(), artifact.Size)
		}
	}
	maybeLogDownloadDuration(artifact.Name, startTime)
	return nil
}

func maybeLogDownloadDuration(name string, startTime time.Time) {
	logger.Debugf("downloaded %q in %v", name, time.Since(startTime).Round(time.Millisecond))
}
