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
	"fmt"
	"strconv"
	"time"

	"github.com/aurora-oss/gplay/playproto"
)

// ReviewSort selects the ordering of a review listing.
type ReviewSort int

const (
	ReviewSortNewest ReviewSort = iota
	ReviewSortHighRating
	ReviewSortHelpful
)

// Review is one user review of an app.
type Review struct {
	CommentID string
	Author    string
	Title     string
	Comment   string
	Rating    int
	Timestamp time.Time
}

// ReviewPage is one page of reviews plus its page cursor.
type ReviewPage struct {
	Reviews     []*Review
	NextPageURL string
}

// HasNext reports whether another review page exists.
func (p *ReviewPage) HasNext() bool {
	return p.NextPageURL != ""
}

// Reviews fetches one page of user reviews for a package.
func (s *Store) Reviews(packageName string, sort ReviewSort) (*ReviewPage, error) {
	params := map[string]string{
		"doc":  packageName,
		"sort": strconv.Itoa(int(sort)),
		"c":    "3",
	}
	payload, err := s.getPayload(reviewsEndpoint, params, playproto.KindReview)
	if err != nil {
		return nil, err
	}
	return reviewPageFrom(payload.ReviewResponse), nil
}

// NextReviewPage follows a page's cursor. A page without one yields an
// empty page.
func (s *Store) NextReviewPage(page *ReviewPage) (*ReviewPage, error) {
	if page == nil || page.NextPageURL == "" {
		return &ReviewPage{}, nil
	}
	payload, err := s.getPayloadURL(page.NextPageURL, playproto.KindReview)
	if err != nil {
		return nil, err
	}
	return reviewPageFrom(payload.ReviewResponse), nil
}

// AddReview submits a review for a package, replacing any earlier
// review by the same account, and returns the review as stored.
func (s *Store) AddReview(packageName, title, comment string, rating int) (*Review, error) {
	params := map[string]string{
		"doc":     packageName,
		"title":   title,
		"content": comment,
		"rating":  strconv.Itoa(rating),
		"rst":     "3",
		"itpr":    "false",
	}
	payload, err := s.postPayload(addReviewEndpoint, params, playproto.KindReview)
	if err != nil {
		return nil, fmt.Errorf("cannot add review for %q: %v", packageName, err)
	}
	stored := reviewFrom(payload.ReviewResponse.UserReview)
	if stored == nil {
		return nil, fmt.Errorf("cannot add review for %q: server echoed no review", packageName)
	}
	return stored, nil
}

func reviewFrom(r *playproto.Review) *Review {
	if r == nil {
		return nil
	}
	return &Review{
		CommentID: r.CommentID,
		Author:    r.Author,
		Title:     r.Title,
		Comment:   r.Comment,
		Rating:    r.StarRating,
		Timestamp: time.UnixMilli(r.TimestampMsec),
	}
}

func reviewPageFrom(rr *playproto.ReviewResponse) *ReviewPage {
	page := &ReviewPage{NextPageURL: rr.NextPageURL}
	for _, r := range rr.Review {
		if rev := reviewFrom(r); rev != nil {
			page.Reviews = append(page.Reviews, rev)
		}
	}
	return page
}
