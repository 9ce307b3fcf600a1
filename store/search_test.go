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
	"net/http"
	"time"

	. "gopkg.in/check.v1"

	"github.com/aurora-oss/gplay/playproto"
	"github.com/aurora-oss/gplay/store"
)

func (s *storeSuite) TestSearch(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		c.Check(r.URL.Path, Equals, "/fdfe/search")
		c.Check(r.URL.Query().Get("q"), Equals, "example")
		respondPayload(w, &playproto.Payload{
			SearchResponse: &playproto.SearchResponse{
				OriginalQuery:  "example",
				SuggestedQuery: "examples",
				Item: []*playproto.Item{{
					Title:             "Results",
					ContainerMetadata: &playproto.ContainerMetadata{NextPageURL: "search?q=example&n=2"},
					SubItem: []*playproto.Item{
						{ID: "com.example.one", Title: "One"},
						{ID: "com.example.two", Title: "Two"},
					},
				}},
			},
		})
	}

	result, err := s.store.Search("example")
	c.Assert(err, IsNil)
	c.Check(result.OriginalQuery, Equals, "example")
	c.Check(result.SuggestedQuery, Equals, "examples")
	c.Assert(result.Apps, HasLen, 2)
	c.Check(result.Apps[0].PackageName, Equals, "com.example.one")
	c.Check(result.NextPageURL, Equals, "search?q=example&n=2")
	c.Check(result.HasNext(), Equals, true)
}

func (s *storeSuite) TestNextSearchPage(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		c.Check(r.URL.Path, Equals, "/fdfe/search")
		c.Check(r.URL.Query().Get("n"), Equals, "2")
		respondPayload(w, &playproto.Payload{
			SearchResponse: &playproto.SearchResponse{
				Item: []*playproto.Item{
					{ID: "com.example.three", Title: "Three"},
				},
			},
		})
	}

	next, err := s.store.NextSearchPage(&store.SearchResult{NextPageURL: "search?q=example&n=2"})
	c.Assert(err, IsNil)
	c.Assert(next.Apps, HasLen, 1)
	c.Check(next.HasNext(), Equals, false)
}

func (s *storeSuite) TestNextSearchPageWithoutCursor(c *C) {
	next, err := s.store.NextSearchPage(&store.SearchResult{})
	c.Assert(err, IsNil)
	c.Check(next.Apps, HasLen, 0)
}

func (s *storeSuite) TestSearchSuggestions(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		c.Check(r.URL.Path, Equals, "/fdfe/searchSuggest")
		c.Check(r.URL.Query().Get("q"), Equals, "exa")
		c.Check(r.URL.Query().Get("sb"), Equals, "5")
		// both suggestion flavors are requested
		c.Check(r.URL.Query()["sst"], DeepEquals, []string{"2", "3"})
		respondPayload(w, &playproto.Payload{
			SearchSuggestResponse: &playproto.SearchSuggestResponse{
				Entry: []*playproto.SearchSuggestEntry{
					{Type: 2, Title: "example"},
					{Type: 3, Title: "Example App", PackageName: "com.example.app", ImageURL: "https://img/e.png"},
				},
			},
		})
	}

	suggestions, err := s.store.SearchSuggestions("exa")
	c.Assert(err, IsNil)
	c.Assert(suggestions, HasLen, 2)
	c.Check(suggestions[0], DeepEquals, &store.Suggestion{Title: "example"})
	c.Check(suggestions[1], DeepEquals, &store.Suggestion{
		Title:       "Example App",
		PackageName: "com.example.app",
		ImageURL:    "https://img/e.png",
	})
}

func (s *storeSuite) TestSearchSuggestionsEmpty(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		respondPayload(w, &playproto.Payload{
			SearchSuggestResponse: &playproto.SearchSuggestResponse{},
		})
	}
	suggestions, err := s.store.SearchSuggestions("zzz")
	c.Assert(err, IsNil)
	c.Check(suggestions, HasLen, 0)
}

func (s *storeSuite) TestReviews(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		c.Check(r.URL.Path, Equals, "/fdfe/rev")
		c.Check(r.URL.Query().Get("doc"), Equals, "com.example.app")
		c.Check(r.URL.Query().Get("sort"), Equals, "0")
		respondPayload(w, &playproto.Payload{
			ReviewResponse: &playproto.ReviewResponse{
				Review: []*playproto.Review{{
					CommentID:     "gp:1",
					Author:        "A. User",
					Title:         "Nice",
					Comment:       "Works well.",
					StarRating:    5,
					TimestampMsec: 1700000000000,
				}},
				NextPageURL: "rev?doc=com.example.app&o=20",
			},
		})
	}

	page, err := s.store.Reviews("com.example.app", store.ReviewSortNewest)
	c.Assert(err, IsNil)
	c.Assert(page.Reviews, HasLen, 1)
	c.Check(page.Reviews[0], DeepEquals, &store.Review{
		CommentID: "gp:1",
		Author:    "A. User",
		Title:     "Nice",
		Comment:   "Works well.",
		Rating:    5,
		Timestamp: time.UnixMilli(1700000000000),
	})
	c.Check(page.HasNext(), Equals, true)
}

func (s *storeSuite) TestAddReview(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		c.Check(r.URL.Path, Equals, "/fdfe/addReview")
		c.Check(r.Method, Equals, "POST")
		c.Assert(r.ParseForm(), IsNil)
		c.Check(r.PostForm.Get("doc"), Equals, "com.example.app")
		c.Check(r.PostForm.Get("title"), Equals, "Nice")
		c.Check(r.PostForm.Get("content"), Equals, "Works well.")
		c.Check(r.PostForm.Get("rating"), Equals, "5")
		respondPayload(w, &playproto.Payload{
			ReviewResponse: &playproto.ReviewResponse{
				UserReview: &playproto.Review{
					CommentID:     "gp:2",
					Author:        "Me",
					Title:         "Nice",
					Comment:       "Works well.",
					StarRating:    5,
					TimestampMsec: 1700000000000,
				},
			},
		})
	}

	review, err := s.store.AddReview("com.example.app", "Nice", "Works well.", 5)
	c.Assert(err, IsNil)
	c.Check(review.CommentID, Equals, "gp:2")
	c.Check(review.Rating, Equals, 5)
}

func (s *storeSuite) TestAddReviewNotEchoed(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		respondPayload(w, &playproto.Payload{
			ReviewResponse: &playproto.ReviewResponse{},
		})
	}
	_, err := s.store.AddReview("com.example.app", "Nice", "Works well.", 5)
	c.Assert(err, ErrorMatches, `cannot add review for "com.example.app": server echoed no review`)
}

func (s *storeSuite) TestNextReviewPage(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		c.Check(r.URL.Path, Equals, "/fdfe/rev")
		c.Check(r.URL.Query().Get("o"), Equals, "20")
		respondPayload(w, &playproto.Payload{
			ReviewResponse: &playproto.ReviewResponse{},
		})
	}

	next, err := s.store.NextReviewPage(&store.ReviewPage{NextPageURL: "rev?doc=com.example.app&o=20"})
	c.Assert(err, IsNil)
	c.Check(next.Reviews, HasLen, 0)
	c.Check(next.HasNext(), Equals, false)
}
