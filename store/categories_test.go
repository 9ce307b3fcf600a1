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

	. "gopkg.in/check.v1"

	"github.com/aurora-oss/gplay/playproto"
	"github.com/aurora-oss/gplay/store"
)

func categoriesListResponse() *playproto.ListResponse {
	return &playproto.ListResponse{
		Item: []*playproto.Item{{
			SubItem: []*playproto.Item{{
				SubItem: []*playproto.Item{
					{
						Title: "Arcade",
						Image: []*playproto.Image{
							{URL: "https://img/arcade.png", FillColorRGB: "#FF5722"},
						},
						Annotations: &playproto.Annotations{
							AnnotationLink: &playproto.AnnotationLink{
								ResolvedLink: &playproto.ResolvedLink{
									BrowseURL: "browse?cat=GAME_ARCADE",
								},
							},
						},
					},
					{
						Title: "Puzzle",
						Annotations: &playproto.Annotations{
							AnnotationLink: &playproto.AnnotationLink{
								ResolvedLink: &playproto.ResolvedLink{
									BrowseURL: "browse?cat=GAME_PUZZLE",
								},
							},
						},
					},
				},
			}},
		}},
	}
}

func (s *storeSuite) TestCategories(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		c.Check(r.URL.Path, Equals, "/fdfe/categoriesList")
		c.Check(r.URL.Query().Get("c"), Equals, "3")
		c.Check(r.URL.Query().Get("cat"), Equals, store.CategoryGames)
		respondPayload(w, &playproto.Payload{ListResponse: categoriesListResponse()})
	}

	categories, err := s.store.Categories(store.CategoryGames)
	c.Assert(err, IsNil)
	c.Assert(categories, HasLen, 2)

	c.Check(categories[0], DeepEquals, &store.Category{
		Title:     "Arcade",
		ImageURL:  "https://img/arcade.png",
		Color:     "#FF5722",
		BrowseURL: "browse?cat=GAME_ARCADE",
	})
	// artwork is optional on a tile
	c.Check(categories[1].ImageURL, Equals, "")
	c.Check(categories[1].BrowseURL, Equals, "browse?cat=GAME_PUZZLE")
}

func (s *storeSuite) TestCategoriesUnexpectedShape(c *C) {
	// a listing without the expected nesting yields no categories
	for _, lr := range []*playproto.ListResponse{
		{Item: []*playproto.Item{{Title: "flat, no sub-items"}}},
		{Item: []*playproto.Item{{SubItem: []*playproto.Item{{}}}}},
	} {
		s.handler = func(w http.ResponseWriter, r *http.Request) {
			respondPayload(w, &playproto.Payload{ListResponse: lr})
		}
		categories, err := s.store.Categories(store.CategoryApps)
		c.Assert(err, IsNil)
		c.Check(categories, HasLen, 0)
	}
}

func (s *storeSuite) TestCategoriesServerError(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "store is closed", 500)
	}
	_, err := s.store.Categories(store.CategoryApps)
	c.Assert(err, ErrorMatches, ".*store is closed.*")
}
