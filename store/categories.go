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
	"github.com/aurora-oss/gplay/playproto"
)

// The category listing sections the server knows about.
const (
	CategoryApps   = "APPLICATION"
	CategoryGames  = "GAME"
	CategoryFamily = "FAMILY"
)

// Category is one browsable section of the catalog.
type Category struct {
	Title     string
	ImageURL  string
	Color     string
	BrowseURL string
}

// Categories fetches the browsable sections for one top-level category
// type, such as CategoryApps or CategoryGames.
func (s *Store) Categories(categoryType string) ([]*Category, error) {
	params := map[string]string{"c": "3", "cat": categoryType}
	payload, err := s.getPayload(categoriesEndpoint, params, playproto.KindList)
	if err != nil {
		return nil, err
	}
	return categoriesFrom(payload.ListResponse), nil
}

// categoriesFrom extracts category tiles from a category listing. The
// tiles sit two levels down: the single top-level item groups one
// container whose sub-items are the categories.
func categoriesFrom(lr *playproto.ListResponse) []*Category {
	if lr == nil || len(lr.Item) == 0 || lr.Item[0] == nil {
		return nil
	}
	top := lr.Item[0]
	if len(top.SubItem) == 0 || top.SubItem[0] == nil {
		return nil
	}
	var categories []*Category
	for _, it := range top.SubItem[0].SubItem {
		if it == nil {
			continue
		}
		categories = append(categories, categoryFromItem(it))
	}
	return categories
}

func categoryFromItem(it *playproto.Item) *Category {
	cat := &Category{Title: it.Title}
	if len(it.Image) > 0 && it.Image[0] != nil {
		cat.ImageURL = it.Image[0].URL
		cat.Color = it.Image[0].FillColorRGB
	}
	if a := it.Annotations; a != nil && a.AnnotationLink != nil && a.AnnotationLink.ResolvedLink != nil {
		cat.BrowseURL = a.AnnotationLink.ResolvedLink.BrowseURL
	}
	return cat
}
