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
	"net/url"

	"github.com/aurora-oss/gplay/playproto"
)

// SearchResult is one page of search hits.
type SearchResult struct {
	OriginalQuery  string
	SuggestedQuery string
	Apps           []*App
	NextPageURL    string
}

// HasNext reports whether another result page exists.
func (r *SearchResult) HasNext() bool {
	return r.NextPageURL != ""
}

// Search queries the catalog. Pagination follows server-issued
// cursors; use NextSearchPage with the returned result.
func (s *Store) Search(query string) (*SearchResult, error) {
	params := map[string]string{"c": "3", "q": query}
	payload, err := s.getPayload(searchEndpoint, params, playproto.KindSearch)
	if err != nil {
		return nil, err
	}
	return searchResultFrom(payload.SearchResponse), nil
}

// NextSearchPage follows a result's page cursor. A result without one
// yields an empty result.
func (s *Store) NextSearchPage(result *SearchResult) (*SearchResult, error) {
	if result == nil || result.NextPageURL == "" {
		return &SearchResult{}, nil
	}
	payload, err := s.getPayloadURL(result.NextPageURL, playproto.KindSearch)
	if err != nil {
		return nil, err
	}
	return searchResultFrom(payload.SearchResponse), nil
}

// Suggestion is one typeahead entry for a partial search query; a set
// PackageName marks a direct app hit rather than a query completion.
type Suggestion struct {
	Title       string
	PackageName string
	ImageURL    string
}

// SearchSuggestions fetches typeahead entries for a partial query.
func (s *Store) SearchSuggestions(query string) ([]*Suggestion, error) {
	// sst repeats: 2 asks for query completions, 3 for app hits
	q := url.Values{
		"q":   {query},
		"sb":  {"5"},
		"sst": {"2", "3"},
	}
	u := s.endpointURL(searchSuggestEndpoint)
	resp, err := s.client.GetWithQuery(u, s.authedHeaders(), q.Encode())
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	payload, err := s.decodePayload(resp, playproto.KindSearchSuggest)
	if err != nil {
		return nil, err
	}
	var suggestions []*Suggestion
	for _, e := range payload.SearchSuggestResponse.Entry {
		if e == nil {
			continue
		}
		suggestions = append(suggestions, &Suggestion{
			Title:       e.Title,
			PackageName: e.PackageName,
			ImageURL:    e.ImageURL,
		})
	}
	return suggestions, nil
}

func searchResultFrom(sr *playproto.SearchResponse) *SearchResult {
	result := &SearchResult{
		OriginalQuery:  sr.OriginalQuery,
		SuggestedQuery: sr.SuggestedQuery,
		Apps:           appsFromItems(sr.Item),
	}
	// the page cursor rides on the first container item
	for _, it := range sr.Item {
		if it != nil && it.ContainerMetadata != nil && it.ContainerMetadata.NextPageURL != "" {
			result.NextPageURL = it.ContainerMetadata.NextPageURL
			break
		}
	}
	return result
}
