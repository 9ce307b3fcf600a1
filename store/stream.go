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
	"hash/fnv"

	"github.com/aurora-oss/gplay/httputil"
	"github.com/aurora-oss/gplay/playproto"
)

// StreamCluster is one horizontal shelf of a browse stream: a titled
// group of apps with its own pagination cursor.
type StreamCluster struct {
	// ID is stable across refreshes of the same shelf; it is derived
	// from the shelf's browse cursor.
	ID          uint32
	Title       string
	Subtitle    string
	BrowseURL   string
	NextPageURL string
	Apps        []*App
}

// StreamBundle is one page of a browse stream, a set of clusters keyed
// by cluster id plus the cursor to the next page.
type StreamBundle struct {
	Title       string
	Clusters    map[uint32]*StreamCluster
	NextPageURL string
}

// HasNext reports whether another bundle page exists.
func (b *StreamBundle) HasNext() bool {
	return b.NextPageURL != ""
}

func clusterID(browseURL string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(browseURL))
	return h.Sum32()
}

// bundleFromList decodes one stream page. The shelves live one level
// down: the first top-level item groups them as sub-items, and carries
// the page cursor. A shape the decoder does not recognize yields an
// empty bundle, never an error; streams degrade, they do not fail.
func bundleFromList(lr *playproto.ListResponse) *StreamBundle {
	bundle := &StreamBundle{Clusters: make(map[uint32]*StreamCluster)}
	if lr == nil || len(lr.Item) == 0 {
		return bundle
	}
	top := lr.Item[0]
	if top == nil {
		return bundle
	}
	bundle.Title = top.Title
	if top.ContainerMetadata != nil {
		bundle.NextPageURL = top.ContainerMetadata.NextPageURL
	}
	for _, sub := range top.SubItem {
		if sub == nil {
			continue
		}
		cluster := clusterFromItem(sub)
		bundle.Clusters[cluster.ID] = cluster
	}
	return bundle
}

func clusterFromItem(it *playproto.Item) *StreamCluster {
	cluster := &StreamCluster{
		Title:    it.Title,
		Subtitle: it.Subtitle,
		Apps:     appsFromItems(it.SubItem),
	}
	if it.ContainerMetadata != nil {
		cluster.BrowseURL = it.ContainerMetadata.BrowseURL
		cluster.NextPageURL = it.ContainerMetadata.NextPageURL
	}
	cluster.ID = clusterID(cluster.BrowseURL)
	return cluster
}

// listFrom extracts the list payload of a stream response, tolerating
// responses that carry none.
func listFrom(payload *playproto.Payload) *playproto.ListResponse {
	if payload == nil {
		return nil
	}
	return payload.ListResponse
}

// getStream fetches one stream page. Responses that fail or carry no
// recognizable list payload decode to an empty bundle; running out of
// stream is a terminal state, not an error.
func (s *Store) getStream(endpoint string, params map[string]string) (*StreamBundle, error) {
	u := s.endpointURL(endpoint)
	resp, err := s.client.Get(u, s.authedHeaders(), params)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	return bundleFromList(streamListFrom(resp)), nil
}

func (s *Store) getStreamURL(rawurl string) (*playproto.ListResponse, error) {
	u := s.absoluteURL(rawurl)
	resp, err := s.client.GetWithQuery(u, s.authedHeaders(), "")
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	return streamListFrom(resp), nil
}

// streamListFrom extracts a stream response's list payload. Non-success
// responses and malformed envelopes yield nil, which decodes to an
// empty bundle further up.
func streamListFrom(resp *httputil.Response) *playproto.ListResponse {
	if !resp.OK {
		return nil
	}
	wrapper, err := playproto.DecodeResponseWrapper(resp.Body)
	if err != nil {
		return nil
	}
	return listFrom(wrapper.PreferredPayload(playproto.KindList))
}

// Browse follows a cluster's browse cursor. The server answers either
// with a listing directly, or with a browse document pointing at the
// listing contents, which is then fetched in a second round.
func (s *Store) Browse(browseURL string) (*StreamBundle, error) {
	if browseURL == "" {
		return &StreamBundle{Clusters: make(map[uint32]*StreamCluster)}, nil
	}
	u := s.absoluteURL(browseURL)
	resp, err := s.client.GetWithQuery(u, s.authedHeaders(), "")
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	if !resp.OK {
		return nil, statusError(resp)
	}
	wrapper, err := playproto.DecodeResponseWrapper(resp.Body)
	if err != nil {
		return nil, err
	}
	payload := wrapper.PreferredPayload(playproto.KindBrowse)
	if payload != nil && payload.BrowseResponse != nil && payload.BrowseResponse.ContentsURL != "" {
		br := payload.BrowseResponse
		lr, err := s.getStreamURL(br.ContentsURL)
		if err != nil {
			return nil, err
		}
		bundle := bundleFromList(lr)
		if bundle.Title == "" {
			bundle.Title = br.Title
		}
		return bundle, nil
	}
	return bundleFromList(listFrom(wrapper.PreferredPayload(playproto.KindList))), nil
}

// HomeStream fetches the first page of the store front stream.
func (s *Store) HomeStream() (*StreamBundle, error) {
	params := map[string]string{"c": "3", "nocache_isui": "true"}
	return s.getStream(homeEndpoint, params)
}

// TopChartsStream fetches the first page of the top charts stream for
// one chart and category.
func (s *Store) TopChartsStream(chart, category string) (*StreamBundle, error) {
	params := map[string]string{
		"c":     "3",
		"stcid": chart,
		"scat":  category,
	}
	return s.getStream(topChartsEndpoint, params)
}

// NextBundle follows a bundle's page cursor. Following a bundle without
// one yields an empty bundle.
func (s *Store) NextBundle(bundle *StreamBundle) (*StreamBundle, error) {
	if bundle == nil || bundle.NextPageURL == "" {
		return &StreamBundle{Clusters: make(map[uint32]*StreamCluster)}, nil
	}
	lr, err := s.getStreamURL(bundle.NextPageURL)
	if err != nil {
		return nil, err
	}
	return bundleFromList(lr), nil
}

// NextCluster follows a cluster's own page cursor and returns the
// cluster with the next page of apps. A cluster without a cursor yields
// an empty cluster.
func (s *Store) NextCluster(cluster *StreamCluster) (*StreamCluster, error) {
	if cluster == nil || cluster.NextPageURL == "" {
		return &StreamCluster{}, nil
	}
	lr, err := s.getStreamURL(cluster.NextPageURL)
	if err != nil {
		return nil, err
	}
	if lr == nil || len(lr.Item) == 0 || lr.Item[0] == nil {
		return &StreamCluster{}, nil
	}
	return clusterFromItem(lr.Item[0]), nil
}
