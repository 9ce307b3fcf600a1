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

package playproto

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// ResponseWrapper is the outer envelope of every binary store response.
// It carries one primary payload and zero or more prefetched responses
// the server sent along preemptively.
type ResponseWrapper struct {
	Payload  *Payload
	Commands *ServerCommands
	PreFetch []PreFetch
}

// ServerCommands carries server-side directives attached to a response.
type ServerCommands struct {
	ClearCache          bool
	DisplayErrorMessage string
	LogErrorStacktrace  string
}

// PreFetch is a preemptively fetched sub-response keyed by the URL it
// would have been fetched from.
type PreFetch struct {
	URL      string
	Response *ResponseWrapper
	Etag     string
	TTL      int64
}

// Kind discriminates the payload union.
type Kind int

const (
	KindUnknown Kind = iota
	KindList
	KindDetails
	KindReview
	KindBuy
	KindSearch
	KindToc
	KindBrowse
	KindBulkDetails
	KindAcceptTos
	KindUploadDeviceConfig
	KindDelivery
	KindSearchSuggest
	KindUserProfile
)

// Payload is the tagged union of response kinds. Exactly one field is
// expected to be set; Kind reports which.
type Payload struct {
	ListResponse               *ListResponse
	DetailsResponse            *DetailsResponse
	ReviewResponse             *ReviewResponse
	BuyResponse                *BuyResponse
	SearchResponse             *SearchResponse
	TocResponse                *TocResponse
	BrowseResponse             *BrowseResponse
	BulkDetailsResponse        *BulkDetailsResponse
	AcceptTosResponse          *AcceptTosResponse
	UploadDeviceConfigResponse *UploadDeviceConfigResponse
	DeliveryResponse           *DeliveryResponse
	SearchSuggestResponse      *SearchSuggestResponse
	UserProfileResponse        *UserProfileResponse
}

// Kind returns the discriminator of the payload, resolved once at decode
// time rather than through has-field probing at call sites.
func (p *Payload) Kind() Kind {
	switch {
	case p == nil:
		return KindUnknown
	case p.ListResponse != nil:
		return KindList
	case p.DetailsResponse != nil:
		return KindDetails
	case p.ReviewResponse != nil:
		return KindReview
	case p.BuyResponse != nil:
		return KindBuy
	case p.SearchResponse != nil:
		return KindSearch
	case p.TocResponse != nil:
		return KindToc
	case p.BrowseResponse != nil:
		return KindBrowse
	case p.BulkDetailsResponse != nil:
		return KindBulkDetails
	case p.AcceptTosResponse != nil:
		return KindAcceptTos
	case p.UploadDeviceConfigResponse != nil:
		return KindUploadDeviceConfig
	case p.DeliveryResponse != nil:
		return KindDelivery
	case p.SearchSuggestResponse != nil:
		return KindSearchSuggest
	case p.UserProfileResponse != nil:
		return KindUserProfile
	}
	return KindUnknown
}

// EmptyFor reports whether the payload is structurally empty for the
// response kind the caller expects. The server sometimes ships the real
// answer in a prefetch slot while the primary slot holds a placeholder.
func (p *Payload) EmptyFor(kind Kind) bool {
	if p == nil {
		return true
	}
	switch kind {
	case KindList:
		return p.ListResponse == nil || len(p.ListResponse.Item) == 0
	case KindSearch:
		return p.SearchResponse == nil || len(p.SearchResponse.Item) == 0
	case KindBrowse:
		return p.BrowseResponse == nil || p.BrowseResponse.ContentsURL == ""
	}
	return p.Kind() != kind
}

// PreferredPayload resolves the payload to use for the expected kind,
// falling back to the first prefetch entry when the primary payload is
// structurally empty.
func (r *ResponseWrapper) PreferredPayload(kind Kind) *Payload {
	if r.Payload != nil && !r.Payload.EmptyFor(kind) {
		return r.Payload
	}
	if len(r.PreFetch) > 0 && r.PreFetch[0].Response != nil && r.PreFetch[0].Response.Payload != nil {
		return r.PreFetch[0].Response.Payload
	}
	return r.Payload
}

// DecodeResponseWrapper decodes the outer envelope. It is a pure
// function of its input; failures indicate malformed bytes, never a
// retryable condition.
func DecodeResponseWrapper(b []byte) (*ResponseWrapper, error) {
	var r ResponseWrapper
	if err := r.unmarshal(b); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *ResponseWrapper) Marshal() []byte { return r.appendTo(nil) }

func (r *ResponseWrapper) appendTo(b []byte) []byte {
	if r.Payload != nil {
		b = appendMessage(b, 1, r.Payload.appendTo)
	}
	if r.Commands != nil {
		b = appendMessage(b, 2, r.Commands.appendTo)
	}
	for i := range r.PreFetch {
		b = appendMessage(b, 5, r.PreFetch[i].appendTo)
	}
	return b
}

func (r *ResponseWrapper) unmarshal(b []byte) error {
	return unmarshalMessage("ResponseWrapper", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeMessage(b, num, typ, func(v []byte) error {
				r.Payload = new(Payload)
				return r.Payload.unmarshal(v)
			})
		case 2:
			return consumeMessage(b, num, typ, func(v []byte) error {
				r.Commands = new(ServerCommands)
				return r.Commands.unmarshal(v)
			})
		case 5:
			return consumeMessage(b, num, typ, func(v []byte) error {
				var p PreFetch
				if err := p.unmarshal(v); err != nil {
					return err
				}
				r.PreFetch = append(r.PreFetch, p)
				return nil
			})
		}
		return 0, nil
	})
}

func (c *ServerCommands) appendTo(b []byte) []byte {
	b = appendBool(b, 1, c.ClearCache)
	b = appendString(b, 2, c.DisplayErrorMessage)
	b = appendString(b, 3, c.LogErrorStacktrace)
	return b
}

func (c *ServerCommands) unmarshal(b []byte) error {
	return unmarshalMessage("ServerCommands", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeBool(b, num, typ, &c.ClearCache)
		case 2:
			return consumeString(b, num, typ, &c.DisplayErrorMessage)
		case 3:
			return consumeString(b, num, typ, &c.LogErrorStacktrace)
		}
		return 0, nil
	})
}

func (p *PreFetch) appendTo(b []byte) []byte {
	b = appendString(b, 1, p.URL)
	if p.Response != nil {
		b = appendMessage(b, 2, p.Response.appendTo)
	}
	b = appendString(b, 3, p.Etag)
	b = appendInt64(b, 4, p.TTL)
	return b
}

func (p *PreFetch) unmarshal(b []byte) error {
	return unmarshalMessage("PreFetch", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(b, num, typ, &p.URL)
		case 2:
			return consumeMessage(b, num, typ, func(v []byte) error {
				p.Response = new(ResponseWrapper)
				return p.Response.unmarshal(v)
			})
		case 3:
			return consumeString(b, num, typ, &p.Etag)
		case 4:
			return consumeInt64(b, num, typ, &p.TTL)
		}
		return 0, nil
	})
}

func (p *Payload) appendTo(b []byte) []byte {
	if p.ListResponse != nil {
		b = appendMessage(b, 1, p.ListResponse.appendTo)
	}
	if p.DetailsResponse != nil {
		b = appendMessage(b, 2, p.DetailsResponse.appendTo)
	}
	if p.ReviewResponse != nil {
		b = appendMessage(b, 3, p.ReviewResponse.appendTo)
	}
	if p.BuyResponse != nil {
		b = appendMessage(b, 4, p.BuyResponse.appendTo)
	}
	if p.SearchResponse != nil {
		b = appendMessage(b, 5, p.SearchResponse.appendTo)
	}
	if p.TocResponse != nil {
		b = appendMessage(b, 6, p.TocResponse.appendTo)
	}
	if p.BrowseResponse != nil {
		b = appendMessage(b, 7, p.BrowseResponse.appendTo)
	}
	if p.BulkDetailsResponse != nil {
		b = appendMessage(b, 8, p.BulkDetailsResponse.appendTo)
	}
	if p.AcceptTosResponse != nil {
		b = appendMessage(b, 9, p.AcceptTosResponse.appendTo)
	}
	if p.UploadDeviceConfigResponse != nil {
		b = appendMessage(b, 10, p.UploadDeviceConfigResponse.appendTo)
	}
	if p.DeliveryResponse != nil {
		b = appendMessage(b, 11, p.DeliveryResponse.appendTo)
	}
	if p.SearchSuggestResponse != nil {
		b = appendMessage(b, 12, p.SearchSuggestResponse.appendTo)
	}
	if p.UserProfileResponse != nil {
		b = appendMessage(b, 13, p.UserProfileResponse.appendTo)
	}
	return b
}

func (p *Payload) unmarshal(b []byte) error {
	return unmarshalMessage("Payload", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeMessage(b, num, typ, func(v []byte) error {
				p.ListResponse = new(ListResponse)
				return p.ListResponse.unmarshal(v)
			})
		case 2:
			return consumeMessage(b, num, typ, func(v []byte) error {
				p.DetailsResponse = new(DetailsResponse)
				return p.DetailsResponse.unmarshal(v)
			})
		case 3:
			return consumeMessage(b, num, typ, func(v []byte) error {
				p.ReviewResponse = new(ReviewResponse)
				return p.ReviewResponse.unmarshal(v)
			})
		case 4:
			return consumeMessage(b, num, typ, func(v []byte) error {
				p.BuyResponse = new(BuyResponse)
				return p.BuyResponse.unmarshal(v)
			})
		case 5:
			return consumeMessage(b, num, typ, func(v []byte) error {
				p.SearchResponse = new(SearchResponse)
				return p.SearchResponse.unmarshal(v)
			})
		case 6:
			return consumeMessage(b, num, typ, func(v []byte) error {
				p.TocResponse = new(TocResponse)
				return p.TocResponse.unmarshal(v)
			})
		case 7:
			return consumeMessage(b, num, typ, func(v []byte) error {
				p.BrowseResponse = new(BrowseResponse)
				return p.BrowseResponse.unmarshal(v)
			})
		case 8:
			return consumeMessage(b, num, typ, func(v []byte) error {
				p.BulkDetailsResponse = new(BulkDetailsResponse)
				return p.BulkDetailsResponse.unmarshal(v)
			})
		case 9:
			return consumeMessage(b, num, typ, func(v []byte) error {
				p.AcceptTosResponse = new(AcceptTosResponse)
				return p.AcceptTosResponse.unmarshal(v)
			})
		case 10:
			return consumeMessage(b, num, typ, func(v []byte) error {
				p.UploadDeviceConfigResponse = new(UploadDeviceConfigResponse)
				return p.UploadDeviceConfigResponse.unmarshal(v)
			})
		case 11:
			return consumeMessage(b, num, typ, func(v []byte) error {
				p.DeliveryResponse = new(DeliveryResponse)
				return p.DeliveryResponse.unmarshal(v)
			})
		case 12:
			return consumeMessage(b, num, typ, func(v []byte) error {
				p.SearchSuggestResponse = new(SearchSuggestResponse)
				return p.SearchSuggestResponse.unmarshal(v)
			})
		case 13:
			return consumeMessage(b, num, typ, func(v []byte) error {
				p.UserProfileResponse = new(UserProfileResponse)
				return p.UserProfileResponse.unmarshal(v)
			})
		}
		return 0, nil
	})
}
