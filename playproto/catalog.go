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

// ListResponse is a generic item listing; search, browse, library and
// review streams all reduce to it.
type ListResponse struct {
	Item []*Item
}

// Item is the universal catalog node. The store nests one level of
// grouping: a top-level item carries sub-items, each of which describes
// one cluster or one app.
type Item struct {
	ID                string
	Type              int
	Title             string
	Subtitle          string
	Description       string
	SubItem           []*Item
	ContainerMetadata *ContainerMetadata
	Annotations       *Annotations
	Offer             []*Offer
	Image             []*Image
}

// ContainerMetadata carries the pagination cursors of a list container.
type ContainerMetadata struct {
	BrowseURL        string
	NextPageURL      string
	EstimatedResults int64
	Ordered          bool
}

// Annotations carries side-band item attributes.
type Annotations struct {
	PurchaseHistoryDetails *PurchaseHistoryDetails
	AnnotationLink         *AnnotationLink
}

// AnnotationLink points at the browse node an annotated item stands for;
// category tiles carry their browse cursor here.
type AnnotationLink struct {
	ResolvedLink *ResolvedLink
}

// ResolvedLink is the server-resolved target of an annotation link.
type ResolvedLink struct {
	BrowseURL string
}

// PurchaseHistoryDetails describes a past purchase attached to a
// library or purchase-history item.
type PurchaseHistoryDetails struct {
	PurchaseStatus    string
	PurchaseTimestamp int64
}

// Image is one artwork descriptor of an item.
type Image struct {
	Type   int
	URL    string
	Width  int
	Height int

	// FillColorRGB is the dominant-color hint for tile backgrounds.
	FillColorRGB string
}

// Offer is one purchasable offer attached to an item.
type Offer struct {
	Micros          int64
	CurrencyCode    string
	FormattedAmount string
	OfferType       int
}

// SearchResponse carries search results plus query echo fields.
type SearchResponse struct {
	OriginalQuery  string
	SuggestedQuery string
	Item           []*Item
}

// SearchSuggestResponse carries typeahead suggestions for a partial
// query.
type SearchSuggestResponse struct {
	Entry []*SearchSuggestEntry
}

// SearchSuggestEntry is one suggestion: a query completion, or a direct
// hit on a package when PackageName is set.
type SearchSuggestEntry struct {
	Type        int
	Title       string
	PackageName string
	ImageURL    string
}

// UserProfileResponse carries the account profile of the session owner.
type UserProfileResponse struct {
	UserProfile *UserProfile
}

// UserProfile is the server-side record of the signed-in account.
type UserProfile struct {
	Name  string
	Email string
	Image []*Image
}

// DetailsResponse carries the full record of a single item.
type DetailsResponse struct {
	Item       *Item
	FooterHTML string
}

// BrowseResponse points at the listing contents of a browse node.
type BrowseResponse struct {
	Title       string
	ContentsURL string
}

// ReviewResponse carries a page of reviews; after an add or edit round
// the server echoes the stored review in UserReview.
type ReviewResponse struct {
	Review      []*Review
	NextPageURL string
	UserReview  *Review
}

// Review is a single user review.
type Review struct {
	CommentID     string
	Author        string
	Title         string
	Comment       string
	StarRating    int
	TimestampMsec int64
}

// BulkDetailsRequest asks for the records of several packages at once.
type BulkDetailsRequest struct {
	DocID            []string
	IncludeChildDocs bool
}

// ModifyLibraryRequest adds packages to or removes them from a named
// user library, such as the wishlist.
type ModifyLibraryRequest struct {
	LibraryID         string
	AddPackageName    []string
	RemovePackageName []string
}

// BulkDetailsResponse answers a BulkDetailsRequest, one entry per
// requested package, in request order.
type BulkDetailsResponse struct {
	Entry []*BulkDetailsEntry
}

// BulkDetailsEntry wraps one item of a bulk details response.
type BulkDetailsEntry struct {
	Item *Item
}

func (l *ListResponse) appendTo(b []byte) []byte {
	for _, it := range l.Item {
		b = appendMessage(b, 1, it.appendTo)
	}
	return b
}

func (l *ListResponse) unmarshal(b []byte) error {
	return unmarshalMessage("ListResponse", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeMessage(b, num, typ, func(v []byte) error {
				it := new(Item)
				if err := it.unmarshal(v); err != nil {
					return err
				}
				l.Item = append(l.Item, it)
				return nil
			})
		}
		return 0, nil
	})
}

func (it *Item) appendTo(b []byte) []byte {
	b = appendString(b, 1, it.ID)
	b = appendInt(b, 2, it.Type)
	b = appendString(b, 3, it.Title)
	b = appendString(b, 4, it.Subtitle)
	b = appendString(b, 5, it.Description)
	for _, sub := range it.SubItem {
		b = appendMessage(b, 6, sub.appendTo)
	}
	if it.ContainerMetadata != nil {
		b = appendMessage(b, 7, it.ContainerMetadata.appendTo)
	}
	if it.Annotations != nil {
		b = appendMessage(b, 8, it.Annotations.appendTo)
	}
	for _, o := range it.Offer {
		b = appendMessage(b, 9, o.appendTo)
	}
	for _, img := range it.Image {
		b = appendMessage(b, 10, img.appendTo)
	}
	return b
}

func (it *Item) unmarshal(b []byte) error {
	return unmarshalMessage("Item", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(b, num, typ, &it.ID)
		case 2:
			return consumeInt(b, num, typ, &it.Type)
		case 3:
			return consumeString(b, num, typ, &it.Title)
		case 4:
			return consumeString(b, num, typ, &it.Subtitle)
		case 5:
			return consumeString(b, num, typ, &it.Description)
		case 6:
			return consumeMessage(b, num, typ, func(v []byte) error {
				sub := new(Item)
				if err := sub.unmarshal(v); err != nil {
					return err
				}
				it.SubItem = append(it.SubItem, sub)
				return nil
			})
		case 7:
			return consumeMessage(b, num, typ, func(v []byte) error {
				it.ContainerMetadata = new(ContainerMetadata)
				return it.ContainerMetadata.unmarshal(v)
			})
		case 8:
			return consumeMessage(b, num, typ, func(v []byte) error {
				it.Annotations = new(Annotations)
				return it.Annotations.unmarshal(v)
			})
		case 9:
			return consumeMessage(b, num, typ, func(v []byte) error {
				o := new(Offer)
				if err := o.unmarshal(v); err != nil {
					return err
				}
				it.Offer = append(it.Offer, o)
				return nil
			})
		case 10:
			return consumeMessage(b, num, typ, func(v []byte) error {
				img := new(Image)
				if err := img.unmarshal(v); err != nil {
					return err
				}
				it.Image = append(it.Image, img)
				return nil
			})
		}
		return 0, nil
	})
}

func (m *ContainerMetadata) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.BrowseURL)
	b = appendString(b, 2, m.NextPageURL)
	b = appendInt64(b, 3, m.EstimatedResults)
	b = appendBool(b, 4, m.Ordered)
	return b
}

func (m *ContainerMetadata) unmarshal(b []byte) error {
	return unmarshalMessage("ContainerMetadata", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(b, num, typ, &m.BrowseURL)
		case 2:
			return consumeString(b, num, typ, &m.NextPageURL)
		case 3:
			return consumeInt64(b, num, typ, &m.EstimatedResults)
		case 4:
			return consumeBool(b, num, typ, &m.Ordered)
		}
		return 0, nil
	})
}

func (a *Annotations) appendTo(b []byte) []byte {
	if a.PurchaseHistoryDetails != nil {
		b = appendMessage(b, 1, a.PurchaseHistoryDetails.appendTo)
	}
	if a.AnnotationLink != nil {
		b = appendMessage(b, 2, a.AnnotationLink.appendTo)
	}
	return b
}

func (a *Annotations) unmarshal(b []byte) error {
	return unmarshalMessage("Annotations", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeMessage(b, num, typ, func(v []byte) error {
				a.PurchaseHistoryDetails = new(PurchaseHistoryDetails)
				return a.PurchaseHistoryDetails.unmarshal(v)
			})
		case 2:
			return consumeMessage(b, num, typ, func(v []byte) error {
				a.AnnotationLink = new(AnnotationLink)
				return a.AnnotationLink.unmarshal(v)
			})
		}
		return 0, nil
	})
}

func (l *AnnotationLink) appendTo(b []byte) []byte {
	if l.ResolvedLink != nil {
		b = appendMessage(b, 1, l.ResolvedLink.appendTo)
	}
	return b
}

func (l *AnnotationLink) unmarshal(b []byte) error {
	return unmarshalMessage("AnnotationLink", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeMessage(b, num, typ, func(v []byte) error {
				l.ResolvedLink = new(ResolvedLink)
				return l.ResolvedLink.unmarshal(v)
			})
		}
		return 0, nil
	})
}

func (l *ResolvedLink) appendTo(b []byte) []byte {
	b = appendString(b, 1, l.BrowseURL)
	return b
}

func (l *ResolvedLink) unmarshal(b []byte) error {
	return unmarshalMessage("ResolvedLink", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(b, num, typ, &l.BrowseURL)
		}
		return 0, nil
	})
}

func (p *PurchaseHistoryDetails) appendTo(b []byte) []byte {
	b = appendString(b, 1, p.PurchaseStatus)
	b = appendInt64(b, 2, p.PurchaseTimestamp)
	return b
}

func (p *PurchaseHistoryDetails) unmarshal(b []byte) error {
	return unmarshalMessage("PurchaseHistoryDetails", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(b, num, typ, &p.PurchaseStatus)
		case 2:
			return consumeInt64(b, num, typ, &p.PurchaseTimestamp)
		}
		return 0, nil
	})
}

func (i *Image) appendTo(b []byte) []byte {
	b = appendInt(b, 1, i.Type)
	b = appendString(b, 2, i.URL)
	b = appendInt(b, 3, i.Width)
	b = appendInt(b, 4, i.Height)
	b = appendString(b, 5, i.FillColorRGB)
	return b
}

func (i *Image) unmarshal(b []byte) error {
	return unmarshalMessage("Image", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt(b, num, typ, &i.Type)
		case 2:
			return consumeString(b, num, typ, &i.URL)
		case 3:
			return consumeInt(b, num, typ, &i.Width)
		case 4:
			return consumeInt(b, num, typ, &i.Height)
		case 5:
			return consumeString(b, num, typ, &i.FillColorRGB)
		}
		return 0, nil
	})
}

func (o *Offer) appendTo(b []byte) []byte {
	b = appendInt64(b, 1, o.Micros)
	b = appendString(b, 2, o.CurrencyCode)
	b = appendString(b, 3, o.FormattedAmount)
	b = appendInt(b, 4, o.OfferType)
	return b
}

func (o *Offer) unmarshal(b []byte) error {
	return unmarshalMessage("Offer", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt64(b, num, typ, &o.Micros)
		case 2:
			return consumeString(b, num, typ, &o.CurrencyCode)
		case 3:
			return consumeString(b, num, typ, &o.FormattedAmount)
		case 4:
			return consumeInt(b, num, typ, &o.OfferType)
		}
		return 0, nil
	})
}

func (s *SearchResponse) appendTo(b []byte) []byte {
	b = appendString(b, 1, s.OriginalQuery)
	b = appendString(b, 2, s.SuggestedQuery)
	for _, it := range s.Item {
		b = appendMessage(b, 3, it.appendTo)
	}
	return b
}

func (s *SearchResponse) unmarshal(b []byte) error {
	return unmarshalMessage("SearchResponse", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(b, num, typ, &s.OriginalQuery)
		case 2:
			return consumeString(b, num, typ, &s.SuggestedQuery)
		case 3:
			return consumeMessage(b, num, typ, func(v []byte) error {
				it := new(Item)
				if err := it.unmarshal(v); err != nil {
					return err
				}
				s.Item = append(s.Item, it)
				return nil
			})
		}
		return 0, nil
	})
}

func (s *SearchSuggestResponse) appendTo(b []byte) []byte {
	for _, e := range s.Entry {
		b = appendMessage(b, 1, e.appendTo)
	}
	return b
}

func (s *SearchSuggestResponse) unmarshal(b []byte) error {
	return unmarshalMessage("SearchSuggestResponse", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeMessage(b, num, typ, func(v []byte) error {
				e := new(SearchSuggestEntry)
				if err := e.unmarshal(v); err != nil {
					return err
				}
				s.Entry = append(s.Entry, e)
				return nil
			})
		}
		return 0, nil
	})
}

func (e *SearchSuggestEntry) appendTo(b []byte) []byte {
	b = appendInt(b, 1, e.Type)
	b = appendString(b, 2, e.Title)
	b = appendString(b, 3, e.PackageName)
	b = appendString(b, 4, e.ImageURL)
	return b
}

func (e *SearchSuggestEntry) unmarshal(b []byte) error {
	return unmarshalMessage("SearchSuggestEntry", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt(b, num, typ, &e.Type)
		case 2:
			return consumeString(b, num, typ, &e.Title)
		case 3:
			return consumeString(b, num, typ, &e.PackageName)
		case 4:
			return consumeString(b, num, typ, &e.ImageURL)
		}
		return 0, nil
	})
}

func (u *UserProfileResponse) appendTo(b []byte) []byte {
	if u.UserProfile != nil {
		b = appendMessage(b, 1, u.UserProfile.appendTo)
	}
	return b
}

func (u *UserProfileResponse) unmarshal(b []byte) error {
	return unmarshalMessage("UserProfileResponse", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeMessage(b, num, typ, func(v []byte) error {
				u.UserProfile = new(UserProfile)
				return u.UserProfile.unmarshal(v)
			})
		}
		return 0, nil
	})
}

func (u *UserProfile) appendTo(b []byte) []byte {
	b = appendString(b, 1, u.Name)
	b = appendString(b, 2, u.Email)
	for _, img := range u.Image {
		b = appendMessage(b, 3, img.appendTo)
	}
	return b
}

func (u *UserProfile) unmarshal(b []byte) error {
	return unmarshalMessage("UserProfile", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(b, num, typ, &u.Name)
		case 2:
			return consumeString(b, num, typ, &u.Email)
		case 3:
			return consumeMessage(b, num, typ, func(v []byte) error {
				img := new(Image)
				if err := img.unmarshal(v); err != nil {
					return err
				}
				u.Image = append(u.Image, img)
				return nil
			})
		}
		return 0, nil
	})
}

func (d *DetailsResponse) appendTo(b []byte) []byte {
	if d.Item != nil {
		b = appendMessage(b, 1, d.Item.appendTo)
	}
	b = appendString(b, 2, d.FooterHTML)
	return b
}

func (d *DetailsResponse) unmarshal(b []byte) error {
	return unmarshalMessage("DetailsResponse", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeMessage(b, num, typ, func(v []byte) error {
				d.Item = new(Item)
				return d.Item.unmarshal(v)
			})
		case 2:
			return consumeString(b, num, typ, &d.FooterHTML)
		}
		return 0, nil
	})
}

func (br *BrowseResponse) appendTo(b []byte) []byte {
	b = appendString(b, 1, br.Title)
	b = appendString(b, 2, br.ContentsURL)
	return b
}

func (br *BrowseResponse) unmarshal(b []byte) error {
	return unmarshalMessage("BrowseResponse", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(b, num, typ, &br.Title)
		case 2:
			return consumeString(b, num, typ, &br.ContentsURL)
		}
		return 0, nil
	})
}

func (r *ReviewResponse) appendTo(b []byte) []byte {
	for _, rev := range r.Review {
		b = appendMessage(b, 1, rev.appendTo)
	}
	b = appendString(b, 2, r.NextPageURL)
	if r.UserReview != nil {
		b = appendMessage(b, 3, r.UserReview.appendTo)
	}
	return b
}

func (r *ReviewResponse) unmarshal(b []byte) error {
	return unmarshalMessage("ReviewResponse", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeMessage(b, num, typ, func(v []byte) error {
				rev := new(Review)
				if err := rev.unmarshal(v); err != nil {
					return err
				}
				r.Review = append(r.Review, rev)
				return nil
			})
		case 2:
			return consumeString(b, num, typ, &r.NextPageURL)
		case 3:
			return consumeMessage(b, num, typ, func(v []byte) error {
				r.UserReview = new(Review)
				return r.UserReview.unmarshal(v)
			})
		}
		return 0, nil
	})
}

func (r *Review) appendTo(b []byte) []byte {
	b = appendString(b, 1, r.CommentID)
	b = appendString(b, 2, r.Author)
	b = appendString(b, 3, r.Title)
	b = appendString(b, 4, r.Comment)
	b = appendInt(b, 5, r.StarRating)
	b = appendInt64(b, 6, r.TimestampMsec)
	return b
}

func (r *Review) unmarshal(b []byte) error {
	return unmarshalMessage("Review", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(b, num, typ, &r.CommentID)
		case 2:
			return consumeString(b, num, typ, &r.Author)
		case 3:
			return consumeString(b, num, typ, &r.Title)
		case 4:
			return consumeString(b, num, typ, &r.Comment)
		case 5:
			return consumeInt(b, num, typ, &r.StarRating)
		case 6:
			return consumeInt64(b, num, typ, &r.TimestampMsec)
		}
		return 0, nil
	})
}

// Marshal encodes the request for transmission.
func (r *BulkDetailsRequest) Marshal() []byte { return r.appendTo(nil) }

func (r *BulkDetailsRequest) appendTo(b []byte) []byte {
	b = appendStrings(b, 1, r.DocID)
	b = appendBool(b, 2, r.IncludeChildDocs)
	return b
}

func (r *BulkDetailsRequest) unmarshal(b []byte) error {
	return unmarshalMessage("BulkDetailsRequest", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeStrings(b, num, typ, &r.DocID)
		case 2:
			return consumeBool(b, num, typ, &r.IncludeChildDocs)
		}
		return 0, nil
	})
}

// Marshal encodes the request for transmission.
func (r *ModifyLibraryRequest) Marshal() []byte { return r.appendTo(nil) }

func (r *ModifyLibraryRequest) appendTo(b []byte) []byte {
	b = appendString(b, 1, r.LibraryID)
	b = appendStrings(b, 2, r.AddPackageName)
	b = appendStrings(b, 3, r.RemovePackageName)
	return b
}

func (r *ModifyLibraryRequest) unmarshal(b []byte) error {
	return unmarshalMessage("ModifyLibraryRequest", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(b, num, typ, &r.LibraryID)
		case 2:
			return consumeStrings(b, num, typ, &r.AddPackageName)
		case 3:
			return consumeStrings(b, num, typ, &r.RemovePackageName)
		}
		return 0, nil
	})
}

func (r *BulkDetailsResponse) appendTo(b []byte) []byte {
	for _, e := range r.Entry {
		b = appendMessage(b, 1, e.appendTo)
	}
	return b
}

func (r *BulkDetailsResponse) unmarshal(b []byte) error {
	return unmarshalMessage("BulkDetailsResponse", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeMessage(b, num, typ, func(v []byte) error {
				e := new(BulkDetailsEntry)
				if err := e.unmarshal(v); err != nil {
					return err
				}
				r.Entry = append(r.Entry, e)
				return nil
			})
		}
		return 0, nil
	})
}

func (e *BulkDetailsEntry) appendTo(b []byte) []byte {
	if e.Item != nil {
		b = appendMessage(b, 1, e.Item.appendTo)
	}
	return b
}

func (e *BulkDetailsEntry) unmarshal(b []byte) error {
	return unmarshalMessage("BulkDetailsEntry", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeMessage(b, num, typ, func(v []byte) error {
				e.Item = new(Item)
				return e.Item.unmarshal(v)
			})
		}
		return 0, nil
	})
}
