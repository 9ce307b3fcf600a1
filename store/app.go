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

// imageTypeIcon is the artwork slot holding the app icon.
const imageTypeIcon = 4

// App is the catalog record of one application as this client uses it.
// It is a thin projection of the wire item; unrecognized attributes are
// dropped, not round-tripped.
type App struct {
	PackageName string
	Title       string
	Subtitle    string
	Description string
	IconURL     string

	Price Price
}

// Price is the display price of an offer.
type Price struct {
	Micros          int64
	CurrencyCode    string
	FormattedAmount string
	OfferType       int
}

// appFromItem projects a wire item onto the App model. It returns nil
// for items that do not describe an app.
func appFromItem(it *playproto.Item) *App {
	if it == nil || it.ID == "" {
		return nil
	}
	app := &App{
		PackageName: it.ID,
		Title:       it.Title,
		Subtitle:    it.Subtitle,
		Description: it.Description,
	}
	for _, img := range it.Image {
		if img.Type == imageTypeIcon {
			app.IconURL = img.URL
			break
		}
	}
	if len(it.Offer) > 0 {
		offer := it.Offer[0]
		app.Price = Price{
			Micros:          offer.Micros,
			CurrencyCode:    offer.CurrencyCode,
			FormattedAmount: offer.FormattedAmount,
			OfferType:       offer.OfferType,
		}
	}
	return app
}

// appsFromItems projects a list of wire items, flattening one level of
// container nesting: an item without an id but with sub-items
// contributes its sub-items instead.
func appsFromItems(items []*playproto.Item) []*App {
	var apps []*App
	for _, it := range items {
		if it == nil {
			continue
		}
		if it.ID == "" && len(it.SubItem) > 0 {
			apps = append(apps, appsFromItems(it.SubItem)...)
			continue
		}
		if app := appFromItem(it); app != nil {
			apps = append(apps, app)
		}
	}
	return apps
}
