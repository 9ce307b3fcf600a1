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
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/aurora-oss/gplay/playproto"
)

// ArtifactType discriminates the downloadable files of a delivery.
type ArtifactType string

const (
	// ArtifactBase is the main package file.
	ArtifactBase ArtifactType = "base"
	// ArtifactSplit is a split package file.
	ArtifactSplit ArtifactType = "split"
	// ArtifactExpansion is a main expansion data file.
	ArtifactExpansion ArtifactType = "expansion"
	// ArtifactPatch is a patch expansion data file.
	ArtifactPatch ArtifactType = "patch"
)

// Artifact is one downloadable file of a purchased app.
type Artifact struct {
	Name   string
	Type   ArtifactType
	URL    string
	Size   int64
	Sha256 string

	// Cookies must be presented to the download host.
	Cookies map[string]string
}

// Purchase acquires the entitlement for the given package version and
// returns its delivery artifacts. Free apps go through the same flow;
// the entitlement round is not skippable. The session must have
// completed the device handshake and hold a play token.
func (s *Store) Purchase(packageName string, versionCode, offerType int) ([]*Artifact, error) {
	if err := s.session.ReadyForPurchase(); err != nil {
		return nil, err
	}
	deliveryToken, err := s.buy(packageName, versionCode, offerType)
	if err != nil {
		return nil, err
	}
	return s.delivery(packageName, versionCode, offerType, deliveryToken)
}

// buy performs the entitlement round. The returned delivery token may
// legitimately be empty; it is forwarded to delivery only when present.
func (s *Store) buy(packageName string, versionCode, offerType int) (string, error) {
	params := map[string]string{
		"ot":  strconv.Itoa(offerType),
		"doc": packageName,
		"vc":  strconv.Itoa(versionCode),
	}
	payload, err := s.postPayload(purchaseEndpoint, params, playproto.KindBuy)
	if err != nil {
		return "", fmt.Errorf("cannot purchase %q: %v", packageName, err)
	}
	return payload.BuyResponse.EncodedDeliveryToken, nil
}

// delivery fetches the delivery manifest and assembles the artifact
// list from it.
func (s *Store) delivery(packageName string, versionCode, offerType int, deliveryToken string) ([]*Artifact, error) {
	params := map[string]string{
		"ot":  strconv.Itoa(offerType),
		"doc": packageName,
		"vc":  strconv.Itoa(versionCode),
	}
	if deliveryToken != "" {
		params["dtok"] = deliveryToken
	}
	payload, err := s.getPayload(deliveryEndpoint, params, playproto.KindDelivery)
	if err != nil {
		return nil, fmt.Errorf("cannot get delivery for %q: %v", packageName, err)
	}
	resp := payload.DeliveryResponse

	switch resp.Status {
	case playproto.DeliveryStatusOK:
		// fall through to assembly
	case playproto.DeliveryStatusNotSupported:
		return nil, ErrAppNotSupported
	case playproto.DeliveryStatusNotPurchased:
		return nil, ErrAppNotPurchased
	default:
		return nil, &DeliveryError{Status: resp.Status}
	}

	artifacts := assembleArtifacts(packageName, versionCode, resp.AppDeliveryData)
	if len(artifacts) == 0 {
		return nil, ErrEmptyDownloads
	}
	return artifacts, nil
}

// assembleArtifacts flattens the delivery data into named artifacts.
// Names follow the installer conventions: the base package is
// "<pkg>.apk", expansion files are "main.<vc>.<pkg>.obb" or
// "patch.<vc>.<pkg>.obb" with the purchased version code (the file
// descriptors often carry an older one of their own), splits are
// "<split>.apk".
func assembleArtifacts(packageName string, versionCode int, data *playproto.AndroidAppDeliveryData) []*Artifact {
	if data == nil {
		return nil
	}
	cookies := make(map[string]string, len(data.DownloadAuthCookie))
	for _, c := range data.DownloadAuthCookie {
		cookies[c.Name] = c.Value
	}

	var artifacts []*Artifact
	if data.DownloadURL != "" {
		artifacts = append(artifacts, &Artifact{
			Name:    packageName + ".apk",
			Type:    ArtifactBase,
			URL:     data.DownloadURL,
			Size:    data.DownloadSize,
			Sha256:  hex.EncodeToString([]byte(data.Sha256)),
			Cookies: cookies,
		})
	}
	for _, f := range data.AdditionalFile {
		typ, prefix := ArtifactPatch, "patch"
		if f.FileType == 0 {
			typ, prefix = ArtifactExpansion, "main"
		}
		if f.DownloadURL == "" {
			continue
		}
		artifacts = append(artifacts, &Artifact{
			Name:    fmt.Sprintf("%s.%d.%s.obb", prefix, versionCode, packageName),
			Type:    typ,
			URL:     f.DownloadURL,
			Size:    f.Size,
			Cookies: cookies,
		})
	}
	for _, sp := range data.SplitDeliveryData {
		if sp.DownloadURL == "" {
			continue
		}
		artifacts = append(artifacts, &Artifact{
			Name:    sp.Name + ".apk",
			Type:    ArtifactSplit,
			URL:     sp.DownloadURL,
			Size:    sp.DownloadSize,
			Sha256:  hex.EncodeToString([]byte(sp.Sha256)),
			Cookies: cookies,
		})
	}
	return artifacts
}
