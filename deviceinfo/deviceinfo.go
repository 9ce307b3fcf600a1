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

// Package deviceinfo loads device capability profiles. A profile is an
// ini-style .properties file describing one concrete device; the
// handshake serializes it into the check-in and device-configuration
// messages, and its version fields feed the protocol user-agent.
package deviceinfo

import (
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mvo5/goconfigparser"

	"github.com/aurora-oss/gplay/playproto"
)

//go:embed profiles/*.properties
var profilesFS embed.FS

// Profile is an immutable device description, loaded once and held for
// the life of a session.
type Profile struct {
	UserReadableName string

	Fingerprint  string
	Hardware     string
	Radio        string
	Bootloader   string
	Brand        string
	Device       string
	Model        string
	Manufacturer string
	Product      string
	BuildID      string
	SdkVersion   int
	Release      string

	VendingVersion       int
	VendingVersionString string
	GsfVersion           int

	TouchScreen          int
	Keyboard             int
	Navigation           int
	ScreenLayout         int
	HasHardKeyboard      bool
	HasFiveWayNavigation bool
	GlEsVersion          int
	ScreenDensity        int
	ScreenWidth          int
	ScreenHeight         int

	Platforms       []string
	SharedLibraries []string
	Features        []string
	Locales         []string
	GlExtensions    []string

	CellOperator string
	SimOperator  string
	TimeZone     string
	Roaming      string
	Client       string
}

// Profiles lists the names of the built-in device profiles.
func Profiles() []string {
	entries, err := profilesFS.ReadDir("profiles")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".properties"))
	}
	sort.Strings(names)
	return names
}

// ReadProfile loads a built-in profile by name.
func ReadProfile(name string) (*Profile, error) {
	f, err := profilesFS.Open("profiles/" + name + ".properties")
	if err != nil {
		return nil, fmt.Errorf("cannot read device profile %q: no such built-in profile", name)
	}
	defer f.Close()
	return ParseProfile(f)
}

// ParseProfile parses a .properties device description.
func ParseProfile(r io.Reader) (*Profile, error) {
	cfg := goconfigparser.New()
	cfg.AllowNoSectionHeader = true
	if err := cfg.Read(r); err != nil {
		return nil, fmt.Errorf("cannot parse device profile: %v", err)
	}

	get := func(key string) string {
		v, _ := cfg.Get("", key)
		return strings.TrimSpace(v)
	}
	getInt := func(key string) int {
		v, _ := cfg.Getint("", key)
		return int(v)
	}
	getBool := func(key string) bool {
		return strings.EqualFold(get(key), "true")
	}
	getList := func(key string) []string {
		raw := get(key)
		if raw == "" {
			return nil
		}
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}

	p := &Profile{
		UserReadableName: get("UserReadableName"),

		Fingerprint:  get("Build.FINGERPRINT"),
		Hardware:     get("Build.HARDWARE"),
		Radio:        get("Build.RADIO"),
		Bootloader:   get("Build.BOOTLOADER"),
		Brand:        get("Build.BRAND"),
		Device:       get("Build.DEVICE"),
		Model:        get("Build.MODEL"),
		Manufacturer: get("Build.MANUFACTURER"),
		Product:      get("Build.PRODUCT"),
		BuildID:      get("Build.ID"),
		SdkVersion:   getInt("Build.VERSION.SDK_INT"),
		Release:      get("Build.VERSION.RELEASE"),

		VendingVersion:       getInt("Vending.version"),
		VendingVersionString: get("Vending.versionString"),
		GsfVersion:           getInt("GSF.version"),

		TouchScreen:          getInt("TouchScreen"),
		Keyboard:             getInt("Keyboard"),
		Navigation:           getInt("Navigation"),
		ScreenLayout:         getInt("ScreenLayout"),
		HasHardKeyboard:      getBool("HasHardKeyboard"),
		HasFiveWayNavigation: getBool("HasFiveWayNavigation"),
		GlEsVersion:          getInt("GL.Version"),
		ScreenDensity:        getInt("Screen.Density"),
		ScreenWidth:          getInt("Screen.Width"),
		ScreenHeight:         getInt("Screen.Height"),

		Platforms:       getList("Platforms"),
		SharedLibraries: getList("SharedLibraries"),
		Features:        getList("Features"),
		Locales:         getList("Locales"),
		GlExtensions:    getList("GL.Extensions"),

		CellOperator: get("CellOperator"),
		SimOperator:  get("SimOperator"),
		TimeZone:     get("TimeZone"),
		Roaming:      get("Roaming"),
		Client:       get("Client"),
	}

	if p.Fingerprint == "" {
		return nil, fmt.Errorf("cannot parse device profile: missing Build.FINGERPRINT")
	}

	return p, nil
}

// DeviceConfiguration builds the capability message uploaded after
// check-in.
func (p *Profile) DeviceConfiguration() *playproto.DeviceConfiguration {
	return &playproto.DeviceConfiguration{
		TouchScreen:            p.TouchScreen,
		Keyboard:               p.Keyboard,
		Navigation:             p.Navigation,
		ScreenLayout:           p.ScreenLayout,
		HasHardKeyboard:        p.HasHardKeyboard,
		HasFiveWayNavigation:   p.HasFiveWayNavigation,
		ScreenDensity:          p.ScreenDensity,
		GlEsVersion:            p.GlEsVersion,
		SystemSharedLibrary:    p.SharedLibraries,
		SystemAvailableFeature: p.Features,
		NativePlatform:         p.Platforms,
		ScreenWidth:            p.ScreenWidth,
		ScreenHeight:           p.ScreenHeight,
		SystemSupportedLocale:  p.Locales,
		GlExtension:            p.GlExtensions,
	}
}

// CheckinRequest builds the check-in message for the given locale and
// wall-clock time in milliseconds.
func (p *Profile) CheckinRequest(locale string, nowMsec int64) *playproto.AndroidCheckinRequest {
	return &playproto.AndroidCheckinRequest{
		Checkin: &playproto.AndroidCheckinProto{
			Build: &playproto.AndroidBuildProto{
				ID:             p.Fingerprint,
				Product:        p.Hardware,
				Carrier:        p.Brand,
				Radio:          p.Radio,
				Bootloader:     p.Bootloader,
				Client:         p.Client,
				Timestamp:      nowMsec / 1000,
				GoogleServices: p.GsfVersion,
				Device:         p.Device,
				SdkVersion:     p.SdkVersion,
				Model:          p.Model,
				Manufacturer:   p.Manufacturer,
				BuildProduct:   p.Product,
				OtaInstalled:   false,
			},
			LastCheckinMsec: 0,
			CellOperator:    p.CellOperator,
			SimOperator:     p.SimOperator,
			Roaming:         p.Roaming,
			UserNumber:      0,
		},
		Locale:              locale,
		TimeZone:            p.TimeZone,
		Version:             3,
		DeviceConfiguration: p.DeviceConfiguration(),
		Fragment:            0,
	}
}

// UserAgent is the protocol user-agent sent on catalog and purchase
// calls; the store varies responses on it.
func (p *Profile) UserAgent() string {
	return fmt.Sprintf("Android-Finsky/%s (api=3,versionCode=%d,sdk=%d,device=%s,hardware=%s,product=%s,platformVersionRelease=%s,model=%s,buildId=%s,isWideScreen=0)",
		strings.Fields(p.VendingVersionString+" unknown")[0],
		p.VendingVersion, p.SdkVersion, p.Device, p.Hardware, p.Product,
		p.Release, strings.ReplaceAll(p.Model, " ", ""), p.BuildID)
}

// AuthUserAgent is the user-agent for the token-exchange endpoint,
// which predates the catalog protocol and expects the GoogleAuth form.
func (p *Profile) AuthUserAgent() string {
	return fmt.Sprintf("GoogleAuth/1.4 (%s %s)", p.Device, p.BuildID)
}
