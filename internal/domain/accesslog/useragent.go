package accesslog

import "strings"

const unknown = "Unknown"

const (
	DeviceDesktop = "Desktop"
	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
)

// ClientInfo is the coarse classification of a user agent.
type ClientInfo struct {
	Browser   string `json:"browser"`
	OS        string `json:"os"`
	Device    string `json:"device"`
	UserAgent string `json:"user_agent"`
}

// Classify maps ua to browser, OS and device class with ordered
// first-match substring checks. The OS order matters: an Android UA usually
// also contains "Linux" and an iPhone UA contains "Mac OS X", so both are
// reported by their desktop OS. The device class is decided from the mobile
// tokens alone so that those UAs are still reported as Mobile or Tablet.
func Classify(ua string) ClientInfo {
	has := func(s string) bool { return strings.Contains(ua, s) }

	return ClientInfo{
		Browser:   classifyBrowser(has),
		OS:        classifyOS(has),
		Device:    classifyDevice(has),
		UserAgent: ua,
	}
}

func classifyBrowser(has func(string) bool) string {
	switch {
	case has("Firefox"):
		return "Firefox"
	case has("Chrome") && !has("Edg"):
		return "Chrome"
	case has("Safari") && !has("Chrome"):
		return "Safari"
	case has("Edg"):
		return "Edge"
	case has("Opera") || has("OPR"):
		return "Opera"
	}
	return unknown
}

func classifyOS(has func(string) bool) string {
	switch {
	case has("Windows"):
		return "Windows"
	case has("Mac"):
		return "macOS"
	case has("Linux"):
		return "Linux"
	case has("Android"):
		return "Android"
	case has("iOS") || has("iPhone") || has("iPad"):
		return "iOS"
	}
	return unknown
}

func classifyDevice(has func(string) bool) string {
	switch {
	case has("iPad"):
		return DeviceTablet
	case has("Android"):
		if has("Mobile") {
			return DeviceMobile
		}
		return DeviceTablet
	case has("iPhone") || has("iOS"):
		return DeviceMobile
	}
	return DeviceDesktop
}
