package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// OSInfo summarises the host for the status command.
type OSInfo struct {
	Hostname        string
	Platform        string
	PlatformVersion string
	KernelArch      string

	// Caption is the marketing name from WMI ("Microsoft Windows 11 Pro").
	// Empty off Windows or when WMI is unavailable.
	Caption string

	// Build is the OS build number reported by WMI.
	Build string
}

// Name returns the most descriptive OS name available.
func (i OSInfo) Name() string {
	if i.Caption != "" {
		return i.Caption
	}
	name := strings.TrimSpace(i.Platform + " " + i.PlatformVersion)
	if name == "" {
		return "unknown"
	}
	return name
}

// CollectOSInfo gathers host details via gopsutil, enriched with the WMI
// caption on Windows. A WMI failure is not fatal.
func CollectOSInfo(ctx context.Context) (OSInfo, error) {
	stat, err := host.InfoWithContext(ctx)
	if err != nil {
		return OSInfo{}, fmt.Errorf("host info: %w", err)
	}

	info := OSInfo{
		Hostname:        stat.Hostname,
		Platform:        stat.Platform,
		PlatformVersion: stat.PlatformVersion,
		KernelArch:      stat.KernelArch,
	}
	if caption, build, err := queryCaption(); err == nil {
		info.Caption = caption
		info.Build = build
	}
	return info, nil
}
