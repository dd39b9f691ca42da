package monitor

import (
	"path/filepath"
	"strings"
)

// HostInfo describes the machine model.
type HostInfo struct {
	Vendor         string
	ProductName    string
	ProductVersion string
}

// Model returns the product name followed by its version, skipping
// placeholder strings firmware vendors leave in the DMI table.
func (h HostInfo) Model() string {
	parts := make([]string, 0, 2)
	for _, s := range []string{h.ProductName, h.ProductVersion} {
		if s != "" && !isPlaceholder(s) {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func isPlaceholder(s string) bool {
	switch strings.ToLower(s) {
	case "to be filled by o.e.m.", "to be filled by oem", "default string",
		"system product name", "system version", "not applicable", "none", "0", "0x0":
		return true
	}
	return false
}

// HostReader reads the machine model from the DMI table, falling back to the
// device tree model on boards without one.
type HostReader struct {
	DMIPath        string
	DeviceTreePath string
}

// NewHostReader creates a HostReader with default paths.
func NewHostReader() *HostReader {
	return &HostReader{
		DMIPath:        "/sys/devices/virtual/dmi/id",
		DeviceTreePath: "/sys/firmware/devicetree/base/model",
	}
}

// Read returns the host model.
func (r *HostReader) Read() (HostInfo, error) {
	var info HostInfo
	info.ProductName, _ = readTrimmed(filepath.Join(r.DMIPath, "product_name"))
	info.ProductVersion, _ = readTrimmed(filepath.Join(r.DMIPath, "product_version"))
	info.Vendor, _ = readTrimmed(filepath.Join(r.DMIPath, "sys_vendor"))

	if info.Model() == "" {
		if model, err := readTrimmed(r.DeviceTreePath); err == nil {
			info.ProductName = strings.TrimRight(model, "\x00")
		}
	}
	if info.Model() == "" {
		return info, NewComponentError(ErrorSourceHost, ErrNotAvailable)
	}
	return info, nil
}
