// Package monitor reads the system information printed by go-fetch modules.
// This file implements kernel, hostname and user lookup.
package monitor

import (
	"os"
	"os/user"
	"runtime"
	"strings"
)

// SystemInfo contains static system information.
type SystemInfo struct {
	// Kernel is the kernel release (e.g., "6.8.0-45-generic").
	Kernel string
	// Hostname is the full hostname.
	Hostname string
	// HostnameShort is the short hostname (before first dot).
	HostnameShort string
	// Sysname is the OS name (e.g., "Linux").
	Sysname string
	// Machine is the machine hardware name (e.g., "x86_64").
	Machine string
	// User is the login name of the current user.
	User string
}

// SysInfoReader reads system information from /proc, falling back to uname(2).
type SysInfoReader struct {
	// OSReleasePath is the kernel release file.
	OSReleasePath string
	// HostnamePath is the hostname file.
	HostnamePath string
}

// NewSysInfoReader creates a SysInfoReader with default paths.
func NewSysInfoReader() *SysInfoReader {
	return &SysInfoReader{
		OSReleasePath: "/proc/sys/kernel/osrelease",
		HostnamePath:  "/proc/sys/kernel/hostname",
	}
}

// ReadSystemInfo reads all system information. Missing fields are left
// empty; an error is returned only when neither the kernel release nor the
// hostname could be determined.
func (r *SysInfoReader) ReadSystemInfo() (SystemInfo, error) {
	info := SystemInfo{
		Sysname: getSysname(),
		Machine: getMachine(),
		User:    currentUser(),
	}

	u, unameErr := uname()

	if kernel, err := readTrimmed(r.OSReleasePath); err == nil && kernel != "" {
		info.Kernel = kernel
	} else if unameErr == nil {
		info.Kernel = u.release
	}

	if hostname, err := readTrimmed(r.HostnamePath); err == nil && hostname != "" {
		info.Hostname = hostname
	} else if h, err := os.Hostname(); err == nil {
		info.Hostname = h
	} else if unameErr == nil {
		info.Hostname = u.nodename
	}

	if idx := strings.Index(info.Hostname, "."); idx > 0 {
		info.HostnameShort = info.Hostname[:idx]
	} else {
		info.HostnameShort = info.Hostname
	}

	if info.Kernel == "" && info.Hostname == "" {
		return info, NewComponentError(ErrorSourceSysInfo, ErrNotAvailable)
	}
	return info, nil
}

func readTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// currentUser returns the login name, preferring $USER.
func currentUser() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

// getMachine returns the machine hardware name.
func getMachine() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64"
	case "386":
		return "i686"
	case "arm64":
		return "aarch64"
	case "arm":
		return "armv7l"
	default:
		return runtime.GOARCH
	}
}

// getSysname returns the system name matching what uname -s would print.
func getSysname() string {
	switch runtime.GOOS {
	case "linux", "android":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	case "dragonfly":
		return "DragonFly"
	case "solaris", "illumos":
		return "SunOS"
	default:
		return runtime.GOOS
	}
}
