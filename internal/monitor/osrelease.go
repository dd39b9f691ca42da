package monitor

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// OSRelease holds the fields of an os-release(5) file used for display.
type OSRelease struct {
	ID         string
	Name       string
	PrettyName string
	Version    string
	VersionID  string
}

// DisplayName returns PRETTY_NAME, or NAME plus VERSION when it is unset.
func (o OSRelease) DisplayName() string {
	if o.PrettyName != "" {
		return o.PrettyName
	}
	name := o.Name
	if name == "" {
		name = o.ID
	}
	version := o.Version
	if version == "" {
		version = o.VersionID
	}
	return strings.TrimSpace(name + " " + version)
}

// OSReleaseReader reads the first existing os-release file.
type OSReleaseReader struct {
	Paths []string
}

// NewOSReleaseReader creates an OSReleaseReader with the standard paths.
func NewOSReleaseReader() *OSReleaseReader {
	return &OSReleaseReader{
		Paths: []string{"/etc/os-release", "/usr/lib/os-release"},
	}
}

// Read parses the first readable file in Paths.
func (r *OSReleaseReader) Read() (OSRelease, error) {
	for _, path := range r.Paths {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		rel, err := parseOSRelease(f)
		f.Close()
		if err != nil {
			return OSRelease{}, NewComponentError(ErrorSourceOS, fmt.Errorf("parsing %s: %w", path, err))
		}
		return rel, nil
	}
	return OSRelease{}, NewComponentError(ErrorSourceOS, ErrNotAvailable)
}

func parseOSRelease(f *os.File) (OSRelease, error) {
	var rel OSRelease
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = unquoteOSReleaseValue(value)
		switch key {
		case "ID":
			rel.ID = value
		case "NAME":
			rel.Name = value
		case "PRETTY_NAME":
			rel.PrettyName = value
		case "VERSION":
			rel.Version = value
		case "VERSION_ID":
			rel.VersionID = value
		}
	}
	return rel, scanner.Err()
}

func unquoteOSReleaseValue(v string) string {
	if len(v) >= 2 {
		switch {
		case v[0] == '"' && v[len(v)-1] == '"':
			if s, err := strconv.Unquote(v); err == nil {
				return s
			}
			return v[1 : len(v)-1]
		case v[0] == '\'' && v[len(v)-1] == '\'':
			return v[1 : len(v)-1]
		}
	}
	return v
}
