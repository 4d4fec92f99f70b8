package domain

import (
	"fmt"
)

// APIVersion is the version segment of a dashboard API route ("v1").
type APIVersion string

const (
	APIVersionV1 APIVersion = "v1"
)

var supportedVersions = map[APIVersion]struct{}{
	APIVersionV1: {},
}

// ParseAPIVersion validates a version path segment.
func ParseAPIVersion(s string) (APIVersion, error) {
	v := APIVersion(s)
	if _, ok := supportedVersions[v]; !ok {
		return "", fmt.Errorf("unknown API version: %s", s)
	}
	return v, nil
}

func (v APIVersion) String() string {
	return string(v)
}

func (v APIVersion) IsNil() bool {
	return v == ""
}

// DefaultVersion is used when a route carries no version segment.
func DefaultVersion() APIVersion {
	return APIVersionV1
}
