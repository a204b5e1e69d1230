package util

import (
	"github.com/miekg/dns"
	"github.com/pkg/errors"
	"strings"
)

const (
	// LabelLength is the number of characters put into a single DNS label by Dotify.
	// DNS allows up to 63, keep some room for prefixes.
	LabelLength = 57

	// MaxHostnameLength is the longest (textual) host name allowed by DNS
	MaxHostnameLength = 253
)

// Dotify will include dots every 57 characters
func Dotify(buf []byte) (res []byte) {
	for len(buf) > LabelLength {
		res = append(res, buf[0:LabelLength]...)
		res = append(res, '.')
		buf = buf[LabelLength:]
	}
	res = append(res, buf...)
	return
}

// Undotify will remove the dots from the given string
func Undotify(buf string) string {
	return strings.ReplaceAll(buf, ".", "")
}

// ValidateHostname makes sure the (dotified) text may be used as a host name.
func ValidateHostname(name string) error {
	if len(name) == 0 {
		return errors.New("empty host name")
	}
	if len(name) > MaxHostnameLength {
		return errors.Errorf("host name is %d characters long, at most %d are allowed", len(name), MaxHostnameLength)
	}
	if _, ok := dns.IsDomainName(name); !ok {
		return errors.Errorf("%q is not a valid host name", name)
	}
	return nil
}
