package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateInstanceName checks a component instance name before it lands in
// artifact JSON and generated SKILL scripts. A malformed name would carry
// straight through into those outputs, so the rules are conservative:
//   - not empty, at most 256 characters
//   - no control characters
//   - no traversal or escape sequences (.., //, backslash)
//
// Process naming conventions are the device catalogs' concern, not ours.
func ValidateInstanceName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "instance name cannot be empty")
	}
	if len(name) > 256 {
		return New(ErrCodeInvalidName, "instance name too long (max 256 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "instance name contains control characters")
		}
	}
	for _, seq := range []string{"..", "//", `\`} {
		if strings.Contains(name, seq) {
			return New(ErrCodeInvalidName, "instance name contains %q", seq)
		}
	}
	return nil
}

// deviceNameRegex matches device cell names as found in IO libraries
// (e.g. PDIO, IOFILL20, ANACNR).
var deviceNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ValidateDeviceName validates a device cell name.
func ValidateDeviceName(name string) error {
	if name == "" {
		return New(ErrCodeUnknownDevice, "device name cannot be empty")
	}
	if !deviceNameRegex.MatchString(name) {
		return New(ErrCodeUnknownDevice, "invalid device name: %q", name)
	}
	return nil
}

// netNameRegex matches net names for power and ground rails
// (e.g. VDD33, AVSS, vdd_core).
var netNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateNetName validates a power or ground net name.
func ValidateNetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidSpec, "net name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidSpec, "net name too long (max 64 characters)")
	}
	if !netNameRegex.MatchString(name) {
		return New(ErrCodeInvalidSpec, "invalid net name: %q", name)
	}
	return nil
}
