// Package is provides string format checks for jsonrule. Each check also
// records the matching OpenAPI format.
//
//	jsonrule.String(is.Email)
package is

import (
	"github.com/Gobd/jsonrule"
	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	ozzois "github.com/go-ozzo/ozzo-validation/v4/is"
)

var (
	// Email validates an email address without DNS lookups.
	Email = jsonrule.Format(ozzois.EmailFormat, "email")
	// URL validates an absolute or host-relative URL.
	URL = jsonrule.Format(ozzois.URL, "uri")
	// UUID validates a UUID of any version.
	UUID = jsonrule.Format(ozzois.UUID, "uuid")
	// IPv4 validates a dotted IPv4 address.
	IPv4 = jsonrule.Format(ozzois.IPv4, "ipv4")
	// IPv6 validates an IPv6 address.
	IPv6 = jsonrule.Format(ozzois.IPv6, "ipv6")
	// Host validates a hostname or IP address.
	Host = jsonrule.Format(ozzois.Host, "hostname")
	// Base64 validates standard base64 encoded data.
	Base64 = jsonrule.Format(ozzois.Base64, "byte")

	// Alphanumeric validates ASCII letters and digits only.
	Alphanumeric = jsonrule.Format(
		validation.NewStringRule(govalidator.IsAlphanumeric, "must contain English letters and digits only"),
		"alphanumeric",
	)
	// Semver validates a semantic version such as v1.2.3.
	Semver = jsonrule.Format(
		validation.NewStringRule(govalidator.IsSemver, "must be a semantic version"),
		"semver",
	)
	// Hexcolor validates a CSS hex color such as #fa0 or #ffaa00.
	Hexcolor = jsonrule.Format(
		validation.NewStringRule(govalidator.IsHexcolor, "must be a hex color"),
		"hexcolor",
	)
	// CountryCode2 validates an ISO 3166-1 alpha-2 country code.
	CountryCode2 = jsonrule.Format(
		validation.NewStringRule(govalidator.IsISO3166Alpha2, "must be a valid two-letter country code"),
		"iso3166-alpha2",
	)
)
