// Package vcard serializes Contact values into vCard 3.0 and 4.0 text
// blocks: property selection, ordering, escaping, folding and media
// encoding. Encoding is pure and performs no I/O.
package vcard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"csv2vcard/internal/contact"
)

// Version selects the target vCard dialect.
type Version string

const (
	// V3 is vCard 3.0 (RFC 2426).
	V3 Version = "3.0"
	// V4 is vCard 4.0 (RFC 6350).
	V4 Version = "4.0"
)

// ParseVersion validates a version string from configuration.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "3.0", "3":
		return V3, nil
	case "4.0", "4":
		return V4, nil
	default:
		return "", fmt.Errorf("unsupported vCard version %q (want 3.0 or 4.0)", s)
	}
}

// uidNamespace anchors the content-derived UID so it stays stable across
// runs and across machines.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://csv2vcard.invalid/uid"))

// Encode serializes one contact into a vCard text block for the given
// version. It fails only when handed a contact that did not pass
// required-field validation; that is a caller bug, not an input error.
func Encode(c *contact.Contact, v Version) (string, error) {
	if c == nil {
		return "", errors.New("vcard: nil contact")
	}
	if !c.Valid() {
		return "", fmt.Errorf("vcard: refusing to encode invalid contact: %w", c.Err())
	}

	lines := make([]string, 0, 8)
	lines = append(lines, "BEGIN:VCARD", "VERSION:"+string(v))

	n := []string{
		escapeValue(c.LastName),
		escapeValue(c.FirstName),
		escapeValue(c.MiddleName),
		escapeValue(c.NamePrefix),
		escapeValue(c.NameSuffix),
	}
	lines = append(lines, "N:"+strings.Join(n, ";"))
	lines = append(lines, "FN:"+escapeValue(c.FormattedName()))

	for _, p := range properties {
		if line, ok := renderProperty(c, p, v); ok {
			lines = append(lines, line)
		}
	}

	lines = append(lines, uidLine(c, v))
	lines = append(lines, "END:VCARD")

	for i, line := range lines {
		lines[i] = foldLine(line)
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// renderProperty emits one table entry, or nothing when the backing field
// is absent. Absent fields never produce empty property lines.
func renderProperty(c *contact.Contact, p property, v Version) (string, bool) {
	if p.kind == propAddress {
		a := p.addr(c)
		if a.Empty() {
			return "", false
		}
		return addressLine(a, p.typ, v), true
	}

	value := p.get(c)
	if value == "" {
		return "", false
	}

	switch p.kind {
	case propScalar:
		return p.name + ":" + escapeValue(value), true

	case propGender:
		if v == V3 {
			return "X-GENDER:" + escapeValue(value), true
		}
		code := strings.ToUpper(value)
		switch code {
		case "M", "F", "O", "N", "U":
			return "GENDER:" + code, true
		}
		return "GENDER:;" + escapeValue(value), true

	case propBirthday:
		// Date-like values pass through as given; vCard accepts
		// ISO-8601-like dates.
		return "BDAY:" + escapeValue(value), true

	case propAnniversary:
		if v == V3 {
			return "X-ANNIVERSARY:" + escapeValue(value), true
		}
		return "ANNIVERSARY:" + escapeValue(value), true

	case propTel:
		if v == V3 {
			return "TEL;TYPE=" + p.typ + ":" + escapeValue(value), true
		}
		return "TEL;TYPE=" + strings.ToLower(p.typ) + ";VALUE=uri:tel:" + escapeValue(value), true

	case propEmail:
		if v == V3 {
			return "EMAIL;TYPE=" + p.typ + ":" + escapeValue(value), true
		}
		return "EMAIL;TYPE=" + strings.ToLower(p.typ) + ":" + escapeValue(value), true

	case propURL:
		if v == V3 {
			return "URL;TYPE=" + p.typ + ":" + escapeValue(value), true
		}
		return "URL;TYPE=" + strings.ToLower(p.typ) + ":" + escapeValue(value), true

	case propPhoto:
		return mediaLine(p.name, value, v), true

	case propKey:
		return keyLine(value, v), true

	case propCategories:
		tags := strings.Split(value, ",")
		escaped := make([]string, 0, len(tags))
		for _, tag := range tags {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			escaped = append(escaped, escapeValue(tag))
		}
		if len(escaped) == 0 {
			return "", false
		}
		return "CATEGORIES:" + strings.Join(escaped, ","), true

	case propGeo:
		if v == V3 {
			// 3.0 wants lat;lon.
			return "GEO:" + strings.ReplaceAll(value, ",", ";"), true
		}
		return "GEO:geo:" + value, true
	}

	return "", false
}

// addressLine renders one 7-position structured ADR value. The post office
// box and extended address positions are never populated from CSV input.
func addressLine(a contact.Address, typ string, v Version) string {
	components := []string{
		"",
		"",
		escapeValue(a.Street),
		escapeValue(a.City),
		escapeValue(a.Region),
		escapeValue(a.PostalCode),
		escapeValue(a.Country),
	}
	if v == V3 {
		return "ADR;TYPE=" + typ + ":" + strings.Join(components, ";")
	}
	return "ADR;TYPE=" + strings.ToLower(typ) + ":" + strings.Join(components, ";")
}

// uidLine derives a stable UID from the identity fields, so re-running a
// conversion yields byte-identical output.
func uidLine(c *contact.Contact, v Version) string {
	seed := strings.Join([]string{c.LastName, c.FirstName, c.MiddleName, c.Org, c.Email}, ";")
	id := uuid.NewSHA1(uidNamespace, []byte(seed))
	if v == V3 {
		return "UID:" + id.String()
	}
	return "UID:urn:uuid:" + id.String()
}
