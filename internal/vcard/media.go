package vcard

import "strings"

// isMediaURL reports whether a media value is a URI reference rather than
// inline base64 data.
func isMediaURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}

// sniffImageType guesses the image format from the base64 prefix. JPEG,
// PNG and GIF payloads have distinctive leading bytes; anything else is
// assumed JPEG.
func sniffImageType(data string) string {
	switch {
	case strings.HasPrefix(data, "/9j/"):
		return "JPEG"
	case strings.HasPrefix(data, "iVBOR"):
		return "PNG"
	case strings.HasPrefix(data, "R0lGOD"):
		return "GIF"
	default:
		return "JPEG"
	}
}

// sniffImageMediaType is the 4.0 variant: a full media type for data: URIs.
func sniffImageMediaType(data string) string {
	switch sniffImageType(data) {
	case "PNG":
		return "image/png"
	case "GIF":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}

// mediaLine renders a PHOTO or LOGO property. URLs emit as bare URI
// references; anything else is treated as inline base64 data, framed the
// legacy way for 3.0 and as a data: URI for 4.0.
func mediaLine(name, value string, v Version) string {
	if isMediaURL(value) {
		if v == V3 {
			return name + ";VALUE=URI:" + value
		}
		return name + ":" + value
	}
	if v == V3 {
		return name + ";ENCODING=b;TYPE=" + sniffImageType(value) + ":" + value
	}
	return name + ":data:" + sniffImageMediaType(value) + ";base64," + value
}

// keyLine renders the KEY property. Inline values are assumed to be a
// base64-encoded public key.
func keyLine(value string, v Version) string {
	if isMediaURL(value) {
		if v == V3 {
			return "KEY;VALUE=URI:" + value
		}
		return "KEY:" + value
	}
	if v == V3 {
		return "KEY;ENCODING=b:" + value
	}
	return "KEY:data:application/pgp-keys;base64," + value
}
