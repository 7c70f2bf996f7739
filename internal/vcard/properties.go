package vcard

import "csv2vcard/internal/contact"

type propKind int

const (
	propScalar propKind = iota
	propGender
	propBirthday
	propAnniversary
	propTel
	propEmail
	propURL
	propAddress
	propPhoto
	propKey
	propCategories
	propGeo
)

// property is one row of the encoder's dispatch table.
type property struct {
	name string // vCard property name
	typ  string // TYPE parameter, upper-case form
	kind propKind
	get  func(*contact.Contact) string
	addr func(*contact.Contact) contact.Address
}

// properties is the fixed emission order: identity extras, org block,
// phones, emails, addresses, website, media, categories/geo/tz, note.
// N and FN are emitted ahead of the table, UID after it. The table is
// built once and iterated by Encode, keeping output deterministic and
// diff-friendly.
var properties = []property{
	{name: "NICKNAME", kind: propScalar, get: func(c *contact.Contact) string { return c.Nickname }},
	{name: "GENDER", kind: propGender, get: func(c *contact.Contact) string { return c.Gender }},
	{name: "BDAY", kind: propBirthday, get: func(c *contact.Contact) string { return c.Birthday }},
	{name: "ANNIVERSARY", kind: propAnniversary, get: func(c *contact.Contact) string { return c.Anniversary }},
	{name: "ORG", kind: propScalar, get: func(c *contact.Contact) string { return c.Org }},
	{name: "TITLE", kind: propScalar, get: func(c *contact.Contact) string { return c.Title }},
	{name: "ROLE", kind: propScalar, get: func(c *contact.Contact) string { return c.Role }},
	{name: "TEL", typ: "WORK,VOICE", kind: propTel, get: func(c *contact.Contact) string { return c.Phone }},
	{name: "TEL", typ: "CELL", kind: propTel, get: func(c *contact.Contact) string { return c.PhoneCell }},
	{name: "TEL", typ: "HOME,VOICE", kind: propTel, get: func(c *contact.Contact) string { return c.PhoneHome }},
	{name: "TEL", typ: "WORK,VOICE", kind: propTel, get: func(c *contact.Contact) string { return c.PhoneWork }},
	{name: "TEL", typ: "FAX", kind: propTel, get: func(c *contact.Contact) string { return c.PhoneFax }},
	{name: "EMAIL", typ: "WORK", kind: propEmail, get: func(c *contact.Contact) string { return c.Email }},
	{name: "EMAIL", typ: "HOME", kind: propEmail, get: func(c *contact.Contact) string { return c.EmailHome }},
	{name: "EMAIL", typ: "WORK", kind: propEmail, get: func(c *contact.Contact) string { return c.EmailWork }},
	{name: "ADR", typ: "WORK", kind: propAddress, addr: func(c *contact.Contact) contact.Address { return c.Work }},
	{name: "ADR", typ: "HOME", kind: propAddress, addr: func(c *contact.Contact) contact.Address { return c.Home }},
	{name: "URL", typ: "WORK", kind: propURL, get: func(c *contact.Contact) string { return c.Website }},
	{name: "PHOTO", kind: propPhoto, get: func(c *contact.Contact) string { return c.Photo }},
	{name: "LOGO", kind: propPhoto, get: func(c *contact.Contact) string { return c.Logo }},
	{name: "KEY", kind: propKey, get: func(c *contact.Contact) string { return c.Key }},
	{name: "CATEGORIES", kind: propCategories, get: func(c *contact.Contact) string { return c.Categories }},
	{name: "GEO", kind: propGeo, get: func(c *contact.Contact) string { return c.Geo }},
	{name: "TZ", kind: propScalar, get: func(c *contact.Contact) string { return c.TZ }},
	{name: "NOTE", kind: propScalar, get: func(c *contact.Contact) string { return c.Note }},
}
