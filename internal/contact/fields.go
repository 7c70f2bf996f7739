package contact

// Canonical field names. CSV headers resolve to these through the fieldmap
// registry; the encoder understands exactly this set.
const (
	FieldLastName    = "last_name"
	FieldFirstName   = "first_name"
	FieldMiddleName  = "middle_name"
	FieldNamePrefix  = "name_prefix"
	FieldNameSuffix  = "name_suffix"
	FieldNickname    = "nickname"
	FieldGender      = "gender"
	FieldBirthday    = "birthday"
	FieldAnniversary = "anniversary"
	FieldOrg         = "org"
	FieldTitle       = "title"
	FieldRole        = "role"
	FieldPhone       = "phone"
	FieldPhoneCell   = "phone_cell"
	FieldPhoneHome   = "phone_home"
	FieldPhoneWork   = "phone_work"
	FieldPhoneFax    = "phone_fax"
	FieldEmail       = "email"
	FieldEmailHome   = "email_home"
	FieldEmailWork   = "email_work"
	FieldWebsite     = "website"
	FieldStreet      = "street"
	FieldCity        = "city"
	FieldRegion      = "region"
	FieldPostalCode  = "p_code"
	FieldCountry     = "country"
	FieldHomeStreet  = "home_street"
	FieldHomeCity    = "home_city"
	FieldHomeRegion  = "home_region"
	FieldHomePCode   = "home_p_code"
	FieldHomeCountry = "home_country"
	FieldPhoto       = "photo"
	FieldLogo        = "logo"
	FieldKey         = "key"
	FieldCategories  = "categories"
	FieldGeo         = "geo"
	FieldTZ          = "tz"
	FieldNote        = "note"
)

// CatalogEntry documents one canonical field: which vCard property it feeds
// and under which TYPE parameter, if any. The catalog backs CLI help and the
// example mapping document.
type CatalogEntry struct {
	Field    string
	Property string
	Type     string
	Doc      string
}

// catalog is ordered: the order doubles as the resolution order when a CSV
// header matches the spelling sets of more than one field.
var catalog = []CatalogEntry{
	{FieldLastName, "N", "", "family name (required)"},
	{FieldFirstName, "N", "", "given name (required)"},
	{FieldMiddleName, "N", "", "middle name"},
	{FieldNamePrefix, "N", "", "honorific prefix, e.g. Dr."},
	{FieldNameSuffix, "N", "", "honorific suffix, e.g. Jr."},
	{FieldNickname, "NICKNAME", "", "nickname or alias"},
	{FieldGender, "GENDER", "", "M, F, O, N or U (X-GENDER in 3.0)"},
	{FieldBirthday, "BDAY", "", "date of birth, passed through as given"},
	{FieldAnniversary, "ANNIVERSARY", "", "anniversary (X-ANNIVERSARY in 3.0)"},
	{FieldOrg, "ORG", "", "organization name"},
	{FieldTitle, "TITLE", "", "job title"},
	{FieldRole, "ROLE", "", "job role or function"},
	{FieldPhone, "TEL", "WORK,VOICE", "default phone number"},
	{FieldPhoneCell, "TEL", "CELL", "mobile phone number"},
	{FieldPhoneHome, "TEL", "HOME,VOICE", "home phone number"},
	{FieldPhoneWork, "TEL", "WORK,VOICE", "work phone number"},
	{FieldPhoneFax, "TEL", "FAX", "fax number"},
	{FieldEmail, "EMAIL", "WORK", "default email address"},
	{FieldEmailHome, "EMAIL", "HOME", "home email address"},
	{FieldEmailWork, "EMAIL", "WORK", "work email address"},
	{FieldWebsite, "URL", "WORK", "website URL"},
	{FieldStreet, "ADR", "WORK", "street address"},
	{FieldCity, "ADR", "WORK", "city or locality"},
	{FieldRegion, "ADR", "WORK", "state, province or region"},
	{FieldPostalCode, "ADR", "WORK", "postal or ZIP code"},
	{FieldCountry, "ADR", "WORK", "country"},
	{FieldHomeStreet, "ADR", "HOME", "home street address"},
	{FieldHomeCity, "ADR", "HOME", "home city or locality"},
	{FieldHomeRegion, "ADR", "HOME", "home state, province or region"},
	{FieldHomePCode, "ADR", "HOME", "home postal or ZIP code"},
	{FieldHomeCountry, "ADR", "HOME", "home country"},
	{FieldPhoto, "PHOTO", "", "photo URL or base64 data"},
	{FieldLogo, "LOGO", "", "logo URL or base64 data"},
	{FieldKey, "KEY", "", "public key URL or base64 data"},
	{FieldCategories, "CATEGORIES", "", "comma-separated tags"},
	{FieldGeo, "GEO", "", "latitude,longitude pair"},
	{FieldTZ, "TZ", "", "time zone"},
	{FieldNote, "NOTE", "", "free-form note"},
}

var fieldSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(catalog))
	for _, e := range catalog {
		s[e.Field] = struct{}{}
	}
	return s
}()

// Catalog returns the ordered canonical field catalog.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalog))
	copy(out, catalog)
	return out
}

// Fields returns every canonical field name in catalog order.
func Fields() []string {
	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.Field
	}
	return names
}

// IsField reports whether name is a canonical field the encoder understands.
func IsField(name string) bool {
	_, ok := fieldSet[name]
	return ok
}
