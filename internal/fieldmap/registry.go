// Package fieldmap resolves arbitrary CSV column headers to canonical
// contact fields through a configurable alias table.
package fieldmap

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"csv2vcard/internal/contact"
)

// ErrBadMapping marks a malformed or inconsistent mapping document. It is
// a configuration error: surfaced before any row processing begins.
var ErrBadMapping = errors.New("invalid mapping document")

// defaultSpellings maps each canonical field to its accepted header
// spellings. Comparison is case-insensitive after trimming.
var defaultSpellings = map[string][]string{
	contact.FieldLastName:    {"last_name", "lastname", "last", "surname", "family_name", "familyname"},
	contact.FieldFirstName:   {"first_name", "firstname", "first", "given_name", "givenname"},
	contact.FieldMiddleName:  {"middle_name", "middlename", "middle", "second_name"},
	contact.FieldNamePrefix:  {"name_prefix", "prefix", "title_prefix", "honorific_prefix", "salutation"},
	contact.FieldNameSuffix:  {"name_suffix", "suffix", "honorific_suffix", "generational"},
	contact.FieldNickname:    {"nickname", "nick", "alias", "aka"},
	contact.FieldGender:      {"gender", "sex"},
	contact.FieldBirthday:    {"birthday", "birthdate", "birth_date", "dob", "date_of_birth", "bday"},
	contact.FieldAnniversary: {"anniversary", "wedding_anniversary", "wedding_date"},
	contact.FieldOrg:         {"org", "organization", "organisation", "company", "employer", "business"},
	contact.FieldTitle:       {"title", "job_title", "jobtitle", "position"},
	contact.FieldRole:        {"role", "job_role", "function", "occupation"},
	contact.FieldPhone:       {"phone", "telephone", "tel", "mobile", "cell", "cellphone", "phone_number"},
	contact.FieldPhoneCell:   {"phone_cell", "cell_phone", "mobile_phone"},
	contact.FieldPhoneHome:   {"phone_home", "home_phone"},
	contact.FieldPhoneWork:   {"phone_work", "work_phone", "office_phone"},
	contact.FieldPhoneFax:    {"phone_fax", "fax", "fax_number"},
	contact.FieldEmail:       {"email", "e-mail", "email_address", "mail"},
	contact.FieldEmailHome:   {"email_home", "home_email", "personal_email"},
	contact.FieldEmailWork:   {"email_work", "work_email"},
	contact.FieldWebsite:     {"website", "url", "web", "homepage", "webpage", "site"},
	contact.FieldStreet:      {"street", "street_address", "address", "address1", "street1"},
	contact.FieldCity:        {"city", "locality", "town"},
	contact.FieldRegion:      {"region", "state", "province", "county", "state_province"},
	contact.FieldPostalCode:  {"p_code", "postal_code", "postalcode", "zip", "zipcode", "zip_code", "postcode"},
	contact.FieldCountry:     {"country", "country_name", "nation"},
	contact.FieldHomeStreet:  {"home_street", "home_address"},
	contact.FieldHomeCity:    {"home_city", "home_town"},
	contact.FieldHomeRegion:  {"home_region", "home_state", "home_province"},
	contact.FieldHomePCode:   {"home_p_code", "home_postal_code", "home_zip"},
	contact.FieldHomeCountry: {"home_country"},
	contact.FieldPhoto:       {"photo", "photo_url", "picture", "avatar"},
	contact.FieldLogo:        {"logo", "logo_url"},
	contact.FieldKey:         {"key", "public_key", "pgp_key"},
	contact.FieldCategories:  {"categories", "category", "tags", "groups"},
	contact.FieldGeo:         {"geo", "geolocation", "coordinates", "lat_long"},
	contact.FieldTZ:          {"tz", "timezone", "time_zone", "utc_offset"},
	contact.FieldNote:        {"note", "notes", "comment", "comments", "remarks", "description"},
}

// Registry maps canonical contact fields to their accepted header
// spellings. A Registry is immutable after construction; overrides produce
// a new value.
type Registry struct {
	spellings map[string][]string
}

// Default returns the built-in registry.
func Default() *Registry {
	return &Registry{spellings: defaultSpellings}
}

// Spellings returns the accepted spellings for one canonical field.
func (r *Registry) Spellings(field string) []string {
	return r.spellings[field]
}

// Load reads a mapping document from path and merges it over the default
// table. The document is YAML or JSON: canonical field name mapped to one
// spelling or a list of spellings. A field present in the document takes
// full precedence over the default spellings for that field.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping document: %w", err)
	}
	reg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// Parse builds a registry from mapping document bytes merged over the
// default table.
func Parse(data []byte) (*Registry, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMapping, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document is empty", ErrBadMapping)
	}

	merged := make(map[string][]string, len(defaultSpellings))
	for field, names := range defaultSpellings {
		merged[field] = names
	}

	for field, raw := range doc {
		if !contact.IsField(field) {
			return nil, fmt.Errorf("%w: unknown canonical field %q", ErrBadMapping, field)
		}
		names, err := spellingList(field, raw)
		if err != nil {
			return nil, err
		}
		merged[field] = names
	}

	return &Registry{spellings: merged}, nil
}

func spellingList(field string, raw any) ([]string, error) {
	switch v := raw.(type) {
	case string:
		return []string{v}, nil
	case []any:
		names := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: entry for %q must be a string or list of strings", ErrBadMapping, field)
			}
			names = append(names, s)
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("%w: entry for %q is empty", ErrBadMapping, field)
		}
		return names, nil
	default:
		return nil, fmt.Errorf("%w: entry for %q must be a string or list of strings", ErrBadMapping, field)
	}
}

// normalizeHeader trims a header cell and case-folds it for lookup.
func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}
