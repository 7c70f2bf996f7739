// Package contact defines the canonical in-memory representation of one
// contact record and its validation rules.
package contact

import (
	"fmt"
	"strings"
)

// Mode selects how validation failures are handled during construction.
type Mode int

const (
	// Lenient constructs the Contact anyway and records the validation
	// failure on it, so a batch run can count and skip the record.
	Lenient Mode = iota
	// Strict fails construction with a *ValidationError.
	Strict
)

// ValidationError reports a contact that failed required-field validation.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid contact: " + strings.Join(e.Problems, "; ")
}

// genderCodes is the enumerated GENDER set from RFC 6350.
var genderCodes = map[string]bool{"M": true, "F": true, "O": true, "N": true, "U": true}

// Address is one structured address block. A block is emitted only when at
// least one component is non-empty.
type Address struct {
	Street     string
	City       string
	Region     string
	PostalCode string
	Country    string
}

// Empty reports whether every component of the block is empty.
func (a Address) Empty() bool {
	return a.Street == "" && a.City == "" && a.Region == "" &&
		a.PostalCode == "" && a.Country == ""
}

// Contact is the validated canonical form of one CSV row. Treat it as
// read-only once constructed: it is built by New and consumed exactly once
// by the encoder.
type Contact struct {
	LastName   string
	FirstName  string
	MiddleName string
	NamePrefix string
	NameSuffix string
	Nickname   string

	Gender      string
	Birthday    string
	Anniversary string

	Org   string
	Title string
	Role  string

	Phone     string
	PhoneCell string
	PhoneHome string
	PhoneWork string
	PhoneFax  string

	Email     string
	EmailHome string
	EmailWork string

	Website string

	Work Address
	Home Address

	Photo string
	Logo  string
	Key   string

	Categories string
	Geo        string
	TZ         string
	Note       string

	err *ValidationError
}

// New builds a Contact from a canonical field map as produced by the row
// mapper. In Strict mode a validation failure aborts construction; in
// Lenient mode the Contact is returned with the failure recorded (see Err).
func New(fields map[string]string, mode Mode) (*Contact, error) {
	get := func(name string) string {
		return strings.TrimSpace(fields[name])
	}

	c := &Contact{
		LastName:    get(FieldLastName),
		FirstName:   get(FieldFirstName),
		MiddleName:  get(FieldMiddleName),
		NamePrefix:  get(FieldNamePrefix),
		NameSuffix:  get(FieldNameSuffix),
		Nickname:    get(FieldNickname),
		Gender:      get(FieldGender),
		Birthday:    get(FieldBirthday),
		Anniversary: get(FieldAnniversary),
		Org:         get(FieldOrg),
		Title:       get(FieldTitle),
		Role:        get(FieldRole),
		Phone:       get(FieldPhone),
		PhoneCell:   get(FieldPhoneCell),
		PhoneHome:   get(FieldPhoneHome),
		PhoneWork:   get(FieldPhoneWork),
		PhoneFax:    get(FieldPhoneFax),
		Email:       get(FieldEmail),
		EmailHome:   get(FieldEmailHome),
		EmailWork:   get(FieldEmailWork),
		Website:     get(FieldWebsite),
		Work: Address{
			Street:     get(FieldStreet),
			City:       get(FieldCity),
			Region:     get(FieldRegion),
			PostalCode: get(FieldPostalCode),
			Country:    get(FieldCountry),
		},
		Home: Address{
			Street:     get(FieldHomeStreet),
			City:       get(FieldHomeCity),
			Region:     get(FieldHomeRegion),
			PostalCode: get(FieldHomePCode),
			Country:    get(FieldHomeCountry),
		},
		Photo:      get(FieldPhoto),
		Logo:       get(FieldLogo),
		Key:        get(FieldKey),
		Categories: get(FieldCategories),
		Geo:        get(FieldGeo),
		TZ:         get(FieldTZ),
		Note:       get(FieldNote),
	}

	var problems []string
	if c.LastName == "" {
		problems = append(problems, fmt.Sprintf("required field %q is empty", FieldLastName))
	}
	if c.FirstName == "" {
		problems = append(problems, fmt.Sprintf("required field %q is empty", FieldFirstName))
	}
	if mode == Strict && c.Gender != "" && !genderCodes[strings.ToUpper(c.Gender)] {
		problems = append(problems, fmt.Sprintf("gender %q is not one of M, F, O, N, U", c.Gender))
	}

	if len(problems) > 0 {
		verr := &ValidationError{Problems: problems}
		if mode == Strict {
			return nil, verr
		}
		c.err = verr
	}

	return c, nil
}

// Err returns the validation failure recorded in Lenient mode, or nil for a
// valid contact.
func (c *Contact) Err() error {
	if c.err == nil {
		return nil
	}
	return c.err
}

// Valid reports whether the contact passed required-field validation.
func (c *Contact) Valid() bool {
	return c.err == nil
}

// FormattedName computes the FN property value: given, middle and family
// name space-joined with empty parts dropped.
func (c *Contact) FormattedName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.FirstName, c.MiddleName, c.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
