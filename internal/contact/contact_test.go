package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ValidContact(t *testing.T) {
	c, err := New(map[string]string{
		FieldLastName:  "Gump",
		FieldFirstName: "Forrest",
		FieldTitle:     "Shrimp Man",
		FieldStreet:    "42 Plantation St.",
		FieldCity:      "Baytown",
	}, Strict)

	require.NoError(t, err)
	assert.True(t, c.Valid())
	assert.NoError(t, c.Err())
	assert.Equal(t, "Gump", c.LastName)
	assert.Equal(t, "Shrimp Man", c.Title)
	assert.Equal(t, "42 Plantation St.", c.Work.Street)
	assert.True(t, c.Home.Empty())
}

func TestNew_TrimsValues(t *testing.T) {
	c, err := New(map[string]string{
		FieldLastName:  "  Gump ",
		FieldFirstName: "\tForrest\n",
	}, Strict)

	require.NoError(t, err)
	assert.Equal(t, "Gump", c.LastName)
	assert.Equal(t, "Forrest", c.FirstName)
}

func TestNew_MissingRequired(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
	}{
		{"missing last name", map[string]string{FieldFirstName: "Forrest"}},
		{"missing first name", map[string]string{FieldLastName: "Gump"}},
		{"whitespace only", map[string]string{FieldLastName: "  ", FieldFirstName: " "}},
		{"both missing", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Strict mode fails construction.
			c, err := New(tt.fields, Strict)
			require.Error(t, err)
			assert.Nil(t, c)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)

			// Lenient mode constructs the contact and records the failure.
			c, err = New(tt.fields, Lenient)
			require.NoError(t, err)
			require.NotNil(t, c)
			assert.False(t, c.Valid())
			assert.Error(t, c.Err())
		})
	}
}

func TestNew_GenderValidation(t *testing.T) {
	base := map[string]string{FieldLastName: "Gump", FieldFirstName: "Forrest"}

	for _, code := range []string{"M", "F", "O", "N", "U", "m", "f"} {
		fields := map[string]string{FieldGender: code}
		for k, v := range base {
			fields[k] = v
		}
		c, err := New(fields, Strict)
		require.NoError(t, err, "gender %q", code)
		assert.True(t, c.Valid())
	}

	fields := map[string]string{FieldLastName: "Gump", FieldFirstName: "Forrest", FieldGender: "yes"}
	_, err := New(fields, Strict)
	require.Error(t, err)

	// Lenient mode passes unrecognized values through.
	c, err := New(fields, Lenient)
	require.NoError(t, err)
	assert.True(t, c.Valid())
	assert.Equal(t, "yes", c.Gender)
}

func TestFormattedName(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{
			name:   "first and last",
			fields: map[string]string{FieldLastName: "Gump", FieldFirstName: "Forrest"},
			want:   "Forrest Gump",
		},
		{
			name: "with middle name",
			fields: map[string]string{
				FieldLastName: "Gump", FieldFirstName: "Forrest", FieldMiddleName: "Alexander",
			},
			want: "Forrest Alexander Gump",
		},
		{
			name:   "last name only",
			fields: map[string]string{FieldLastName: "Gump"},
			want:   "Gump",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.fields, Lenient)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.FormattedName())
		})
	}
}

func TestCatalog_CoversEveryField(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range Catalog() {
		assert.False(t, seen[e.Field], "duplicate catalog entry %q", e.Field)
		seen[e.Field] = true
		assert.True(t, IsField(e.Field))
		assert.NotEmpty(t, e.Property)
	}
	assert.Len(t, Fields(), len(seen))
	assert.False(t, IsField("shoe_size"))
}
