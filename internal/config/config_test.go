package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	o, err := Default()
	require.NoError(t, err)

	assert.Equal(t, ",", o.Delimiter)
	assert.Equal(t, "3.0", o.Version)
	assert.Equal(t, "export", o.OutputDir)
	assert.Equal(t, "contacts", o.BaseName)
	assert.False(t, o.Strict)
	assert.Zero(t, o.MaxRecordsPerFile)
	assert.Zero(t, o.MaxFileSize)
}

func TestDefault_EnvOverrides(t *testing.T) {
	t.Setenv("CSV2VCARD_DELIMITER", ";")
	t.Setenv("CSV2VCARD_VERSION", "4.0")
	t.Setenv("CSV2VCARD_STRICT", "true")
	t.Setenv("CSV2VCARD_MAX_VCARDS_PER_FILE", "25")

	o, err := Default()
	require.NoError(t, err)

	assert.Equal(t, ";", o.Delimiter)
	assert.Equal(t, "4.0", o.Version)
	assert.True(t, o.Strict)
	assert.Equal(t, 25, o.MaxRecordsPerFile)
}

func TestDelimiterRune(t *testing.T) {
	o := Options{Delimiter: ";"}
	r, err := o.DelimiterRune()
	require.NoError(t, err)
	assert.Equal(t, ';', r)

	for _, bad := range []string{"", ",,", "ab"} {
		o := Options{Delimiter: bad}
		_, err := o.DelimiterRune()
		assert.Error(t, err, "delimiter %q", bad)
	}

	// A multi-byte rune is still one character.
	o = Options{Delimiter: "§"}
	r, err = o.DelimiterRune()
	require.NoError(t, err)
	assert.Equal(t, '§', r)
}

func TestChunkPolicy(t *testing.T) {
	o := Options{MaxRecordsPerFile: 2, MaxFileSize: 1024, SingleFile: true}
	p := o.ChunkPolicy()

	assert.Equal(t, 2, p.MaxRecords)
	assert.Equal(t, int64(1024), p.MaxBytes)
	assert.True(t, p.SingleFile)
}
