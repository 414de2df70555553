package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_ColombianMobileWithoutPrefix(t *testing.T) {
	v := DefaultValidator()

	result := v.Validate("3001234567")
	assert.True(t, result.IsValid)
	assert.Equal(t, "+573001234567", result.E164)
	assert.Equal(t, "Colombia", result.Country)
	assert.Equal(t, "+57", result.CallingCode)
}

func TestValidate_ColombianMobileWithPrefix(t *testing.T) {
	v := DefaultValidator()

	result := v.Validate("+57 300 259 6319")
	assert.True(t, result.IsValid)
	assert.Equal(t, "+573002596319", result.E164)
	assert.Equal(t, "Colombia", result.Country)
}

func TestValidate_ColombianLandline(t *testing.T) {
	v := DefaultValidator()

	result := v.Validate("6012345")
	assert.True(t, result.IsValid)
	assert.Equal(t, "+576012345", result.E164)
	assert.Equal(t, "Colombia", result.Country)
}

func TestValidate_TooShortLandline(t *testing.T) {
	v := DefaultValidator()

	result := v.Validate("601234")
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Reason, "too short")
	assert.Contains(t, result.Reason, "Colombia")
}

func TestValidate_EmptyInput(t *testing.T) {
	v := DefaultValidator()

	for _, input := range []string{"", "   "} {
		result := v.Validate(input)
		assert.False(t, result.IsValid)
		assert.Equal(t, "phone number is empty", result.Reason)
	}
}

func TestValidate_UnitedKingdom(t *testing.T) {
	v := DefaultValidator()

	result := v.Validate("+44 20 7946 0958")
	assert.True(t, result.IsValid)
	assert.Equal(t, "United Kingdom", result.Country)
	assert.Equal(t, "+442079460958", result.E164)
	assert.Equal(t, "+44", result.CallingCode)
}

func TestValidate_DoubleZeroPrefix(t *testing.T) {
	v := DefaultValidator()

	result := v.Validate("0044 20 7946 0958")
	assert.True(t, result.IsValid)
	assert.Equal(t, "United Kingdom", result.Country)
	assert.Equal(t, "+442079460958", result.E164)
}

func TestValidate_NonNumericCharacters(t *testing.T) {
	v := DefaultValidator()

	result := v.Validate("30012x4567")
	assert.False(t, result.IsValid)
	assert.Equal(t, "phone number contains non-numeric characters", result.Reason)
}

func TestValidate_UnrecognizedCallingCode(t *testing.T) {
	v := DefaultValidator()

	result := v.Validate("+999 1234567890")
	assert.False(t, result.IsValid)
	assert.Equal(t, "unrecognized country calling code", result.Reason)
}

func TestValidate_TenDigitNotMobileOrLandline(t *testing.T) {
	v := DefaultValidator()

	result := v.Validate("9001234567")
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Reason, "must start with 3")
}

func TestValidate_TooLongForColombia(t *testing.T) {
	v := DefaultValidator()

	result := v.Validate("300123456789")
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Reason, "too long")
}

func TestValidate_StripsFormattingCharacters(t *testing.T) {
	v := DefaultValidator()

	result := v.Validate("(300) 123-45.67")
	assert.True(t, result.IsValid)
	assert.Equal(t, "+573001234567", result.E164)
}

func TestValidate_LongestPrefixWins(t *testing.T) {
	v := DefaultValidator()

	// +593 must resolve to Ecuador, not be misread as another prefix
	result := v.Validate("+593987654321")
	assert.True(t, result.IsValid)
	assert.Equal(t, "Ecuador", result.Country)
}

func TestValidate_IsPure(t *testing.T) {
	v := DefaultValidator()

	first := v.Validate("3001234567")
	second := v.Validate("3001234567")
	assert.Equal(t, first, second)
}
