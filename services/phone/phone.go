package phone

import (
	"fmt"
	"sort"
	"strings"
)

// Result is the outcome of validating one phone number. On failure Reason
// carries a human-readable explanation the UI can show as-is.
type Result struct {
	IsValid     bool   `json:"is_valid"`
	Reason      string `json:"reason,omitempty"`
	E164        string `json:"e164,omitempty"`
	Country     string `json:"country,omitempty"`
	CallingCode string `json:"calling_code,omitempty"`
}

// CountryRule is one closed validation policy: a calling code plus the
// national-number constraints for that region. Adding a country is a data
// addition here, not new control flow.
type CountryRule struct {
	Country     string
	CallingCode string
	MinDigits   int
	MaxDigits   int

	// Check optionally refines the length rule with region-specific prefix
	// logic. It receives the national digits and returns a rejection reason,
	// or "" when the number is acceptable.
	Check func(digits string) string
}

// Validator normalizes and validates phone numbers against a closed set of
// country rules, defaulting to a home country when no prefix is present.
type Validator struct {
	home  CountryRule
	rules []CountryRule
}

// NewValidator builds a validator for the given rule set. The home rule is
// applied to numbers submitted without an international prefix.
func NewValidator(home CountryRule, rules []CountryRule) *Validator {
	// Longest calling code first so +593 wins over +59, etc.
	ordered := make([]CountryRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].CallingCode) > len(ordered[j].CallingCode)
	})
	return &Validator{home: home, rules: ordered}
}

// DefaultValidator returns the production rule set with Colombia as the home
// country.
func DefaultValidator() *Validator {
	return NewValidator(colombiaRule(), defaultRules())
}

// Validate is a pure function: it never touches storage or the network.
func (v *Validator) Validate(input string) Result {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Result{IsValid: false, Reason: "phone number is empty"}
	}

	cleaned := stripFormatting(raw)

	// "00" international prefix is equivalent to "+"
	if strings.HasPrefix(cleaned, "00") {
		cleaned = "+" + cleaned[2:]
	}

	if strings.HasPrefix(cleaned, "+") {
		return v.validateInternational(cleaned[1:])
	}

	if reason := checkDigitsOnly(cleaned); reason != "" {
		return Result{IsValid: false, Reason: reason}
	}

	return v.apply(v.home, cleaned)
}

func (v *Validator) validateInternational(digits string) Result {
	if reason := checkDigitsOnly(digits); reason != "" {
		return Result{IsValid: false, Reason: reason}
	}

	for _, rule := range v.rules {
		if strings.HasPrefix(digits, rule.CallingCode) {
			national := digits[len(rule.CallingCode):]
			return v.apply(rule, national)
		}
	}

	return Result{IsValid: false, Reason: "unrecognized country calling code"}
}

func (v *Validator) apply(rule CountryRule, national string) Result {
	if len(national) < rule.MinDigits {
		return Result{
			IsValid: false,
			Reason:  fmt.Sprintf("number is too short for %s: expected at least %d digits, got %d", rule.Country, rule.MinDigits, len(national)),
		}
	}
	if len(national) > rule.MaxDigits {
		return Result{
			IsValid: false,
			Reason:  fmt.Sprintf("number is too long for %s: expected at most %d digits, got %d", rule.Country, rule.MaxDigits, len(national)),
		}
	}
	if rule.Check != nil {
		if reason := rule.Check(national); reason != "" {
			return Result{IsValid: false, Reason: reason}
		}
	}

	return Result{
		IsValid:     true,
		E164:        "+" + rule.CallingCode + national,
		Country:     rule.Country,
		CallingCode: "+" + rule.CallingCode,
	}
}

// stripFormatting removes the separators people commonly type into phone
// fields: spaces, dashes, dots and parentheses.
func stripFormatting(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '-', '.', '(', ')':
			continue
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func checkDigitsOnly(s string) string {
	if s == "" {
		return "phone number is empty"
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "phone number contains non-numeric characters"
		}
	}
	return ""
}
