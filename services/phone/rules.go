package phone

import (
	"fmt"
	"strings"
)

// colombiaRule validates Colombian numbers: 10-digit mobiles starting with 3,
// 7-digit local landlines, or 10-digit landlines with the unified 60x prefix.
func colombiaRule() CountryRule {
	return CountryRule{
		Country:     "Colombia",
		CallingCode: "57",
		MinDigits:   7,
		MaxDigits:   10,
		Check: func(digits string) string {
			switch len(digits) {
			case 10:
				if strings.HasPrefix(digits, "3") || strings.HasPrefix(digits, "60") {
					return ""
				}
				return "a 10-digit Colombian number must start with 3 (mobile) or 60 (landline)"
			case 7:
				if digits[0] >= '2' && digits[0] <= '8' {
					return ""
				}
				return "a 7-digit Colombian landline must start with a digit between 2 and 8"
			default:
				return fmt.Sprintf("Colombian numbers have 7 or 10 digits, got %d", len(digits))
			}
		},
	}
}

// defaultRules is the closed set of supported destinations. Countries are
// matched by calling-code prefix, longest first.
func defaultRules() []CountryRule {
	return []CountryRule{
		colombiaRule(),
		{Country: "United States/Canada", CallingCode: "1", MinDigits: 10, MaxDigits: 10},
		{Country: "United Kingdom", CallingCode: "44", MinDigits: 9, MaxDigits: 10},
		{Country: "Spain", CallingCode: "34", MinDigits: 9, MaxDigits: 9},
		{Country: "Mexico", CallingCode: "52", MinDigits: 10, MaxDigits: 10},
		{Country: "Venezuela", CallingCode: "58", MinDigits: 10, MaxDigits: 10},
		{Country: "Ecuador", CallingCode: "593", MinDigits: 8, MaxDigits: 9},
		{Country: "Panama", CallingCode: "507", MinDigits: 7, MaxDigits: 8},
		{Country: "Peru", CallingCode: "51", MinDigits: 9, MaxDigits: 9},
		{Country: "Chile", CallingCode: "56", MinDigits: 9, MaxDigits: 9},
		{Country: "Brazil", CallingCode: "55", MinDigits: 10, MaxDigits: 11},
		{Country: "Argentina", CallingCode: "54", MinDigits: 10, MaxDigits: 11},
	}
}
