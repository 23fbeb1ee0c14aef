package currency

import (
	"fmt"
	"math"
	"strings"
)

var symbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"JPY": "¥",
}

// Format renders amount with two decimals and comma thousands separators.
// Known currencies get a symbol prefix, anything else a code suffix.
func Format(amount float64, code string) string {
	cents := math.Round(amount * 100)

	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := math.Floor(cents / 100)
	frac := int(cents - whole*100)
	number := addThousandsSeparator(fmt.Sprintf("%.0f", whole), ",") + fmt.Sprintf(".%02d", frac)

	code = strings.ToUpper(strings.TrimSpace(code))
	var result string
	if sym, ok := symbols[code]; ok {
		result = sym + number
	} else if code != "" {
		result = number + " " + code
	} else {
		result = number
	}

	if negative {
		result = "-" + result
	}
	return result
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
