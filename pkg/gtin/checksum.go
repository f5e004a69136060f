package gtin

import (
	"fmt"
	"regexp"
	"strconv"
)

var digitsRegex = regexp.MustCompile(`^[0-9]+$`)

// weightedSum applies the GS1 Modulo-10 weighting to digits: the digit at
// position i is weighted 3 when i%2 == weightBit, 1 otherwise.
// The caller must ensure digits contains ASCII digits only.
func weightedSum(digits string, weightBit int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		weight := 1
		if i%2 == weightBit {
			weight = 3
		}
		sum += int(digits[i]-'0') * weight
	}
	return sum
}

// matchesFormat checks length and digits. With a valid format the length must
// equal its length exactly; otherwise any known length minus digitsShort is accepted.
func matchesFormat(candidate string, format Format, digitsShort int) bool {
	n := len(candidate)
	validLength := false
	if format.IsValid() {
		validLength = n == format.Length()
	} else {
		for _, f := range Formats() {
			if n == f.Length()-digitsShort {
				validLength = true
				break
			}
		}
	}
	if !validLength {
		return false
	}
	return digitsRegex.MatchString(candidate)
}

// MatchesFormat reports whether candidate has the length of a known GTIN
// format and consists of ASCII digits only. The checksum is not verified.
func MatchesFormat(candidate string) bool {
	return matchesFormat(candidate, 0, 0)
}

// MatchesFormatOf reports whether candidate has exactly the length of format
// and consists of ASCII digits only. The zero Format behaves like MatchesFormat.
func MatchesFormatOf(candidate string, format Format) bool {
	return matchesFormat(candidate, format, 0)
}

func MatchesFormat8(candidate string) bool  { return matchesFormat(candidate, GTIN8, 0) }
func MatchesFormat12(candidate string) bool { return matchesFormat(candidate, GTIN12, 0) }
func MatchesFormat13(candidate string) bool { return matchesFormat(candidate, GTIN13, 0) }
func MatchesFormat14(candidate string) bool { return matchesFormat(candidate, GTIN14, 0) }

// IsValid checks format and checksum of candidate against any known format.
func IsValid(candidate string) bool {
	return IsValidFormat(candidate, 0)
}

// IsValidFormat checks format, length and checksum of candidate. When format
// is the zero value any known format is accepted.
func IsValidFormat(candidate string, format Format) bool {
	if !MatchesFormat(candidate) {
		return false
	}
	n := len(candidate)
	if format.IsValid() && n != format.Length() {
		return false
	}
	return weightedSum(candidate, n%2)%10 == 0
}

func IsValid8(candidate string) bool  { return IsValidFormat(candidate, GTIN8) }
func IsValid12(candidate string) bool { return IsValidFormat(candidate, GTIN12) }
func IsValid13(candidate string) bool { return IsValidFormat(candidate, GTIN13) }
func IsValid14(candidate string) bool { return IsValidFormat(candidate, GTIN14) }

// CalculateCheckDigit returns the check digit completing partial, a GTIN
// without its trailing check digit.
func CalculateCheckDigit(partial string) (int, error) {
	if !matchesFormat(partial, 0, 1) {
		return 0, fmt.Errorf("%w: %q is not a valid partial GTIN", ErrInvalidFormat, partial)
	}
	sum := weightedSum(partial, (len(partial)+1)%2)
	if sum%10 == 0 {
		return 0, nil
	}
	return 10 - sum%10, nil
}

// WithCheckDigit returns partial with its computed check digit appended.
func WithCheckDigit(partial string) (string, error) {
	digit, err := CalculateCheckDigit(partial)
	if err != nil {
		return "", err
	}
	return partial + strconv.Itoa(digit), nil
}
