package referral

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/shared/biztime"
)

// CodePrefix prefixes every referral code.
const CodePrefix = "WAVE"

const (
	codeSuffixLength = 8
	codeAddressChars = 6
)

var codePattern = regexp.MustCompile(`^WAVE[A-Z0-9]{8}$`)

// GenerateCode derives a referral code from the referrer's address: the
// fixed prefix, the tail of the address, and a base36 time component,
// truncated to the fixed code length.
func GenerateCode(address string) (string, error) {
	address = strings.TrimPrefix(normalize.Address(address), "0x")
	if address == "" {
		return "", fmt.Errorf("address is required to derive a referral code")
	}

	if len(address) > codeAddressChars {
		address = address[len(address)-codeAddressChars:]
	}

	timeComponent := strconv.FormatInt(biztime.NowUTC().UnixMilli(), 36)
	suffix := strings.ToUpper(address + timeComponent)
	if len(suffix) > codeSuffixLength {
		suffix = suffix[:codeSuffixLength]
	}

	code := CodePrefix + suffix
	if err := ValidateCode(code); err != nil {
		return "", err
	}
	return code, nil
}

// ValidateCode checks the fixed code format.
func ValidateCode(code string) error {
	if !codePattern.MatchString(code) {
		return fmt.Errorf("invalid referral code format: %s", code)
	}
	return nil
}
