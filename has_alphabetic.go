package jsonrule

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const creditCardNumberLength = 16

type hasAlphabetic struct {
	isCreditCardNumberCheck bool
}

// HasAlphabetic returns a check that a string contains at least one letter.
// Blank strings pass.
func HasAlphabetic() Check {
	return hasAlphabetic{}
}

// NonCreditCardNumber returns a check that rejects letter-free strings holding
// exactly sixteen digits.
func NonCreditCardNumber() Check {
	return hasAlphabetic{isCreditCardNumberCheck: true}
}

func (c hasAlphabetic) Describe(schema *openapi3.Schema) error {
	if c.isCreditCardNumberCheck {
		appendDescription(schema, "must not be a credit card number")
		return nil
	}
	appendDescription(schema, "must contain at least one alphabetic character")
	return nil
}

var (
	alphabeticRegexp = regexp.MustCompile(`[^[:alpha:]]`)
	numberRegexp     = regexp.MustCompile(`\D`)
)

func (c hasAlphabetic) Validate(value any) error {
	v, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}

	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	ar := alphabeticRegexp.ReplaceAllString(v, "")
	if ar == "" {
		if c.isCreditCardNumberCheck {
			nr := numberRegexp.ReplaceAllString(v, "")
			if len(nr) != creditCardNumberLength {
				return nil
			}
			return errors.New("must not be a credit card number")
		}
		return errors.New("must contain at least one alphabetic character")
	}
	return nil
}
