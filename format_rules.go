package modelcheck

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	alphaRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	// International phone number, E.164 format with optional leading plus.
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

type alphaRule struct {
	msg ruleMessage
}

// Alpha validates that every character of the value is an ASCII letter.
func Alpha(opts ...RuleOption) Rule {
	return alphaRule{msg: newRuleMessage(opts)}
}

func (r alphaRule) Valid(value, _ any) bool {
	return alphaRegex.MatchString(stringValue(value))
}

func (r alphaRule) ChecksEmpty() bool { return false }

func (r alphaRule) Message(field string, value any) string {
	return r.msg.resolve(field, value, func() string {
		return fmt.Sprintf("%s must contain only letters", field)
	})
}

type alphaNumericRule struct {
	msg ruleMessage
}

// AlphaNumeric validates that every character of the value is an ASCII letter
// or digit.
func AlphaNumeric(opts ...RuleOption) Rule {
	return alphaNumericRule{msg: newRuleMessage(opts)}
}

func (r alphaNumericRule) Valid(value, _ any) bool {
	return alphanumericRegex.MatchString(stringValue(value))
}

func (r alphaNumericRule) ChecksEmpty() bool { return false }

func (r alphaNumericRule) Message(field string, value any) string {
	return r.msg.resolve(field, value, func() string {
		return fmt.Sprintf("%s must contain only letters and numbers", field)
	})
}

type patternRule struct {
	regex *regexp.Regexp
	msg   ruleMessage
}

// Pattern validates that the value matches the full regular expression expr.
// The message is required and emitted verbatim on failure. Panics with
// ErrBadPattern on an invalid expression and ErrEmptyMessage on a missing
// message.
func Pattern(expr, message string, opts ...RuleOption) Rule {
	regex, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	if err != nil {
		panic(fmt.Errorf("%w: %v", ErrBadPattern, err))
	}
	if message == "" {
		panic(fmt.Errorf("%w: Pattern", ErrEmptyMessage))
	}

	m := newRuleMessage(opts)
	if m.custom == "" {
		m.custom = message
	}
	return patternRule{regex: regex, msg: m}
}

func (r patternRule) Valid(value, _ any) bool {
	return r.regex.MatchString(stringValue(value))
}

func (r patternRule) ChecksEmpty() bool { return false }

func (r patternRule) Message(field string, value any) string {
	return r.msg.resolve(field, value, func() string {
		return fmt.Sprintf("%s has an invalid format", field)
	})
}

type emailRule struct {
	msg ruleMessage
}

// Email validates that the value is a well-formed email address: a parseable
// local-part@domain with at least one dot in the domain.
func Email(opts ...RuleOption) Rule {
	return emailRule{msg: newRuleMessage(opts)}
}

func (r emailRule) Valid(value, _ any) bool {
	s := stringValue(value)

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	// Domain must contain at least one dot and no empty labels.
	if !strings.Contains(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

func (r emailRule) ChecksEmpty() bool { return false }

func (r emailRule) Message(field string, value any) string {
	return r.msg.resolve(field, value, func() string {
		return fmt.Sprintf("%s must be a valid email address", field)
	})
}

type uuidRule struct {
	msg ruleMessage
}

// UUID validates that the value is a standard 36-character UUID.
func UUID(opts ...RuleOption) Rule {
	return uuidRule{msg: newRuleMessage(opts)}
}

func (r uuidRule) Valid(value, _ any) bool {
	s := stringValue(value)

	// Fast rejection before parsing.
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	_, err := uuid.Parse(s)
	return err == nil
}

func (r uuidRule) ChecksEmpty() bool { return false }

func (r uuidRule) Message(field string, value any) string {
	return r.msg.resolve(field, value, func() string {
		return fmt.Sprintf("%s must be a valid UUID", field)
	})
}

type urlRule struct {
	msg ruleMessage
}

// URL validates that the value is an absolute URL with a scheme and host.
func URL(opts ...RuleOption) Rule {
	return urlRule{msg: newRuleMessage(opts)}
}

func (r urlRule) Valid(value, _ any) bool {
	u, err := url.ParseRequestURI(stringValue(value))
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func (r urlRule) ChecksEmpty() bool { return false }

func (r urlRule) Message(field string, value any) string {
	return r.msg.resolve(field, value, func() string {
		return fmt.Sprintf("%s must be a valid URL", field)
	})
}

type phoneRule struct {
	msg ruleMessage
}

// Phone validates that the value is an international phone number in E.164
// format. Spaces and dashes are ignored.
func Phone(opts ...RuleOption) Rule {
	return phoneRule{msg: newRuleMessage(opts)}
}

func (r phoneRule) Valid(value, _ any) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(stringValue(value))
	if len(cleaned) < 7 {
		return false
	}
	return phoneRegex.MatchString(cleaned)
}

func (r phoneRule) ChecksEmpty() bool { return false }

func (r phoneRule) Message(field string, value any) string {
	return r.msg.resolve(field, value, func() string {
		return fmt.Sprintf("%s must be a valid phone number", field)
	})
}
