package modelcheck

import "fmt"

type requiredRule struct {
	msg ruleMessage
}

// Required validates that a field has a non-empty value. It is the one rule
// that runs even when the value is empty.
func Required(opts ...RuleOption) Rule {
	return requiredRule{msg: newRuleMessage(opts)}
}

func (r requiredRule) Valid(value, _ any) bool {
	return !isEmpty(value)
}

func (r requiredRule) ChecksEmpty() bool { return true }

func (r requiredRule) Message(field string, value any) string {
	return r.msg.resolve(field, value, func() string {
		return fmt.Sprintf("%s is required", field)
	})
}

type minLengthRule struct {
	min int
	msg ruleMessage
}

// MinLength validates that a field value is at least min characters long.
// Panics with ErrInvalidBound unless min is a positive integer.
func MinLength(min int, opts ...RuleOption) Rule {
	if min < 1 {
		panic(fmt.Errorf("%w: MinLength got %d", ErrInvalidBound, min))
	}
	return minLengthRule{min: min, msg: newRuleMessage(opts)}
}

func (r minLengthRule) Valid(value, _ any) bool {
	return valueLength(value) >= r.min
}

func (r minLengthRule) ChecksEmpty() bool { return false }

func (r minLengthRule) Message(field string, value any) string {
	return r.msg.resolve(field, value, func() string {
		return fmt.Sprintf("%s must be at least %d characters long", field, r.min)
	})
}

type maxLengthRule struct {
	max int
	msg ruleMessage
}

// MaxLength validates that a field value is at most max characters long.
// Panics with ErrInvalidBound unless max is a positive integer.
func MaxLength(max int, opts ...RuleOption) Rule {
	if max < 1 {
		panic(fmt.Errorf("%w: MaxLength got %d", ErrInvalidBound, max))
	}
	return maxLengthRule{max: max, msg: newRuleMessage(opts)}
}

func (r maxLengthRule) Valid(value, _ any) bool {
	return valueLength(value) <= r.max
}

func (r maxLengthRule) ChecksEmpty() bool { return false }

func (r maxLengthRule) Message(field string, value any) string {
	return r.msg.resolve(field, value, func() string {
		return fmt.Sprintf("%s must be at most %d characters long", field, r.max)
	})
}
