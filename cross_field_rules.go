package modelcheck

import "fmt"

type checkRule struct {
	fn  func(value, model any) bool
	msg ruleMessage
}

// Check validates a field with an arbitrary predicate over the value and the
// whole model, for relational rules like "confirmPassword equals password".
// The message is required and emitted verbatim on failure. Panics with
// ErrNilPredicate on a nil predicate and ErrEmptyMessage on a missing message.
func Check(message string, fn func(value, model any) bool, opts ...RuleOption) Rule {
	if fn == nil {
		panic(fmt.Errorf("%w: Check", ErrNilPredicate))
	}
	if message == "" {
		panic(fmt.Errorf("%w: Check", ErrEmptyMessage))
	}

	m := newRuleMessage(opts)
	if m.custom == "" {
		m.custom = message
	}
	return checkRule{fn: fn, msg: m}
}

func (r checkRule) Valid(value, model any) bool {
	return r.fn(value, model)
}

func (r checkRule) ChecksEmpty() bool { return false }

func (r checkRule) Message(field string, value any) string {
	return r.msg.resolve(field, value, func() string {
		return fmt.Sprintf("%s is invalid", field)
	})
}
