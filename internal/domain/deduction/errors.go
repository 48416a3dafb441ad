package deduction

import "errors"

var (
	// ErrRuleNotFound marks a requested rule code with no active row. The
	// engine charges zero for it but the condition must stay visible to the
	// caller; it is never folded into an intentional zero.
	ErrRuleNotFound = errors.New("deduction rule not found")

	ErrNoMatchingBracket   = errors.New("salary matches no tax bracket")
	ErrOverlappingBrackets = errors.New("salary matches more than one tax bracket")
)
