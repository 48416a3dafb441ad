package deduction

import "context"

type StoreIface interface {
	RuleByCode(ctx context.Context, code string) (Rule, error)
	ListTaxBrackets(ctx context.Context) ([]Rule, error)
}
