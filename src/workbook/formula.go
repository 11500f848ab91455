package workbook

import "strings"

// Condition is one criteria_range/criteria pair of a conditional aggregate.
type Condition struct {
	Range    string
	Criteria string
}

func CountIfs(conds ...Condition) string {
	args := make([]string, 0, 2*len(conds))
	for _, c := range conds {
		args = append(args, c.Range, c.Criteria)
	}
	return call("COUNTIFS", args...)
}

func SumIfs(sumRange string, conds ...Condition) string {
	args := make([]string, 0, 1+2*len(conds))
	args = append(args, sumRange)
	for _, c := range conds {
		args = append(args, c.Range, c.Criteria)
	}
	return call("SUMIFS", args...)
}

func SumIf(cond Condition, sumRange string) string {
	return call("SUMIF", cond.Range, cond.Criteria, sumRange)
}

func call(fn string, args ...string) string {
	return "=" + fn + "(" + strings.Join(args, ", ") + ")"
}
