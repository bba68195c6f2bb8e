package ledger

import "strings"

// Criterion selects which expense field a filter matches against.
type Criterion string

const (
	CriterionAll         Criterion = "all"
	CriterionDate        Criterion = "date"
	CriterionDescription Criterion = "description"
	CriterionPayer       Criterion = "payer"
	CriterionParticipant Criterion = "participant"
)

// ParseCriterion maps a user-supplied criterion name to a Criterion.
func ParseCriterion(s string) (Criterion, error) {
	switch c := Criterion(strings.ToLower(strings.TrimSpace(s))); c {
	case CriterionAll, CriterionDate, CriterionDescription, CriterionPayer, CriterionParticipant:
		return c, nil
	default:
		return "", validationErrorf("unknown filter criterion %q (want all, date, description, payer or participant)", s)
	}
}

// Filter returns the expenses whose selected field contains value,
// case-insensitively. CriterionAll or an empty value returns the full list.
// For CriterionParticipant any participant may match. The ledger itself is
// never modified.
func (l *Ledger) Filter(criterion Criterion, value string) []Expense {
	value = strings.ToLower(value)
	if criterion == CriterionAll || value == "" {
		return l.Expenses()
	}

	matches := func(field string) bool {
		return strings.Contains(strings.ToLower(field), value)
	}

	out := []Expense{}
	for _, e := range l.expenses {
		keep := false
		switch criterion {
		case CriterionDate:
			keep = matches(e.Date)
		case CriterionDescription:
			keep = matches(e.Description)
		case CriterionPayer:
			keep = matches(e.Payer)
		case CriterionParticipant:
			for _, p := range e.Participants {
				if matches(p) {
					keep = true
					break
				}
			}
		}
		if keep {
			out = append(out, e.clone())
		}
	}
	return out
}
