package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// zeroTolerance absorbs the residue left by dividing amounts that do not
// split evenly. Balances within it are treated as settled.
var zeroTolerance = decimal.New(1, -6) // 1e-6

// Transfer is a recommended payment from a debtor to a creditor.
type Transfer struct {
	From   string
	To     string
	Amount decimal.Decimal
}

// Plan is the ordered list of transfers that settles every outstanding
// balance. An empty plan is a real result: nobody owes anybody.
type Plan struct {
	Transfers []Transfer
}

// Settled reports whether no payments are needed.
func (p Plan) Settled() bool { return len(p.Transfers) == 0 }

// Settle computes the payment plan for the current balances.
//
// Friends are partitioned into creditors (positive net) and debtors
// (negative net); creditors are sorted by net descending and debtors
// ascending, both stable so equal balances keep friend insertion order.
// Each debtor then pays creditors in that order until their debt is gone.
//
// Greedy matching does not always yield the theoretical minimum number of
// transfers; the plan it produces is kept as the engine's observable
// contract.
func (l *Ledger) Settle() Plan {
	type party struct {
		name string
		net  decimal.Decimal
	}
	var creditors, debtors []party
	for _, name := range l.names {
		t := l.totals[name]
		net := t.paid.Sub(t.owed)
		switch {
		case net.GreaterThan(zeroTolerance):
			creditors = append(creditors, party{name: name, net: net})
		case net.LessThan(zeroTolerance.Neg()):
			debtors = append(debtors, party{name: name, net: net})
		}
	}
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].net.GreaterThan(creditors[j].net)
	})
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].net.LessThan(debtors[j].net)
	})

	var transfers []Transfer
	for _, d := range debtors {
		remaining := d.net.Abs()
		for i := range creditors {
			credit := creditors[i].net
			if !credit.IsPositive() {
				continue
			}
			if credit.GreaterThanOrEqual(remaining) {
				transfers = append(transfers, Transfer{From: d.name, To: creditors[i].name, Amount: remaining})
				creditors[i].net = credit.Sub(remaining)
				break
			}
			transfers = append(transfers, Transfer{From: d.name, To: creditors[i].name, Amount: credit})
			remaining = remaining.Sub(credit)
			creditors[i].net = decimal.Zero
		}
	}
	return Plan{Transfers: transfers}
}
