package models

// Record is one raw entry as typed by the user, before its date and account
// are resolved. A non-nil Total marks a running total; otherwise the record
// describes a transaction.
type Record struct {
	Date     string
	Account  string
	Total    *int
	Amount   int
	Title    string
	Shop     string
	Category string
}

// IsTotal reports whether the record carries a running total.
func (r Record) IsTotal() bool { return r.Total != nil }

// Transaction returns the transaction described by the record.
func (r Record) Transaction() Transaction {
	return NewTransaction(r.Amount, r.Title, r.Shop, r.Category)
}
