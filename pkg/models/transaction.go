package models

// Transaction is one itemized amount filed under a date of an account.
// The sign convention of Amount is left to the user.
type Transaction struct {
	Amount   int    `yaml:"amount"`
	Title    string `yaml:"title,omitempty"`
	Shop     string `yaml:"shop,omitempty"`
	Category string `yaml:"category,omitempty"`
}

// NewTransaction builds a transaction from its fields.
func NewTransaction(amount int, title, shop, category string) Transaction {
	return Transaction{
		Amount:   amount,
		Title:    title,
		Shop:     shop,
		Category: category,
	}
}
