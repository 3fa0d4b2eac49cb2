package queries

import "strings"

type BankingAliasView struct {
	Alias string `json:"alias"`
}

type BankingQueries interface {
	Aliases() []BankingAliasView
}

type bankingQueriesImpl struct {
	aliases []BankingAliasView
}

// NewBankingQueries drops blank entries and keeps configuration order.
func NewBankingQueries(aliases []string) BankingQueries {
	views := make([]BankingAliasView, 0, len(aliases))
	for _, a := range aliases {
		if a = strings.TrimSpace(a); a != "" {
			views = append(views, BankingAliasView{Alias: a})
		}
	}
	return &bankingQueriesImpl{aliases: views}
}

func (q *bankingQueriesImpl) Aliases() []BankingAliasView {
	return append([]BankingAliasView(nil), q.aliases...)
}
