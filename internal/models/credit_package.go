package models

// CreditPackage is a purchasable bundle of recipe credits. The catalog is
// fixed at deploy time and lives in code, so a package can never change
// underneath an in-flight payment.
type CreditPackage struct {
	ID          string `json:"id"`
	Credits     int    `json:"credits"`
	PriceCents  int64  `json:"price_cents"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

var creditPackages = map[string]CreditPackage{
	"10": {
		ID:          "10",
		Credits:     10,
		PriceCents:  1250,
		Currency:    "EUR",
		Description: "10 recipe credits",
	},
	"25": {
		ID:          "25",
		Credits:     25,
		PriceCents:  2500,
		Currency:    "EUR",
		Description: "25 recipe credits",
	},
	"50": {
		ID:          "50",
		Credits:     50,
		PriceCents:  4500,
		Currency:    "EUR",
		Description: "50 recipe credits - best value",
	},
}

// GetCreditPackage looks up a package by id. The lookup is total: every id
// either resolves or reports ok=false before any remote call is made.
func GetCreditPackage(id string) (CreditPackage, bool) {
	pkg, ok := creditPackages[id]
	return pkg, ok
}

// AllCreditPackages returns the catalog keyed by package id.
func AllCreditPackages() map[string]CreditPackage {
	out := make(map[string]CreditPackage, len(creditPackages))
	for id, pkg := range creditPackages {
		out[id] = pkg
	}
	return out
}
