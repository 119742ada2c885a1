package domain

// CatalogItem is something a user can afford for a number of Shefras.
type CatalogItem struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	ShefraCost  float64 `json:"shefraCost" yaml:"shefraCost"`
	ImageRef    string  `json:"imageRef" yaml:"image"`
}

// Conversion is the outcome of converting an amount into Shefras.
type Conversion struct {
	Amount      float64      `json:"amount"`
	Currency    CurrencyCode `json:"currency"`
	INRAmount   float64      `json:"inrAmount"`
	Shefras     float64      `json:"shefras"`
	MissingRate bool         `json:"missingRate"` // the INR rate was absent, Shefras is a degraded zero
	OutOfRange  bool         `json:"outOfRange"`  // the result overflowed float64, Shefras is a degraded zero
}
