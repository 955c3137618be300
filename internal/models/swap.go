package models

// SwapEntry is one exercise substitution remembered across sessions
type SwapEntry struct {
	From string `json:"from"`
	To   string `json:"to"`
}
