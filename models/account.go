package models

// Account is a money container owned by the user (wallet, bank account).
type Account struct {
	ID      ID     `json:"id,omitempty"`
	Name    string `json:"name"`
	Balance Money  `json:"balance"`
}
