package models

// Entity is the shared capability of the two balance-holding types. Mutation
// logic type-switches on the concrete type to decide which balance field a
// transaction touches.
type Entity interface {
	EntityID() string
	DisplayName() string
}

// Snapshot is the whole ledger: every account, card, transaction, and the
// user's settings. It is persisted and restored as a single unit.
type Snapshot struct {
	Accounts     []Account     `json:"accounts"`
	CreditCards  []CreditCard  `json:"creditCards"`
	Transactions []Transaction `json:"transactions"`
	Settings     Settings      `json:"settings"`
}

// DefaultSnapshot returns the snapshot synthesized on first use: empty
// collections and default settings.
func DefaultSnapshot() *Snapshot {
	return &Snapshot{
		Accounts:     []Account{},
		CreditCards:  []CreditCard{},
		Transactions: []Transaction{},
		Settings:     DefaultSettings(),
	}
}

// FindEntity resolves an ID to the account or card it identifies. Accounts
// are checked first; IDs are unique across both collections.
func (s *Snapshot) FindEntity(id string) (Entity, bool) {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return &s.Accounts[i], true
		}
	}
	for i := range s.CreditCards {
		if s.CreditCards[i].ID == id {
			return &s.CreditCards[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy. Handed out to readers so aggregation never
// observes a snapshot mid-mutation.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Accounts:     make([]Account, len(s.Accounts)),
		CreditCards:  make([]CreditCard, len(s.CreditCards)),
		Transactions: make([]Transaction, len(s.Transactions)),
		Settings:     s.Settings,
	}
	copy(out.Accounts, s.Accounts)
	copy(out.CreditCards, s.CreditCards)
	copy(out.Transactions, s.Transactions)
	return out
}
