package ledger

import "github.com/budget-tracker-dev/budget-tracker/internal/model"

// Store owns the canonical ordered transaction sequence for the process
// lifetime. Order is insertion/file order; it is never re-sorted and
// identical rows stay distinct entries.
type Store struct {
	txns []model.Transaction
}

// NewStore creates a Store holding txns.
func NewStore(txns []model.Transaction) *Store {
	return &Store{txns: txns}
}

// Load replaces the current contents with txns.
func (s *Store) Load(txns []model.Transaction) {
	s.txns = txns
}

// Append adds one transaction at the end.
func (s *Store) Append(txn model.Transaction) {
	s.txns = append(s.txns, txn)
}

// All returns the transaction sequence in insertion order. The slice is
// a view over the Store; callers must not hold it across Load or Append.
func (s *Store) All() []model.Transaction {
	return s.txns
}

// Len returns the number of transactions.
func (s *Store) Len() int {
	return len(s.txns)
}
