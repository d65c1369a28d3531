package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/budget-tracker-dev/budget-tracker/internal/model"
)

// Service ties a Store to its expenses.csv file. Load and save are the
// only points that touch the file; queries run against the in-memory
// Store.
type Service struct {
	path  string
	store *Store
}

// NewService creates a Service for the ledger file at path. Call Load
// before using the Store.
func NewService(path string) *Service {
	return &Service{path: path, store: NewStore(nil)}
}

// Path returns the ledger file path.
func (s *Service) Path() string {
	return s.path
}

// Store returns the in-memory store backing this service.
func (s *Service) Store() *Store {
	return s.store
}

// Load reads the ledger file into the Store, replacing its contents.
// A missing file leaves the Store empty. A malformed record aborts the
// load with a *ParseError naming the row.
func (s *Service) Load() error {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.store.Load(nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening ledger %s: %w", s.path, err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return fmt.Errorf("reading ledger %s: %w", s.path, err)
	}
	s.store.Load(txns)
	return nil
}

// Append adds one validated transaction to the Store and appends it to
// the ledger file, creating the file (with header) and its directory if
// needed. Existing rows are never rewritten or reordered.
func (s *Service) Append(txn model.Transaction) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendTransactions(f, []model.Transaction{txn}); err != nil {
		return fmt.Errorf("appending transaction: %w", err)
	}

	s.store.Append(txn)
	return nil
}

// Save rewrites the ledger file wholesale from the Store.
func (s *Service) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("creating ledger: %w", err)
	}
	defer f.Close()

	if err := WriteTransactions(f, s.store.All()); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}
