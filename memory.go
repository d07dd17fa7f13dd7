package finapigo

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// MemoryEndpoint is an in-memory Repository used by tests and the dev
// server. A single RWMutex serializes writers; the guarded insert holds
// the write lock across the whole check-then-insert section, which is the
// per-user serialization boundary promised by StatementStore.
type MemoryEndpoint struct {
	mu     sync.RWMutex
	users  map[snowflake.ID]User
	stmts  map[snowflake.ID]Statement
	byUser map[snowflake.ID][]snowflake.ID
}

var (
	_ Repository = (*MemoryEndpoint)(nil)
)

func NewMemoryEndpoint() *MemoryEndpoint {
	return &MemoryEndpoint{
		users:  make(map[snowflake.ID]User),
		stmts:  make(map[snowflake.ID]Statement),
		byUser: make(map[snowflake.ID][]snowflake.ID),
	}
}

func (m *MemoryEndpoint) CreateUser(usr User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[usr.ID]; ok {
		return fmt.Errorf("user %s already exists", usr.ID)
	}
	m.users[usr.ID] = usr
	return nil
}

func (m *MemoryEndpoint) GetUser(id snowflake.ID) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	usr, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound{ID: id}
	}
	return &usr, nil
}

// DeleteUser exists for administrative flows and tests; statements the
// user already wrote stay in the ledger.
func (m *MemoryEndpoint) DeleteUser(id snowflake.ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
}

func (m *MemoryEndpoint) InsertStatement(st Statement) (*Statement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertLocked(st)
}

func (m *MemoryEndpoint) GetStatement(id snowflake.ID) (*Statement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.stmts[id]
	if !ok {
		return nil, ErrStatementNotFound{ID: id}
	}
	return &st, nil
}

func (m *MemoryEndpoint) ListStatements(userID snowflake.ID) ([]Statement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.listLocked(userID), nil
}

func (m *MemoryEndpoint) InsertStatementGuarded(st Statement, check func(current []Statement) error) (*Statement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := check(m.listLocked(st.UserID)); err != nil {
		return nil, err
	}
	return m.insertLocked(st)
}

func (m *MemoryEndpoint) insertLocked(st Statement) (*Statement, error) {
	if _, ok := m.stmts[st.ID]; ok {
		return nil, fmt.Errorf("statement %s already exists", st.ID)
	}
	m.stmts[st.ID] = st
	m.byUser[st.UserID] = append(m.byUser[st.UserID], st.ID)
	return &st, nil
}

func (m *MemoryEndpoint) listLocked(userID snowflake.ID) []Statement {
	ids := m.byUser[userID]
	sts := make([]Statement, 0, len(ids))
	for _, id := range ids {
		sts = append(sts, m.stmts[id])
	}
	return sts
}
