package finapigo

import (
	"github.com/bwmarrin/snowflake"
)

// UserDirectory resolves user identities. GetUser returns ErrUserNotFound
// when the id does not resolve, including for users deleted after creation.
type UserDirectory interface {
	CreateUser(usr User) error
	GetUser(id snowflake.ID) (*User, error)
}

// StatementStore is the append-only ledger of statements. Implementations
// persist what they are given and do no validation of their own.
type StatementStore interface {
	// InsertStatement persists st and returns the stored record.
	// An id collision is an error, never an overwrite.
	InsertStatement(st Statement) (*Statement, error)
	GetStatement(id snowflake.ID) (*Statement, error)
	ListStatements(userID snowflake.ID) ([]Statement, error)
	// InsertStatementGuarded runs list-check-insert as a single critical
	// section for st.UserID: the store fetches the user's current
	// statements, calls check on them, and inserts st only when check
	// returns nil. No concurrent insert for the same user may interleave
	// between the check and the insert.
	InsertStatementGuarded(st Statement, check func(current []Statement) error) (*Statement, error)
}

type Repository interface {
	UserDirectory
	StatementStore
}
