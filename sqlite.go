package finapigo

import (
	"database/sql"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

var sqliteSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		created_at TIMESTAMP NOT NULL
	);
	CREATE TABLE IF NOT EXISTS statements (
		id INTEGER PRIMARY KEY,
		user_id INTEGER NOT NULL,
		kind TEXT NOT NULL CHECK (kind IN ('deposit', 'withdraw')),
		amount TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_statements_user ON statements (user_id, created_at);
`

// SqliteEndpoint is a Repository over an embedded SQLite database, for
// single-binary deployments. Amounts are stored as exact decimal strings.
// SQLite allows one writer at a time; the mutex extends that to the whole
// check-then-insert section of the guarded insert.
type SqliteEndpoint struct {
	db *sql.DB
	mu sync.Mutex
}

var (
	_ Repository = (*SqliteEndpoint)(nil)
)

// NewSqliteEndpoint opens (or creates) the database at path and applies
// the schema. Use ":memory:" for an ephemeral database.
func NewSqliteEndpoint(path string) (*SqliteEndpoint, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err = db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &SqliteEndpoint{db: db}, nil
}

func (s *SqliteEndpoint) Close() error {
	return s.db.Close()
}

func (s *SqliteEndpoint) CreateUser(usr User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`INSERT INTO users (id, name, email, created_at) VALUES (?, ?, ?, ?)`,
		usr.ID.Int64(), usr.Name, usr.Email, usr.CreatedAt,
	)
	return err
}

func (s *SqliteEndpoint) GetUser(id snowflake.ID) (*User, error) {
	usr := User{ID: id}
	err := s.db.QueryRow(
		`SELECT name, email, created_at FROM users WHERE id = ?`, id.Int64(),
	).Scan(&usr.Name, &usr.Email, &usr.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound{ID: id}
		}
		return nil, err
	}
	return &usr, nil
}

func (s *SqliteEndpoint) DeleteUser(id snowflake.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM users WHERE id = ?`, id.Int64())
	return err
}

func (s *SqliteEndpoint) InsertStatement(st Statement) (*Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(st)
}

func (s *SqliteEndpoint) GetStatement(id snowflake.ID) (*Statement, error) {
	var (
		ruser int64
		rkind string
		ramt  string
		rdesc string
		rts   time.Time
	)
	err := s.db.QueryRow(
		`SELECT user_id, kind, amount, description, created_at FROM statements WHERE id = ?`,
		id.Int64(),
	).Scan(&ruser, &rkind, &ramt, &rdesc, &rts)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrStatementNotFound{ID: id}
		}
		return nil, err
	}
	amt, err := decimal.NewFromString(ramt)
	if err != nil {
		return nil, err
	}
	return &Statement{
		ID:          id,
		UserID:      snowflake.ParseInt64(ruser),
		Kind:        OperationType(rkind),
		Amount:      amt,
		Description: rdesc,
		CreatedAt:   rts,
	}, nil
}

func (s *SqliteEndpoint) ListStatements(userID snowflake.ID) ([]Statement, error) {
	rows, err := s.db.Query(
		`SELECT id, kind, amount, description, created_at
		FROM statements WHERE user_id = ? ORDER BY created_at`,
		userID.Int64(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sts []Statement
	for rows.Next() {
		var (
			rid   int64
			rkind string
			ramt  string
			rdesc string
			rts   time.Time
		)
		if err = rows.Scan(&rid, &rkind, &ramt, &rdesc, &rts); err != nil {
			return nil, err
		}
		amt, err := decimal.NewFromString(ramt)
		if err != nil {
			return nil, err
		}
		sts = append(sts, Statement{
			ID:          snowflake.ParseInt64(rid),
			UserID:      userID,
			Kind:        OperationType(rkind),
			Amount:      amt,
			Description: rdesc,
			CreatedAt:   rts,
		})
	}
	return sts, rows.Err()
}

func (s *SqliteEndpoint) InsertStatementGuarded(st Statement, check func(current []Statement) error) (*Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := s.ListStatements(st.UserID)
	if err != nil {
		return nil, err
	}
	if err = check(current); err != nil {
		return nil, err
	}
	return s.insert(st)
}

func (s *SqliteEndpoint) insert(st Statement) (*Statement, error) {
	_, err := s.db.Exec(
		`INSERT INTO statements (id, user_id, kind, amount, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		st.ID.Int64(), st.UserID.Int64(), string(st.Kind), st.Amount.String(), st.Description, st.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
