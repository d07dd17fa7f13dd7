package finapigo

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5"
)

// LocalHelper prepares a local Postgres database for the seeder and the
// integration tests: schema from testdata/init_db.sql, demo users from
// testdata/seed_users.tmpl.
type LocalHelper struct {
	Conn *pgx.Conn
}

func NewLocalHelper(cfg *Config) (*LocalHelper, error) {
	conn, err := pgx.Connect(context.Background(), cfg.Database.ConnectionString)
	if err != nil {
		return nil, err
	}
	return &LocalHelper{Conn: conn}, nil
}

func (lh *LocalHelper) InitDB() (func(), error) {
	initSQLpath := filepath.Join("testdata", "init_db.sql")
	bits, err := os.ReadFile(initSQLpath)
	if err != nil {
		return nil, err
	}
	if _, err = lh.Conn.Exec(context.Background(), string(bits)); err != nil {
		return nil, err
	}
	return lh.teardownDB(), err
}

func (lh *LocalHelper) SeedUsers(names map[string]string) (map[string]snowflake.ID, error) {
	node, err := snowflake.NewNode(111)
	if err != nil {
		return nil, err
	}
	type seedUser struct {
		ID    string
		Name  string
		Email string
	}
	users := make(map[string]snowflake.ID, len(names))
	input := make([]seedUser, 0, len(names))
	for name, email := range names {
		id := node.Generate()
		users[email] = id
		input = append(input, seedUser{ID: id.String(), Name: name, Email: email})
	}

	seedPath := filepath.Join("testdata", "seed_users.tmpl")
	bits, err := os.ReadFile(seedPath)
	if err != nil {
		return nil, err
	}
	funcMap := template.FuncMap{
		"lastIdx": func(s []seedUser) int { return len(s) - 1 },
	}
	tmpl, err := template.New("seed_users").Funcs(funcMap).Parse(string(bits))
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err = tmpl.Execute(buf, input); err != nil {
		return nil, err
	}

	if _, err = lh.Conn.Exec(context.Background(), buf.String()); err != nil {
		return nil, err
	}

	return users, err
}

func (lh *LocalHelper) teardownDB() func() {
	return func() {
		defer lh.Conn.Close(context.Background())

		tearSQLpath := filepath.Join("testdata", "teardown_db.sql")
		bits, err := os.ReadFile(tearSQLpath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "DB cleanup read teardown sql: %s", err.Error())
			return
		}
		if _, err = lh.Conn.Exec(context.Background(), string(bits)); err != nil {
			fmt.Fprintf(os.Stderr, "DB cleanup exec teardown sql: %s", err.Error())
			return
		}
	}
}
