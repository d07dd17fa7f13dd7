package finapigo_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/finapigo"
)

var (
	testDBConnStr string
)

func init() {
	testDBConnStr = os.Getenv("TEST_DB_CONN_STR")
}

func TestPostgres(t *testing.T) {
	if testDBConnStr == "" {
		t.Skip("TEST_DB_CONN_STR not set")
	}
	as := assert.New(t)
	reqrd := require.New(t)

	conn, teardown, err := initDB()
	reqrd.Nil(err)
	t.Cleanup(teardown)
	node, err := snowflake.NewNode(111)
	reqrd.Nil(err)

	nooplog := zerolog.Nop()
	endpt, err := finapigo.NewPostgresEndpoint(testDBConnStr, &nooplog)
	reqrd.Nil(err)

	usr := finapigo.User{
		ID:        node.Generate(),
		Name:      "User Test",
		Email:     "user@postgres.test",
		CreatedAt: time.Now().UTC(),
	}
	reqrd.Nil(endpt.CreateUser(usr))

	t.Run("GetUser", func(tt *testing.T) {
		got, err := endpt.GetUser(usr.ID)
		reqrd.Nil(err)
		as.Equal(usr.Email, got.Email)

		_, err = endpt.GetUser(node.Generate())
		as.ErrorAs(err, &finapigo.ErrUserNotFound{})
	})

	t.Run("InsertStatement and ListStatements", func(tt *testing.T) {
		dep := finapigo.Statement{
			ID:          node.Generate(),
			UserID:      usr.ID,
			Kind:        finapigo.OpDeposit,
			Amount:      decimal.New(123, -1),
			Description: "Deposit Test",
			CreatedAt:   time.Now().UTC(),
		}
		_, err := endpt.InsertStatement(dep)
		as.Nil(err)

		sts, err := endpt.ListStatements(usr.ID)
		reqrd.Nil(err)
		reqrd.Len(sts, 1)
		as.True(sts[0].Amount.Equal(dep.Amount), "got %s", sts[0].Amount)

		got, err := endpt.GetStatement(dep.ID)
		reqrd.Nil(err)
		as.Equal(usr.ID, got.UserID)

		// the row really landed, per a connection independent of the pool
		var cnt int
		err = conn.QueryRow(
			context.Background(),
			"SELECT count(*) FROM statements WHERE user_id = $1",
			usr.ID.Int64(),
		).Scan(&cnt)
		reqrd.Nil(err)
		as.Equal(1, cnt)
	})

	t.Run("InsertStatementGuarded enforces the check", func(tt *testing.T) {
		wd := finapigo.Statement{
			ID:        node.Generate(),
			UserID:    usr.ID,
			Kind:      finapigo.OpWithdraw,
			Amount:    decimal.NewFromInt(1000),
			CreatedAt: time.Now().UTC(),
		}
		_, err := endpt.InsertStatementGuarded(wd, func(current []finapigo.Statement) error {
			bal, err := finapigo.ComputeBalance(current)
			if err != nil {
				return err
			}
			if bal.LessThan(wd.Amount) {
				return finapigo.ErrInsufficientFunds{Balance: bal, Amount: wd.Amount}
			}
			return nil
		})
		as.ErrorAs(err, &finapigo.ErrInsufficientFunds{})

		sts, err := endpt.ListStatements(usr.ID)
		reqrd.Nil(err)
		as.Len(sts, 1)
	})

	t.Run("InsertStatementGuarded fails for an unknown user", func(tt *testing.T) {
		ghost := finapigo.Statement{
			ID:        node.Generate(),
			UserID:    node.Generate(),
			Kind:      finapigo.OpWithdraw,
			Amount:    decimal.NewFromInt(1),
			CreatedAt: time.Now().UTC(),
		}
		_, err := endpt.InsertStatementGuarded(ghost, func([]finapigo.Statement) error {
			return nil
		})
		as.ErrorAs(err, &finapigo.ErrUserNotFound{})
	})
}

func initDB() (*pgx.Conn, func(), error) {
	conn, err := pgx.Connect(context.Background(), testDBConnStr)
	if err != nil {
		return nil, nil, err
	}
	initSQLpath := filepath.Join("testdata", "init_db.sql")
	bits, err := os.ReadFile(initSQLpath)
	if err != nil {
		return conn, nil, err
	}
	if _, err = conn.Exec(context.Background(), string(bits)); err != nil {
		return conn, nil, err
	}
	return conn, teardownDB(conn), err
}

func teardownDB(conn *pgx.Conn) func() {
	return func() {
		defer conn.Close(context.Background())

		tearSQLpath := filepath.Join("testdata", "teardown_db.sql")
		bits, err := os.ReadFile(tearSQLpath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "DB cleanup read teardown sql: %s", err.Error())
			return
		}
		if _, err = conn.Exec(context.Background(), string(bits)); err != nil {
			fmt.Fprintf(os.Stderr, "DB cleanup exec teardown sql: %s", err.Error())
			return
		}
	}
}
