package finapigo

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	pgInsertUserSQL = `
		INSERT INTO users (id, name, email, created_at)
		VALUES ($1, $2, $3, $4);
	`

	pgSelectUserSQL = `
		SELECT name, email, created_at
		FROM users
		WHERE id = $1;
	`

	pgLockUserSQL = `
		SELECT id
		FROM users
		WHERE id = $1
		FOR UPDATE;
	`

	pgInsertStatementSQL = `
		INSERT INTO statements (id, user_id, kind, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	pgSelectStatementSQL = `
		SELECT user_id, kind, amount, description, created_at
		FROM statements
		WHERE id = $1;
	`

	pgListStatementsSQL = `
		SELECT id, kind, amount, description, created_at
		FROM statements
		WHERE user_id = $1
		ORDER BY created_at;
	`
)

type PostgresEndpoint struct {
	pool *pgxpool.Pool
	log  *zerolog.Logger
}

var (
	_ Repository = (*PostgresEndpoint)(nil)
)

func NewPostgresEndpoint(connStr string, log *zerolog.Logger) (*PostgresEndpoint, error) {
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	if err = pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	endpt := &PostgresEndpoint{
		pool: pool,
		log:  log,
	}
	return endpt, err
}

func (pg *PostgresEndpoint) CreateUser(usr User) error {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, pgInsertUserSQL, usr.ID.Int64(), usr.Name, usr.Email, usr.CreatedAt)
	return err
}

func (pg *PostgresEndpoint) GetUser(id snowflake.ID) (*User, error) {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	usr := User{ID: id}
	row := conn.QueryRow(ctx, pgSelectUserSQL, id.Int64())
	if err = row.Scan(&usr.Name, &usr.Email, &usr.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound{ID: id}
		}
		return nil, err
	}
	return &usr, nil
}

func (pg *PostgresEndpoint) InsertStatement(st Statement) (*Statement, error) {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	if _, err = conn.Exec(ctx, pgInsertStatementSQL,
		st.ID.Int64(), st.UserID.Int64(), string(st.Kind), st.Amount, st.Description, st.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &st, nil
}

func (pg *PostgresEndpoint) GetStatement(id snowflake.ID) (*Statement, error) {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, pgSelectStatementSQL, id.Int64())
	st, err := scanStatement(row, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrStatementNotFound{ID: id}
		}
		return nil, err
	}
	return st, nil
}

func (pg *PostgresEndpoint) ListStatements(userID snowflake.ID) ([]Statement, error) {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, pgListStatementsSQL, userID.Int64())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sts []Statement
	for rows.Next() {
		var (
			rid   int64
			rkind string
			ramt  decimal.Decimal
			rdesc string
			rts   time.Time
		)
		if err = rows.Scan(&rid, &rkind, &ramt, &rdesc, &rts); err != nil {
			return nil, err
		}
		sts = append(sts, Statement{
			ID:          snowflake.ParseInt64(rid),
			UserID:      userID,
			Kind:        OperationType(rkind),
			Amount:      ramt,
			Description: rdesc,
			CreatedAt:   rts,
		})
	}
	return sts, rows.Err()
}

// InsertStatementGuarded runs the check and the insert inside one
// transaction holding the user's row lock, so concurrent withdrawals for
// the same user queue up behind each other.
func (pg *PostgresEndpoint) InsertStatementGuarded(st Statement, check func(current []Statement) error) (*Statement, error) {
	ctx := context.Background()
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(ctx); rerr != nil && rerr != pgx.ErrTxClosed {
				pg.log.Err(rerr).Int64("statement_id", st.ID.Int64()).Msg("transaction rollback fail")
			}
		}
	}()

	var locked int64
	row := tx.QueryRow(ctx, pgLockUserSQL, st.UserID.Int64())
	if err = row.Scan(&locked); err != nil {
		if err == pgx.ErrNoRows {
			err = ErrUserNotFound{ID: st.UserID}
		}
		return nil, err
	}

	rows, err := tx.Query(ctx, pgListStatementsSQL, st.UserID.Int64())
	if err != nil {
		return nil, err
	}
	var current []Statement
	for rows.Next() {
		var (
			rid   int64
			rkind string
			ramt  decimal.Decimal
			rdesc string
			rts   time.Time
		)
		if err = rows.Scan(&rid, &rkind, &ramt, &rdesc, &rts); err != nil {
			rows.Close()
			return nil, err
		}
		current = append(current, Statement{
			ID:          snowflake.ParseInt64(rid),
			UserID:      st.UserID,
			Kind:        OperationType(rkind),
			Amount:      ramt,
			Description: rdesc,
			CreatedAt:   rts,
		})
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = check(current); err != nil {
		return nil, err
	}

	if _, err = tx.Exec(ctx, pgInsertStatementSQL,
		st.ID.Int64(), st.UserID.Int64(), string(st.Kind), st.Amount, st.Description, st.CreatedAt,
	); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &st, nil
}

type pgRow interface {
	Scan(dest ...any) error
}

func scanStatement(row pgRow, id snowflake.ID) (*Statement, error) {
	var (
		ruser int64
		rkind string
		ramt  decimal.Decimal
		rdesc string
		rts   time.Time
	)
	if err := row.Scan(&ruser, &rkind, &ramt, &rdesc, &rts); err != nil {
		return nil, err
	}
	return &Statement{
		ID:          id,
		UserID:      snowflake.ParseInt64(ruser),
		Kind:        OperationType(rkind),
		Amount:      ramt,
		Description: rdesc,
		CreatedAt:   rts,
	}, nil
}
