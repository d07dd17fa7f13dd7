package finapigo

import (
	"io"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type OperationType string

const (
	OpDeposit  OperationType = "deposit"
	OpWithdraw OperationType = "withdraw"
)

func (t OperationType) Valid() bool {
	return t == OpDeposit || t == OpWithdraw
}

type User struct {
	ID        snowflake.ID `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	CreatedAt time.Time    `json:"created_at"`
}

// Statement is a single ledger entry. It is immutable once stored;
// balances are always derived from the full list, never kept alongside.
type Statement struct {
	ID          snowflake.ID    `json:"id"`
	UserID      snowflake.ID    `json:"user_id"`
	Kind        OperationType   `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

type CreateUserReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateStatementReq struct {
	UserID      snowflake.ID
	Kind        OperationType
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type BalanceReq struct {
	UserID snowflake.ID
}

type StatementOpReq struct {
	UserID      snowflake.ID
	StatementID snowflake.ID
}

type BalanceResp struct {
	Balance   decimal.Decimal `json:"balance"`
	Statement []Statement     `json:"statement"`
}

type Service interface {
	CreateUser(CreateUserReq) (*User, error)
	CreateStatement(CreateStatementReq) (*Statement, error)
	Balance(BalanceReq) (*BalanceResp, error)
	StatementOperation(StatementOpReq) (*Statement, error)
	StatementReport(io.Writer, BalanceReq) error
}

func NewService(users UserDirectory, stmts StatementStore, log *zerolog.Logger) (*serviceImpl, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, err
	}
	return &serviceImpl{
		users: users,
		stmts: stmts,
		node:  node,
		log:   log,
	}, nil
}

type serviceImpl struct {
	users UserDirectory
	stmts StatementStore
	node  *snowflake.Node
	log   *zerolog.Logger
}

func (s *serviceImpl) CreateUser(req CreateUserReq) (*User, error) {
	usr := User{
		ID:        s.node.Generate(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.CreateUser(usr); err != nil {
		return nil, err
	}
	return &usr, nil
}

// CreateStatement records a deposit or withdrawal. Every call re-resolves
// the user; an identity cached by a caller is never trusted. For withdrawals
// the sufficiency check runs inside the store's per-user guard so that two
// concurrent withdrawals cannot both pass against a stale balance.
func (s *serviceImpl) CreateStatement(req CreateStatementReq) (*Statement, error) {
	if !req.Kind.Valid() {
		return nil, ErrBadRequest{Fields: map[string]string{"kind": "must be deposit or withdraw"}}
	}
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount{Amount: req.Amount}
	}
	if _, err := s.users.GetUser(req.UserID); err != nil {
		return nil, err
	}

	st := Statement{
		ID:          s.node.Generate(),
		UserID:      req.UserID,
		Kind:        req.Kind,
		Amount:      req.Amount,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if req.Kind == OpDeposit {
		return s.stmts.InsertStatement(st)
	}

	return s.stmts.InsertStatementGuarded(st, func(current []Statement) error {
		bal, err := ComputeBalance(current)
		if err != nil {
			s.log.Err(err).Int64("user_id", req.UserID.Int64()).Msg("corrupt statement history")
			return ErrInternalServer
		}
		if bal.LessThan(req.Amount) {
			return ErrInsufficientFunds{Balance: bal, Amount: req.Amount}
		}
		return nil
	})
}

func (s *serviceImpl) Balance(req BalanceReq) (*BalanceResp, error) {
	if _, err := s.users.GetUser(req.UserID); err != nil {
		return nil, err
	}
	sts, err := s.stmts.ListStatements(req.UserID)
	if err != nil {
		return nil, err
	}
	bal, err := ComputeBalance(sts)
	if err != nil {
		s.log.Err(err).Int64("user_id", req.UserID.Int64()).Msg("corrupt statement history")
		return nil, ErrInternalServer
	}
	return &BalanceResp{Balance: bal, Statement: sts}, nil
}

func (s *serviceImpl) StatementOperation(req StatementOpReq) (*Statement, error) {
	if _, err := s.users.GetUser(req.UserID); err != nil {
		return nil, err
	}
	st, err := s.stmts.GetStatement(req.StatementID)
	if err != nil {
		return nil, err
	}
	// a statement owned by someone else is reported as absent
	if st.UserID != req.UserID {
		return nil, ErrStatementNotFound{ID: req.StatementID}
	}
	return st, nil
}

func (s *serviceImpl) StatementReport(w io.Writer, req BalanceReq) error {
	usr, err := s.users.GetUser(req.UserID)
	if err != nil {
		return err
	}
	sts, err := s.stmts.ListStatements(req.UserID)
	if err != nil {
		return err
	}
	bal, err := ComputeBalance(sts)
	if err != nil {
		s.log.Err(err).Int64("user_id", req.UserID.Int64()).Msg("corrupt statement history")
		return ErrInternalServer
	}
	return writeStatementPDF(w, usr, sts, bal)
}
