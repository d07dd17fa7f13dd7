package finapigo

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

var (
	ErrInternalServer = errors.New("internal server error")
	ErrOverCapacity   = errors.New("service over capacity")
)

type ErrBadRequest struct {
	Fields map[string]string `json:"fields"`
}

func (e ErrBadRequest) Error() string {
	return fmt.Sprintf("missing/invalid params: %v", e.Fields)
}

type ErrUserNotFound struct {
	ID snowflake.ID `json:"id"`
}

func (e ErrUserNotFound) Error() string {
	return "user not found"
}

// ErrStatementNotFound covers both an absent statement and a statement
// owned by a different user; callers cannot tell the two apart.
type ErrStatementNotFound struct {
	ID snowflake.ID `json:"id"`
}

func (e ErrStatementNotFound) Error() string {
	return "statement not found"
}

type ErrInvalidAmount struct {
	Amount decimal.Decimal `json:"amount"`
}

func (e ErrInvalidAmount) Error() string {
	return fmt.Sprintf("invalid amount: %s", e.Amount)
}

type ErrInsufficientFunds struct {
	Balance decimal.Decimal `json:"balance"`
	Amount  decimal.Decimal `json:"amount"`
}

func (e ErrInsufficientFunds) Error() string {
	return fmt.Sprintf("insufficient funds: balance %s, withdrawal %s", e.Balance, e.Amount)
}
