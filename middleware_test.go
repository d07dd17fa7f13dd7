package finapigo_test

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arhyth/finapigo"
	"github.com/arhyth/finapigo/mocks"
)

func TestValidationMWCreateUser(t *testing.T) {
	t.Run("returns error on invalid email format", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		v := finapigo.NewValidationMiddleware()(svc)

		usr, err := v.CreateUser(finapigo.CreateUserReq{
			Name:  "User Test",
			Email: "g!bberis#",
		})
		as.NotNil(err)
		as.ErrorAs(err, &finapigo.ErrBadRequest{})
		as.Nil(usr)
	})

	t.Run("returns error on an empty name", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		v := finapigo.NewValidationMiddleware()(svc)

		usr, err := v.CreateUser(finapigo.CreateUserReq{
			Name:  "   ",
			Email: "user@example.com",
		})
		as.NotNil(err)
		as.Nil(usr)
	})

	t.Run("passes a valid request through", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		v := finapigo.NewValidationMiddleware()(svc)

		svc.EXPECT().
			CreateUser(gomock.AssignableToTypeOf(finapigo.CreateUserReq{})).
			Return(&finapigo.User{Name: "User Test", Email: "user@example.com"}, nil)
		usr, err := v.CreateUser(finapigo.CreateUserReq{
			Name:  "User Test",
			Email: "user@example.com",
		})
		as.Nil(err)
		as.NotNil(usr)
	})
}

func TestValidationMWCreateStatement(t *testing.T) {
	t.Run("returns ErrInvalidAmount on a non-positive amount", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		v := finapigo.NewValidationMiddleware()(svc)

		st, err := v.CreateStatement(finapigo.CreateStatementReq{
			UserID: snowflake.ParseInt64(7241722241547767808),
			Kind:   finapigo.OpDeposit,
			Amount: decimal.NewFromInt(-10),
		})
		as.ErrorAs(err, &finapigo.ErrInvalidAmount{})
		as.Nil(st)
	})

	t.Run("returns ErrBadRequest on an unknown kind", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		v := finapigo.NewValidationMiddleware()(svc)

		st, err := v.CreateStatement(finapigo.CreateStatementReq{
			UserID: snowflake.ParseInt64(7241722241547767808),
			Kind:   finapigo.OperationType("transfer"),
			Amount: decimal.NewFromInt(10),
		})
		as.ErrorAs(err, &finapigo.ErrBadRequest{})
		as.Nil(st)
	})
}

func TestLimitMW(t *testing.T) {
	t.Run("sheds load with ErrOverCapacity when the semaphore is exhausted", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		limits := finapigo.NewServiceLimits(1, 1)
		l := finapigo.NewLimitMiddleware(limits)(svc)

		// hold the only write slot so the middleware cannot acquire it
		reqrd.Nil(limits.CreateStatement.Acquire(context.Background(), 1))
		defer limits.CreateStatement.Release(1)

		st, err := l.CreateStatement(finapigo.CreateStatementReq{
			UserID: snowflake.ParseInt64(7241722241547767808),
			Kind:   finapigo.OpDeposit,
			Amount: decimal.NewFromInt(10),
		})
		as.Nil(st)
		as.ErrorIs(err, finapigo.ErrOverCapacity)
	})

	t.Run("releases the slot after the call", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		limits := finapigo.NewServiceLimits(1, 1)
		l := finapigo.NewLimitMiddleware(limits)(svc)

		svc.EXPECT().
			Balance(gomock.AssignableToTypeOf(finapigo.BalanceReq{})).
			Return(&finapigo.BalanceResp{Balance: decimal.Zero}, nil).
			Times(2)
		for i := 0; i < 2; i++ {
			_, err := l.Balance(finapigo.BalanceReq{UserID: snowflake.ParseInt64(7241722241547767808)})
			as.Nil(err)
		}
	})
}

func TestCircuitBreakMW(t *testing.T) {
	t.Run("opens after repeated internal failures", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		brkrs := finapigo.NewServiceBreaker(gobreaker.Settings{
			Name:    "test",
			Timeout: time.Minute,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		})
		c := finapigo.NewCircuitBreakMiddleware(brkrs)(svc)

		svc.EXPECT().
			Balance(gomock.AssignableToTypeOf(finapigo.BalanceReq{})).
			Return(nil, finapigo.ErrInternalServer).
			Times(3)
		req := finapigo.BalanceReq{UserID: snowflake.ParseInt64(7241722241547767808)}
		for i := 0; i < 3; i++ {
			_, err := c.Balance(req)
			as.ErrorIs(err, finapigo.ErrInternalServer)
		}

		// breaker is open, the service is no longer reached
		_, err := c.Balance(req)
		as.ErrorIs(err, finapigo.ErrOverCapacity)
	})

	t.Run("business failures do not trip the breaker", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		brkrs := finapigo.NewServiceBreaker(gobreaker.Settings{
			Name:    "test",
			Timeout: time.Minute,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		})
		c := finapigo.NewCircuitBreakMiddleware(brkrs)(svc)

		svc.EXPECT().
			Balance(gomock.AssignableToTypeOf(finapigo.BalanceReq{})).
			Return(nil, finapigo.ErrUserNotFound{}).
			Times(5)
		req := finapigo.BalanceReq{UserID: snowflake.ParseInt64(7241722241547767808)}
		for i := 0; i < 5; i++ {
			_, err := c.Balance(req)
			as.ErrorAs(err, &finapigo.ErrUserNotFound{})
		}
	})
}
