package finapigo

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/semaphore"
)

type Middleware func(Service) Service

//
// Validation middleware
//

// validationMiddleware rejects malformed requests before they reach the
// service proper: non-positive amounts, kinds outside the closed set,
// users with unusable names/emails. The service repeats the cheap checks
// itself so that embedding callers bypassing the middleware chain still
// cannot write an invalid statement.
type validationMiddleware struct {
	next Service
}

var (
	_ Service = (*validationMiddleware)(nil)
)

func NewValidationMiddleware() Middleware {
	return func(svc Service) Service {
		return &validationMiddleware{next: svc}
	}
}

func (v *validationMiddleware) CreateUser(req CreateUserReq) (*User, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "must not be empty"
	}
	if !strings.Contains(req.Email, "@") {
		fields["email"] = "invalid format"
	}
	if len(fields) > 0 {
		return nil, ErrBadRequest{Fields: fields}
	}
	return v.next.CreateUser(req)
}

func (v *validationMiddleware) CreateStatement(req CreateStatementReq) (*Statement, error) {
	if !req.Kind.Valid() {
		return nil, ErrBadRequest{Fields: map[string]string{"kind": "must be deposit or withdraw"}}
	}
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount{Amount: req.Amount}
	}
	return v.next.CreateStatement(req)
}

func (v *validationMiddleware) Balance(req BalanceReq) (*BalanceResp, error) {
	return v.next.Balance(req)
}

func (v *validationMiddleware) StatementOperation(req StatementOpReq) (*Statement, error) {
	return v.next.StatementOperation(req)
}

func (v *validationMiddleware) StatementReport(w io.Writer, req BalanceReq) error {
	return v.next.StatementReport(w, req)
}

//
// Rate limiting middlewares
//

// limitAcquireTimeout bounds how long a request waits for a slot before
// being shed with ErrOverCapacity.
const limitAcquireTimeout = 2 * time.Second

// limitMiddleware limits the number of in-flight requests to the service by using
// a weighted semaphore, i.e., x/sync/semaphore.Semaphore with an acquisition timeout.
// As limits are static and servers may be deployed to a heterogeneous set of machines,
// hence, having to manually tune limits for each server, this solution is something
// likely implemented very differently in a real-world application, but it is a good
// example of load shedding.
type limitMiddleware struct {
	next   Service
	limits *ServiceLimits
}

var (
	_ Service = (*limitMiddleware)(nil)
)

type ServiceLimits struct {
	CreateUser         *semaphore.Weighted
	CreateStatement    *semaphore.Weighted
	Balance            *semaphore.Weighted
	StatementOperation *semaphore.Weighted
	StatementReport    *semaphore.Weighted
}

func NewServiceLimits(write, read int64) *ServiceLimits {
	return &ServiceLimits{
		CreateUser:         semaphore.NewWeighted(write),
		CreateStatement:    semaphore.NewWeighted(write),
		Balance:            semaphore.NewWeighted(read),
		StatementOperation: semaphore.NewWeighted(read),
		StatementReport:    semaphore.NewWeighted(read),
	}
}

func NewLimitMiddleware(limits *ServiceLimits) Middleware {
	return func(next Service) Service {
		return &limitMiddleware{
			next:   next,
			limits: limits,
		}
	}
}

func acquire(sem *semaphore.Weighted) (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), limitAcquireTimeout)
	defer cancel()
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, ErrOverCapacity
	}
	return func() { sem.Release(1) }, nil
}

func (l *limitMiddleware) CreateUser(req CreateUserReq) (*User, error) {
	release, err := acquire(l.limits.CreateUser)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.CreateUser(req)
}

func (l *limitMiddleware) CreateStatement(req CreateStatementReq) (*Statement, error) {
	release, err := acquire(l.limits.CreateStatement)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.CreateStatement(req)
}

func (l *limitMiddleware) Balance(req BalanceReq) (*BalanceResp, error) {
	release, err := acquire(l.limits.Balance)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.Balance(req)
}

func (l *limitMiddleware) StatementOperation(req StatementOpReq) (*Statement, error) {
	release, err := acquire(l.limits.StatementOperation)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.StatementOperation(req)
}

func (l *limitMiddleware) StatementReport(w io.Writer, req BalanceReq) error {
	release, err := acquire(l.limits.StatementReport)
	if err != nil {
		return err
	}
	defer release()
	return l.next.StatementReport(w, req)
}

type ServiceBreaker struct {
	CreateUser         *gobreaker.TwoStepCircuitBreaker[*User]
	CreateStatement    *gobreaker.TwoStepCircuitBreaker[*Statement]
	Balance            *gobreaker.TwoStepCircuitBreaker[*BalanceResp]
	StatementOperation *gobreaker.TwoStepCircuitBreaker[*Statement]
	StatementReport    *gobreaker.TwoStepCircuitBreaker[interface{}]
}

func NewServiceBreaker(st gobreaker.Settings) *ServiceBreaker {
	return &ServiceBreaker{
		CreateUser:         gobreaker.NewTwoStepCircuitBreaker[*User](st),
		CreateStatement:    gobreaker.NewTwoStepCircuitBreaker[*Statement](st),
		Balance:            gobreaker.NewTwoStepCircuitBreaker[*BalanceResp](st),
		StatementOperation: gobreaker.NewTwoStepCircuitBreaker[*Statement](st),
		StatementReport:    gobreaker.NewTwoStepCircuitBreaker[interface{}](st),
	}
}

// circuitBreakMiddleware is a middleware that implements the circuit breaker pattern.
// It works in conjunction with limitMiddleware to limit the number of in-flight
// requests to the service when the circuit is not in `closed` state, i.e., the service
// is experiencing heavy load and is struggling to release tokens from the limit
// semaphores within request deadline. Business failures (not found, insufficient
// funds, invalid input) never trip the breaker.
type circuitBreakMiddleware struct {
	next  Service
	brkrs *ServiceBreaker
}

var (
	_ Service = (*circuitBreakMiddleware)(nil)
)

func NewCircuitBreakMiddleware(brkrs *ServiceBreaker) Middleware {
	return func(next Service) Service {
		return &circuitBreakMiddleware{
			next:  next,
			brkrs: brkrs,
		}
	}
}

// breakerSuccess reports whether err should count as a healthy call.
func breakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	return !errors.Is(err, ErrInternalServer) && !errors.Is(err, ErrOverCapacity)
}

func (c *circuitBreakMiddleware) CreateUser(req CreateUserReq) (*User, error) {
	done, err := c.brkrs.CreateUser.Allow()
	if err != nil {
		return nil, ErrOverCapacity
	}
	usr, err := c.next.CreateUser(req)
	done(breakerSuccess(err))
	return usr, err
}

func (c *circuitBreakMiddleware) CreateStatement(req CreateStatementReq) (*Statement, error) {
	done, err := c.brkrs.CreateStatement.Allow()
	if err != nil {
		return nil, ErrOverCapacity
	}
	st, err := c.next.CreateStatement(req)
	done(breakerSuccess(err))
	return st, err
}

func (c *circuitBreakMiddleware) Balance(req BalanceReq) (*BalanceResp, error) {
	done, err := c.brkrs.Balance.Allow()
	if err != nil {
		return nil, ErrOverCapacity
	}
	resp, err := c.next.Balance(req)
	done(breakerSuccess(err))
	return resp, err
}

func (c *circuitBreakMiddleware) StatementOperation(req StatementOpReq) (*Statement, error) {
	done, err := c.brkrs.StatementOperation.Allow()
	if err != nil {
		return nil, ErrOverCapacity
	}
	st, err := c.next.StatementOperation(req)
	done(breakerSuccess(err))
	return st, err
}

func (c *circuitBreakMiddleware) StatementReport(w io.Writer, req BalanceReq) error {
	done, err := c.brkrs.StatementReport.Allow()
	if err != nil {
		return ErrOverCapacity
	}
	err = c.next.StatementReport(w, req)
	done(breakerSuccess(err))
	return err
}
