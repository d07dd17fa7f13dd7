package finapigo

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type chargeJSONReq struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func NewHTTPHandler(svc Service, log *zerolog.Logger) http.Handler {
	hndlr := &httpHandler{
		Svc: svc,
		Log: log,
	}
	mux := chi.NewMux()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	mux.NotFound(HTTPNotFound)
	mux.Route("/users", func(r chi.Router) {
		r.Post("/", hndlr.CreateUser)
		r.Route("/{userID:[0-9]+}", func(rr chi.Router) {
			rr.Post("/deposit", hndlr.Deposit)
			rr.Post("/withdraw", hndlr.Withdraw)
			rr.Get("/balance", hndlr.Balance)
			rr.Get("/statement", hndlr.StatementReport)
			rr.Get("/statements/{stmtID:[0-9]+}", hndlr.StatementOperation)
		})
	})

	return mux
}

type httpHandler struct {
	Svc Service
	Log *zerolog.Logger
}

func (h *httpHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	buf, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		h.Log.Err(err).Str("method", "create_user").Msg("error reading HTTP request")
		WriteHTTPError(w, ErrInternalServer)
		return
	}
	var req CreateUserReq
	if err = json.Unmarshal(buf, &req); err != nil {
		h.Log.Err(err).Str("method", "create_user").Msg("error unmarshalling JSON")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"request body": "malformed JSON"}})
		return
	}
	if req.Name == "" || req.Email == "" {
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"name/email": "must not be empty"}})
		return
	}
	usr, err := h.Svc.CreateUser(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(usr); err != nil {
		h.Log.Err(err).Str("method", "create_user").Msg("error encoding response")
	}
}

func (h *httpHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.createStatement(w, r, OpDeposit)
}

func (h *httpHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.createStatement(w, r, OpWithdraw)
}

func (h *httpHandler) createStatement(w http.ResponseWriter, r *http.Request, kind OperationType) {
	buf, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		h.Log.Err(err).Str("method", string(kind)).Msg("error reading HTTP request")
		WriteHTTPError(w, ErrInternalServer)
		return
	}
	var body chargeJSONReq
	if err = json.Unmarshal(buf, &body); err != nil {
		h.Log.Err(err).Str("method", string(kind)).Msg("error unmarshalling JSON")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"request body": "malformed JSON"}})
		return
	}
	pid := chi.URLParam(r, "userID")
	userID, err := snowflake.ParseString(pid)
	if err != nil {
		h.Log.Err(err).Str("method", string(kind)).Msg("error parsing user ID")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"userID": "invalid format"}})
		return
	}
	st, err := h.Svc.CreateStatement(CreateStatementReq{
		UserID:      userID,
		Kind:        kind,
		Amount:      body.Amount,
		Description: body.Description,
	})
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(st); err != nil {
		h.Log.Err(err).Str("method", string(kind)).Msg("error encoding response")
	}
}

func (h *httpHandler) Balance(w http.ResponseWriter, r *http.Request) {
	pid := chi.URLParam(r, "userID")
	userID, err := snowflake.ParseString(pid)
	if err != nil {
		h.Log.Err(err).Str("method", "balance").Msg("error parsing user ID")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"userID": "invalid format"}})
		return
	}
	resp, err := h.Svc.Balance(BalanceReq{UserID: userID})
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		h.Log.Err(err).Str("method", "balance").Msg("error encoding response")
	}
}

func (h *httpHandler) StatementOperation(w http.ResponseWriter, r *http.Request) {
	userID, err := snowflake.ParseString(chi.URLParam(r, "userID"))
	if err != nil {
		h.Log.Err(err).Str("method", "statement_operation").Msg("error parsing user ID")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"userID": "invalid format"}})
		return
	}
	stmtID, err := snowflake.ParseString(chi.URLParam(r, "stmtID"))
	if err != nil {
		h.Log.Err(err).Str("method", "statement_operation").Msg("error parsing statement ID")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"stmtID": "invalid format"}})
		return
	}
	st, err := h.Svc.StatementOperation(StatementOpReq{UserID: userID, StatementID: stmtID})
	if err != nil {
		WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(st); err != nil {
		h.Log.Err(err).Str("method", "statement_operation").Msg("error encoding response")
	}
}

func (h *httpHandler) StatementReport(w http.ResponseWriter, r *http.Request) {
	userID, err := snowflake.ParseString(chi.URLParam(r, "userID"))
	if err != nil {
		h.Log.Err(err).Str("method", "statement_report").Msg("error parsing user ID")
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"userID": "invalid format"}})
		return
	}
	// render into a buffer first so failures can still map to a status code
	buf := new(bytes.Buffer)
	if err = h.Svc.StatementReport(buf, BalanceReq{UserID: userID}); err != nil {
		WriteHTTPError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	if _, err = w.Write(buf.Bytes()); err != nil {
		h.Log.Err(err).Str("method", "statement_report").Msg("error writing statement report")
	}
}

func WriteHTTPError(w http.ResponseWriter, err error) {
	var ne error
	defer func() {
		if ne != nil {
			log.Error().
				Err(ne).
				Msg("error response encoding failed")
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	errunf := &ErrUserNotFound{}
	errsnf := &ErrStatementNotFound{}
	errinv := &ErrInvalidAmount{}
	errisf := &ErrInsufficientFunds{}
	errbr := &ErrBadRequest{}
	switch {
	case errors.As(err, errunf):
		w.WriteHeader(http.StatusNotFound)
		ne = json.NewEncoder(w).Encode(map[string]string{"message": errunf.Error()})
	case errors.As(err, errsnf):
		w.WriteHeader(http.StatusNotFound)
		ne = json.NewEncoder(w).Encode(map[string]string{"message": errsnf.Error()})
	case errors.As(err, errinv):
		w.WriteHeader(http.StatusBadRequest)
		ne = json.NewEncoder(w).Encode(map[string]string{"message": errinv.Error()})
	case errors.As(err, errisf):
		w.WriteHeader(http.StatusBadRequest)
		ne = json.NewEncoder(w).Encode(map[string]string{"message": errisf.Error()})
	case errors.As(err, errbr):
		w.WriteHeader(http.StatusBadRequest)
		ne = json.NewEncoder(w).Encode(errbr)
	case errors.Is(err, ErrOverCapacity):
		w.WriteHeader(http.StatusServiceUnavailable)
		ne = json.NewEncoder(w).Encode(map[string]string{"message": ErrOverCapacity.Error()})
	default:
		w.WriteHeader(http.StatusInternalServerError)
		ne = json.NewEncoder(w).Encode(map[string]string{"message": "server error"})
	}
}

func HTTPNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"path": r.URL.Path})
}
