package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/vendor-order-service/internal/domain"
	"github.com/example/vendor-order-service/internal/usecase"
)

// Server — HTTP-поверхность сервиса: список заказов, заказ в области
// видимости, проведение возврата.
type Server struct {
	Router   *mux.Router
	Log      *slog.Logger
	UCList   usecase.ListOrders
	UCGet    usecase.GetScopedOrder
	UCRefund usecase.SubmitRefund
}

func NewServer(log *slog.Logger, list usecase.ListOrders, get usecase.GetScopedOrder, refund usecase.SubmitRefund) *Server {
	s := &Server{Router: mux.NewRouter(), Log: log, UCList: list, UCGet: get, UCRefund: refund}
	s.Router.HandleFunc("/api/orders", s.handleList).Methods(http.MethodGet)
	s.Router.HandleFunc("/api/orders/{id}", s.handleGet).Methods(http.MethodGet)
	s.Router.HandleFunc("/api/orders/{id}/refund", s.handleRefund).Methods(http.MethodPost)
	s.Router.PathPrefix("/").Handler(http.FileServer(http.Dir("web")))
	return s
}

// principalFrom — почта аутентифицированного сотрудника; заголовок
// выставляет внешний слой авторизации, здесь он только читается.
func principalFrom(r *http.Request) domain.Principal {
	return domain.Principal{Email: r.Header.Get("X-Staff-Email")}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.UCList.Execute(r.Context(), principalFrom(r), r.URL.Query().Get("vendor"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"orders": summaries})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	scoped, err := s.UCGet.Execute(r.Context(), id, principalFrom(r), r.URL.Query().Get("vendor"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, scoped)
}

type refundRequest struct {
	Items map[string]int `json:"items"`
	Note  string         `json:"note"`
}

func (s *Server) handleRefund(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req refundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	receipt, err := s.UCRefund.Execute(r.Context(), id, principalFrom(r), domain.RefundDraft(req.Items), req.Note)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, receipt)
}

// writeError — отображение доменных ошибок в статусы. Нарушение доступа
// отвечает 403, а не 404: «нельзя видеть» и «не существует» различаются
// до самого клиента.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var rejected *domain.UpstreamRejectionError
	switch {
	case errors.As(err, &rejected):
		respondJSON(w, http.StatusConflict, map[string]any{"error": "refund rejected", "reasons": rejected.Reasons})
	case errors.Is(err, domain.ErrForbidden):
		writeErrorMessage(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeErrorMessage(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrEmptyRefund),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrMalformed):
		writeErrorMessage(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.Log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeErrorMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func writeErrorMessage(w http.ResponseWriter, code int, msg string) {
	respondJSON(w, code, map[string]string{"error": msg})
}

func respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
