package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/example/product-service/internal/domain"
	"github.com/example/product-service/internal/usecase"
)

// Usecases — операции оркестратора, обслуживаемые сервером.
type Usecases struct {
	List          usecase.ListProducts
	Get           usecase.GetProductByID
	NotifyName    usecase.NotifyProductName
	NotifyProduct usecase.NotifyProduct
	Create        usecase.CreateProduct
	Update        usecase.UpdateProduct
	Delete        usecase.DeleteProduct
}

type Server struct {
	Router *mux.Router
	uc     Usecases
}

func NewServer(uc Usecases) *Server {
	s := &Server{Router: mux.NewRouter(), uc: uc}
	s.Router.HandleFunc("/product", s.handleList).Methods(http.MethodGet)
	s.Router.HandleFunc("/product/message", s.handleNotifyName).Methods(http.MethodPost)
	s.Router.HandleFunc("/product/message/product", s.handleNotifyProduct).Methods(http.MethodPost)
	s.Router.HandleFunc("/product/create", s.handleCreate).Methods(http.MethodPost)
	s.Router.HandleFunc("/product/update/{id}", s.handleUpdate).Methods(http.MethodPatch)
	s.Router.HandleFunc("/product/remove/{id}", s.handleDelete).Methods(http.MethodDelete)
	s.Router.HandleFunc("/product/{id}", s.handleGet).Methods(http.MethodGet)
	return s
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.uc.List.Execute(r.Context()))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	writeResult(w, s.uc.Get.Execute(r.Context(), id))
}

func (s *Server) handleNotifyName(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "cannot read body", http.StatusBadRequest)
		return
	}
	writeResult(w, s.uc.NotifyName.Execute(string(body)))
}

func (s *Server) handleNotifyProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeProduct(w, r)
	if !ok {
		return
	}
	writeResult(w, s.uc.NotifyProduct.Execute(p))
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeProduct(w, r)
	if !ok {
		return
	}
	writeResult(w, s.uc.Create.Execute(r.Context(), p))
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	p, ok := decodeProduct(w, r)
	if !ok {
		return
	}
	writeResult(w, s.uc.Update.Execute(r.Context(), id, p))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	writeResult(w, s.uc.Delete.Execute(r.Context(), id))
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

// decodeProduct читает товар из тела запроса; тело "null" даёт nil,
// дальше его отбрасывает оркестратор.
func decodeProduct(w http.ResponseWriter, r *http.Request) (*domain.Product, bool) {
	var p *domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid product payload", http.StatusBadRequest)
		return nil, false
	}
	return p, true
}

// writeResult — единственное место отображения исходов на HTTP-статусы.
func writeResult(w http.ResponseWriter, res usecase.Result) {
	switch res.Kind() {
	case usecase.KindOk:
		if list, ok := res.Products(); ok {
			writeJSON(w, http.StatusOK, list)
			return
		}
		if p, ok := res.Product(); ok {
			writeJSON(w, http.StatusOK, p)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(res.Message()))
	case usecase.KindCreated:
		p, _ := res.Product()
		writeJSON(w, http.StatusCreated, p)
	case usecase.KindNotFound:
		http.Error(w, res.Message(), http.StatusNotFound)
	case usecase.KindBadRequest:
		http.Error(w, res.Message(), http.StatusBadRequest)
	case usecase.KindInternal:
		// причина уже в логах, клиенту не раскрывается
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
