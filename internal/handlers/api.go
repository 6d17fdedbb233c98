package handlers

import (
	"VeriUser/internal/config"
	"VeriUser/internal/model"
	"VeriUser/internal/service"
	"VeriUser/internal/store"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// APIHandler обслуживает JSON API записей и справочников.
type APIHandler struct {
	Records    *service.RecordService
	Registries *service.RegistryService
	Logger     *zap.SugaredLogger
	Config     *config.Config
}

// NewAPIHandler создаёт хендлер JSON API
func NewAPIHandler(records *service.RecordService, registries *service.RegistryService, logger *zap.SugaredLogger, cfg *config.Config) *APIHandler {
	return &APIHandler{Records: records, Registries: registries, Logger: logger, Config: cfg}
}

// ErrorResponse тело ответа с ошибкой.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// ImportResponse ответ на импорт.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// StatusRequest тело создания статуса.
type StatusRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// NameRequest тело создания категории или причины.
type NameRequest struct {
	Name string `json:"name"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fail переводит ошибку сервиса в HTTP-ответ.
func (h *APIHandler) fail(w http.ResponseWriter, op string, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Fields: ve.Fields})
	case errors.Is(err, service.ErrImportParse):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, store.ErrReservedStatus):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, store.ErrEmptyName):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Fields: []string{"name"}})
	default:
		h.Logger.Errorw(op+": internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func (h *APIHandler) decode(w http.ResponseWriter, r *http.Request, op string, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.Logger.Warnw(op+": invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request"})
		return false
	}
	return true
}

// ListRecords GET /api/records?q=&status=
func (h *APIHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, h.Records.Filter(q.Get("q"), q.Get("status")))
}

func (h *APIHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Records.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "GetRecord", err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *APIHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var in service.RecordInput
	if !h.decode(w, r, "CreateRecord", &in) {
		return
	}
	rec, err := h.Records.Create(r.Context(), in)
	if err != nil {
		h.fail(w, "CreateRecord", err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *APIHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	var in service.RecordInput
	if !h.decode(w, r, "UpdateRecord", &in) {
		return
	}
	rec, err := h.Records.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.fail(w, "UpdateRecord", err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *APIHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.Records.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, "DeleteRecord", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Certificate GET /api/records/{id}/certificate — структурированный сертификат.
func (h *APIHandler) Certificate(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Records.Certificate(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "Certificate", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *APIHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Records.Stats())
}

// Export отдаёт всю коллекцию файлом.
func (h *APIHandler) Export(w http.ResponseWriter, r *http.Request) {
	name := service.ExportFileName(h.Records.Now())
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if err := h.Records.Export(w); err != nil {
		h.Logger.Errorw("Export: write failed", "error", err)
	}
}

// Import POST /api/import — тело запроса JSON-массив записей.
func (h *APIHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Config.ImportMaxBytes())
	n, err := h.Records.Import(r.Context(), r.Body)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "payload too large"})
			return
		}
		h.fail(w, "Import", err)
		return
	}
	writeJSON(w, http.StatusOK, ImportResponse{Imported: n})
}

func (h *APIHandler) ListStatuses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Registries.Statuses())
}

func (h *APIHandler) AddStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if !h.decode(w, r, "AddStatus", &req) {
		return
	}
	def, err := h.Registries.AddStatus(r.Context(), req.Name, req.Color)
	if err != nil {
		h.fail(w, "AddStatus", err)
		return
	}
	writeJSON(w, http.StatusCreated, def)
}

func (h *APIHandler) DeleteStatus(w http.ResponseWriter, r *http.Request) {
	if err := h.Registries.RemoveStatus(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, "DeleteStatus", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	list := h.Registries.Categories()
	if list == nil {
		list = []model.CategoryDefinition{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *APIHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var req NameRequest
	if !h.decode(w, r, "AddCategory", &req) {
		return
	}
	def, err := h.Registries.AddCategory(r.Context(), req.Name)
	if err != nil {
		h.fail(w, "AddCategory", err)
		return
	}
	writeJSON(w, http.StatusCreated, def)
}

func (h *APIHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.Registries.RemoveCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, "DeleteCategory", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) ListReasons(w http.ResponseWriter, r *http.Request) {
	list := h.Registries.Reasons()
	if list == nil {
		list = []string{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *APIHandler) AddReason(w http.ResponseWriter, r *http.Request) {
	var req NameRequest
	if !h.decode(w, r, "AddReason", &req) {
		return
	}
	if err := h.Registries.AddReason(r.Context(), req.Name); err != nil {
		h.fail(w, "AddReason", err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

// DeleteReason DELETE /api/reasons?value=...
func (h *APIHandler) DeleteReason(w http.ResponseWriter, r *http.Request) {
	value := strings.TrimSpace(r.URL.Query().Get("value"))
	if value == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "missing value"})
		return
	}
	if err := h.Registries.RemoveReason(r.Context(), value); err != nil {
		h.fail(w, "DeleteReason", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
