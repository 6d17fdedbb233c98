package handlers

import (
	"VeriUser/internal/certificate"
	"VeriUser/internal/config"
	"VeriUser/internal/expiry"
	"VeriUser/internal/model"
	"VeriUser/internal/service"
	"VeriUser/internal/store"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// notices — фиксированные тексты уведомлений после редиректа.
var notices = map[string]string{
	"created":          "Запись добавлена в базу данных",
	"updated":          "Запись обновлена",
	"deleted":          "Запись удалена из базы данных",
	"imported":         "База данных успешно импортирована",
	"status-added":     "Статус добавлен",
	"status-deleted":   "Статус удалён",
	"category-added":   "Категория добавлена",
	"category-deleted": "Категория удалена",
	"reason-added":     "Причина добавлена",
	"reason-deleted":   "Причина удалена",
}

// PageHandler рендерит HTML-страницы редактора и сертификатов.
type PageHandler struct {
	Records    *service.RecordService
	Registries *service.RegistryService
	Logger     *zap.SugaredLogger
	Config     *config.Config
}

// NewPageHandler создаёт хендлер HTML-страниц
func NewPageHandler(records *service.RecordService, registries *service.RegistryService, logger *zap.SugaredLogger, cfg *config.Config) *PageHandler {
	return &PageHandler{Records: records, Registries: registries, Logger: logger, Config: cfg}
}

type recordRow struct {
	model.Record
	StatusName   string
	StatusColor  string
	CategoryName string
	Created      string
	Expiry       expiry.Status
}

type indexData struct {
	Rows         []recordRow
	Total        int
	Query        string
	StatusFilter string
	Stats        service.Stats
	Statuses     []model.StatusDefinition
	Categories   []model.CategoryDefinition
	Reasons      []string
	Form         service.RecordInput
	EditID       string
	Errors       []string
	Notice       string
}

func (h *PageHandler) render(w http.ResponseWriter, status int, data indexData) {
	q, filter := data.Query, data.StatusFilter
	if filter == "" {
		filter = service.FilterAll
	}
	now := h.Records.Now()
	for _, rec := range h.Records.Filter(q, filter) {
		row := recordRow{
			Record:      rec,
			StatusName:  h.Registries.StatusName(rec.Status),
			StatusColor: h.Registries.StatusColor(rec.Status),
			Created:     certificate.FormatShortDate(rec.CreatedAt),
			Expiry:      expiry.Evaluate(rec.ExpiresAt, now),
		}
		if rec.Category != "" {
			row.CategoryName = h.Registries.CategoryName(rec.Category)
		}
		data.Rows = append(data.Rows, row)
	}
	data.StatusFilter = filter
	data.Stats = h.Records.Stats()
	data.Total = data.Stats.Total
	data.Statuses = h.Registries.Statuses()
	data.Categories = h.Registries.Categories()
	data.Reasons = h.Registries.Reasons()
	// хотя бы одно поле для патента всегда видно
	if len(data.Form.Patents) == 0 {
		data.Form.Patents = []string{""}
	}
	if data.Form.Status == "" {
		data.Form.Status = model.StatusVerified
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		h.Logger.Errorw("render index failed", "error", err)
	}
}

func redirect(w http.ResponseWriter, r *http.Request, notice string) {
	http.Redirect(w, r, "/?notice="+url.QueryEscape(notice), http.StatusSeeOther)
}

// formInput собирает RecordInput из полей HTML-формы.
func formInput(r *http.Request) service.RecordInput {
	return service.RecordInput{
		Name:           r.PostFormValue("name"),
		Username:       r.PostFormValue("username"),
		Channel:        r.PostFormValue("channel"),
		Age:            r.PostFormValue("age"),
		Category:       r.PostFormValue("category"),
		Reason:         r.PostFormValue("reason"),
		Patents:        r.PostForm["patent"],
		SocialNetworks: r.PostFormValue("socialNetworks"),
		Status:         r.PostFormValue("status"),
	}
}

func errorMessages(err error) []string {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			if strings.HasPrefix(f, "[") {
				msgs = append(msgs, "Ошибка импорта: некорректное поле "+f)
				continue
			}
			msgs = append(msgs, "Заполните поле: "+fieldTitle(f))
		}
		return msgs
	}
	if errors.Is(err, service.ErrImportParse) {
		return []string{"Ошибка импорта: некорректный файл"}
	}
	if errors.Is(err, store.ErrReservedStatus) {
		return []string{"Этот статус нельзя удалить"}
	}
	if errors.Is(err, store.ErrEmptyName) {
		return []string{"Введите название"}
	}
	return []string{"Внутренняя ошибка"}
}

func fieldTitle(f string) string {
	switch f {
	case "name":
		return "Имя (Псевдоним)"
	case "username":
		return "Username"
	case "channel":
		return "Канал/Профиль"
	case "age":
		return "Возраст (число)"
	case "patents":
		return "Патент (хотя бы один)"
	}
	return f
}

// Index GET / — форма, статистика, поиск и список записей.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.render(w, http.StatusOK, indexData{
		Query:        q.Get("q"),
		StatusFilter: q.Get("status"),
		Notice:       notices[q.Get("notice")],
	})
}

func (h *PageHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	in := formInput(r)
	if _, err := h.Records.Create(r.Context(), in); err != nil {
		h.formError(w, in, "", err)
		return
	}
	redirect(w, r, "created")
}

// EditRecord GET /records/{id}/edit — форма с данными записи.
func (h *PageHandler) EditRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := h.Records.Get(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	h.render(w, http.StatusOK, indexData{
		EditID: id,
		Form: service.RecordInput{
			Name:           rec.Name,
			Username:       rec.Username,
			Channel:        rec.Channel,
			Age:            rec.Age,
			Category:       rec.Category,
			Reason:         rec.Reason,
			Patents:        rec.Patents,
			SocialNetworks: rec.SocialNetworks,
			Status:         rec.Status,
		},
	})
}

func (h *PageHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "id")
	in := formInput(r)
	if _, err := h.Records.Update(r.Context(), id, in); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.formError(w, in, id, err)
		return
	}
	redirect(w, r, "updated")
}

func (h *PageHandler) formError(w http.ResponseWriter, in service.RecordInput, editID string, err error) {
	status := http.StatusUnprocessableEntity
	if !errors.Is(err, service.ErrValidation) {
		h.Logger.Errorw("record form: internal error", "error", err)
		status = http.StatusInternalServerError
	}
	h.render(w, status, indexData{Form: in, EditID: editID, Errors: errorMessages(err)})
}

func (h *PageHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.Records.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.Logger.Errorw("DeleteRecord: internal error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	redirect(w, r, "deleted")
}

func (h *PageHandler) writeCertificate(w http.ResponseWriter, r *http.Request, mode certificate.Mode) {
	id := chi.URLParam(r, "id")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	doc, err := h.Records.Certificate(id)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		if rerr := certificate.RenderNotFound(w, id); rerr != nil {
			h.Logger.Errorw("render not found failed", "error", rerr)
		}
		return
	}
	if err := doc.Render(w, mode); err != nil {
		h.Logger.Errorw("render certificate failed", "id", id, "error", err)
	}
}

// Certificate GET /certificate/{id} — страница сертификата по ссылке.
func (h *PageHandler) Certificate(w http.ResponseWriter, r *http.Request) {
	h.writeCertificate(w, r, certificate.ModePage)
}

// PrintCertificate GET /records/{id}/print — документ, который сразу уходит на печать.
func (h *PageHandler) PrintCertificate(w http.ResponseWriter, r *http.Request) {
	h.writeCertificate(w, r, certificate.ModePrint)
}

func (h *PageHandler) registryResult(w http.ResponseWriter, r *http.Request, err error, notice string) {
	if err != nil {
		var status int
		switch {
		case errors.Is(err, store.ErrReservedStatus):
			status = http.StatusConflict
		case errors.Is(err, store.ErrEmptyName):
			status = http.StatusUnprocessableEntity
		default:
			h.Logger.Errorw("registry update failed", "notice", notice, "error", err)
			status = http.StatusInternalServerError
		}
		h.render(w, status, indexData{Errors: errorMessages(err)})
		return
	}
	redirect(w, r, notice)
}

func (h *PageHandler) AddStatus(w http.ResponseWriter, r *http.Request) {
	_, err := h.Registries.AddStatus(r.Context(), r.PostFormValue("name"), r.PostFormValue("color"))
	h.registryResult(w, r, err, "status-added")
}

func (h *PageHandler) DeleteStatus(w http.ResponseWriter, r *http.Request) {
	err := h.Registries.RemoveStatus(r.Context(), chi.URLParam(r, "id"))
	h.registryResult(w, r, err, "status-deleted")
}

func (h *PageHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	_, err := h.Registries.AddCategory(r.Context(), r.PostFormValue("name"))
	h.registryResult(w, r, err, "category-added")
}

func (h *PageHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	err := h.Registries.RemoveCategory(r.Context(), chi.URLParam(r, "id"))
	h.registryResult(w, r, err, "category-deleted")
}

func (h *PageHandler) AddReason(w http.ResponseWriter, r *http.Request) {
	err := h.Registries.AddReason(r.Context(), r.PostFormValue("reason"))
	h.registryResult(w, r, err, "reason-added")
}

func (h *PageHandler) DeleteReason(w http.ResponseWriter, r *http.Request) {
	err := h.Registries.RemoveReason(r.Context(), r.PostFormValue("reason"))
	h.registryResult(w, r, err, "reason-deleted")
}

func (h *PageHandler) importTooLarge(w http.ResponseWriter) {
	msg := fmt.Sprintf("Файл слишком большой (максимум %d МБ)", h.Config.ImportMaxSizeMB)
	h.render(w, http.StatusRequestEntityTooLarge, indexData{Errors: []string{msg}})
}

// Import POST /import — multipart-форма с полем file.
func (h *PageHandler) Import(w http.ResponseWriter, r *http.Request) {
	limit := h.Config.ImportMaxBytes()
	if r.ContentLength > limit {
		h.Logger.Warnw("Import: file too large", "size", r.ContentLength, "limit", limit)
		h.importTooLarge(w)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	file, _, err := r.FormFile("file")
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			h.Logger.Warnw("Import: file too large", "limit", mbe.Limit)
			h.importTooLarge(w)
			return
		}
		h.Logger.Warnw("Import: missing file", "error", err)
		h.render(w, http.StatusBadRequest, indexData{Errors: []string{"Выберите файл для импорта"}})
		return
	}
	defer file.Close()

	if _, err := h.Records.Import(r.Context(), file); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			h.importTooLarge(w)
			return
		}
		status := http.StatusBadRequest
		if !errors.Is(err, service.ErrImportParse) && !errors.Is(err, service.ErrValidation) {
			status = http.StatusInternalServerError
		}
		h.render(w, status, indexData{Errors: errorMessages(err)})
		return
	}
	redirect(w, r, "imported")
}
