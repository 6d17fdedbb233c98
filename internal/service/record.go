package service

import (
	"VeriUser/internal/certificate"
	"VeriUser/internal/model"
	"VeriUser/internal/store"
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FilterAll значение фильтра по статусу «все записи».
const FilterAll = "all"

// RecordInput — данные формы создания/редактирования записи.
type RecordInput struct {
	Name           string   `json:"name" validate:"required"`
	Username       string   `json:"username" validate:"required"`
	Channel        string   `json:"channel" validate:"required"`
	Age            string   `json:"age" validate:"required,number"`
	Category       string   `json:"category"`
	Reason         string   `json:"reason"`
	Patents        []string `json:"patents" validate:"min=1,dive,required"`
	SocialNetworks string   `json:"socialNetworks"`
	Status         string   `json:"status"`
}

// normalize обрезает пробелы, убирает @ у username и пустые патенты.
func (in RecordInput) normalize() RecordInput {
	out := RecordInput{
		Name:           strings.TrimSpace(in.Name),
		Username:       strings.TrimPrefix(strings.TrimSpace(in.Username), "@"),
		Channel:        strings.TrimSpace(in.Channel),
		Age:            strings.TrimSpace(in.Age),
		Category:       strings.TrimSpace(in.Category),
		Reason:         strings.TrimSpace(in.Reason),
		SocialNetworks: strings.TrimSpace(in.SocialNetworks),
		Status:         strings.TrimSpace(in.Status),
		Patents:        make([]string, 0, len(in.Patents)),
	}
	for _, p := range in.Patents {
		if p = strings.TrimSpace(p); p != "" {
			out.Patents = append(out.Patents, p)
		}
	}
	if out.Status == "" {
		out.Status = model.StatusVerified
	}
	return out
}

// Stats — счётчики записей.
type Stats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// RecordService инкапсулирует бизнес-логику работы с записями.
type RecordService struct {
	store    *store.Store
	logger   *zap.SugaredLogger
	validate *validator.Validate
	now      func() time.Time
}

func NewRecordService(st *store.Store, logger *zap.SugaredLogger) *RecordService {
	return &RecordService{
		store:    st,
		logger:   logger,
		validate: newValidator(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock подменяет источник текущего времени.
func (s *RecordService) WithClock(now func() time.Time) *RecordService {
	s.now = now
	return s
}

// Now текущее время сервиса.
func (s *RecordService) Now() time.Time { return s.now() }

func (s *RecordService) List() []model.Record {
	return s.store.Records.List()
}

// Get возвращает запись или store.ErrNotFound.
func (s *RecordService) Get(id string) (model.Record, error) {
	r, ok := s.store.Records.Get(id)
	if !ok {
		return model.Record{}, store.ErrNotFound
	}
	return r, nil
}

func (s *RecordService) check(in RecordInput) (RecordInput, error) {
	in = in.normalize()
	if err := s.validate.Struct(in); err != nil {
		return in, toValidationError(err, "")
	}
	return in, nil
}

// Create проверяет форму и добавляет новую запись со сроком ValidityPeriod.
func (s *RecordService) Create(ctx context.Context, in RecordInput) (model.Record, error) {
	in, err := s.check(in)
	if err != nil {
		s.logger.Infow("Create: validation failed", "error", err)
		return model.Record{}, err
	}
	now := s.now()
	r := model.Record{ID: uuid.NewString(), CreatedAt: now, ExpiresAt: now.Add(model.ValidityPeriod)}
	apply(&r, in)
	if err := s.store.Records.Add(ctx, r); err != nil {
		s.logger.Errorw("Create: store error", "error", err)
		return model.Record{}, err
	}
	s.logger.Infow("Record created", "id", r.ID, "username", r.Username, "status", r.Status)
	return r, nil
}

// Update заменяет запись целиком; id, createdAt и expiresAt не меняются.
func (s *RecordService) Update(ctx context.Context, id string, in RecordInput) (model.Record, error) {
	prev, err := s.Get(id)
	if err != nil {
		return model.Record{}, err
	}
	in, err = s.check(in)
	if err != nil {
		s.logger.Infow("Update: validation failed", "id", id, "error", err)
		return model.Record{}, err
	}
	r := model.Record{ID: prev.ID, CreatedAt: prev.CreatedAt, ExpiresAt: prev.ExpiresAt}
	apply(&r, in)
	if err := s.store.Records.Replace(ctx, id, r); err != nil {
		return model.Record{}, err
	}
	s.logger.Infow("Record updated", "id", id)
	return r, nil
}

func (s *RecordService) Delete(ctx context.Context, id string) error {
	if err := s.store.Records.Remove(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("Record deleted", "id", id)
	return nil
}

func apply(r *model.Record, in RecordInput) {
	r.Name = in.Name
	r.Username = in.Username
	r.Channel = in.Channel
	r.Age = in.Age
	r.Category = in.Category
	r.Reason = in.Reason
	r.Patents = in.Patents
	r.SocialNetworks = in.SocialNetworks
	r.Status = in.Status
}

// Filter: подстрока в username без учёта регистра И (status = all или совпадение).
func (s *RecordService) Filter(query, status string) []model.Record {
	lower := cases.Lower(language.Und)
	q := lower.String(query)
	all := s.store.Records.List()
	out := make([]model.Record, 0, len(all))
	for _, r := range all {
		if !strings.Contains(lower.String(r.Username), q) {
			continue
		}
		if status != "" && status != FilterAll && r.Status != status {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *RecordService) Stats() Stats {
	st := Stats{ByStatus: map[string]int{}}
	for _, r := range s.store.Records.List() {
		st.Total++
		st.ByStatus[r.Status]++
	}
	return st
}

// Certificate собирает сертификат записи на текущий момент.
func (s *RecordService) Certificate(id string) (certificate.Document, error) {
	r, err := s.Get(id)
	if err != nil {
		return certificate.Document{}, err
	}
	return certificate.Build(r, s.store.Statuses, s.store.Categories, s.now()), nil
}
