package service

import (
	"VeriUser/internal/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrImportParse файл импорта не является JSON-массивом записей.
var ErrImportParse = errors.New("import: invalid file")

// importRecord — правила проверки импортируемой записи.
type importRecord struct {
	ID       string `json:"id" validate:"required"`
	Username string `json:"username" validate:"required"`
	Status   string `json:"status" validate:"required"`
}

// Export пишет всю коллекцию как форматированный JSON-массив.
func (s *RecordService) Export(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(s.store.Records.List())
}

// ExportFileName имя файла экспорта с меткой времени в миллисекундах.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("veriuser_export_%d.json", now.UnixMilli())
}

// Import разбирает массив записей и заменяет им всю коллекцию.
// При любой ошибке текущие данные не меняются.
func (s *RecordService) Import(ctx context.Context, r io.Reader) (int, error) {
	var records []model.Record
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		s.logger.Warnw("Import: parse failed", "error", err)
		return 0, fmt.Errorf("%w: %w", ErrImportParse, err)
	}
	// после массива допустимы только пробелы
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after array")
		}
		s.logger.Warnw("Import: trailing data", "error", err)
		return 0, fmt.Errorf("%w: %w", ErrImportParse, err)
	}
	if records == nil {
		// "null" не считается массивом
		return 0, fmt.Errorf("%w: expected JSON array", ErrImportParse)
	}
	if err := s.checkImport(records); err != nil {
		s.logger.Warnw("Import: validation failed", "error", err)
		return 0, err
	}
	if err := s.store.Records.ReplaceAll(ctx, records); err != nil {
		s.logger.Errorw("Import: store error", "error", err)
		return 0, err
	}
	s.logger.Infow("Records imported", "count", len(records))
	return len(records), nil
}

func (s *RecordService) checkImport(records []model.Record) error {
	seen := make(map[string]bool, len(records))
	var fields []string
	for i, r := range records {
		prefix := fmt.Sprintf("[%d].", i)
		if err := s.validate.Struct(importRecord{ID: r.ID, Username: r.Username, Status: r.Status}); err != nil {
			var ve *ValidationError
			if errors.As(toValidationError(err, prefix), &ve) {
				fields = append(fields, ve.Fields...)
			} else {
				return err
			}
		}
		if r.CreatedAt.IsZero() {
			fields = append(fields, prefix+"createdAt")
		}
		if r.ID != "" {
			if seen[r.ID] {
				fields = append(fields, prefix+"id (duplicate)")
			}
			seen[r.ID] = true
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
