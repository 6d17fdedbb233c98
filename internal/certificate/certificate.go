// Package certificate собирает данные сертификата записи и рендерит его в HTML.
package certificate

import (
	"VeriUser/internal/expiry"
	"VeriUser/internal/model"
	"fmt"
	"time"
)

// StatusResolver разрешает id статуса в имя и цвет.
type StatusResolver interface {
	ResolveName(id string) string
	ResolveColor(id string) string
}

// NameResolver разрешает id категории в имя.
type NameResolver interface {
	ResolveName(id string) string
}

// Patent — пронумерованное (с единицы) подтверждение права на username.
type Patent struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Document — структурированное содержимое сертификата. Зависит только от
// записи, справочников и момента now.
type Document struct {
	RecordID       string        `json:"record_id"`
	Name           string        `json:"name"`
	Username       string        `json:"username"`
	Channel        string        `json:"channel"`
	Age            string        `json:"age"`
	StatusID       string        `json:"status_id"`
	StatusName     string        `json:"status_name"`
	StatusColor    string        `json:"status_color"`
	CategoryID     string        `json:"category_id,omitempty"`
	Category       string        `json:"category,omitempty"`
	Reason         string        `json:"reason,omitempty"`
	SocialNetworks string        `json:"social_networks,omitempty"`
	Patents        []Patent      `json:"patents"`
	Expiry         expiry.Status `json:"expiry"`
	IssuedAt       string        `json:"issued_at"`
	ValidUntil     string        `json:"valid_until"`
}

// Build собирает Document для записи.
func Build(r model.Record, statuses StatusResolver, categories NameResolver, now time.Time) Document {
	doc := Document{
		RecordID:       r.ID,
		Name:           r.Name,
		Username:       r.Username,
		Channel:        r.Channel,
		Age:            r.Age,
		StatusID:       r.Status,
		StatusName:     statuses.ResolveName(r.Status),
		StatusColor:    statuses.ResolveColor(r.Status),
		Reason:         r.Reason,
		SocialNetworks: r.SocialNetworks,
		Patents:        make([]Patent, 0, len(r.Patents)),
		Expiry:         expiry.Evaluate(r.ExpiresAt, now),
		IssuedAt:       FormatDate(r.CreatedAt),
		ValidUntil:     FormatDate(r.ExpiresAt),
	}
	if r.Category != "" {
		doc.CategoryID = r.Category
		doc.Category = categories.ResolveName(r.Category)
	}
	for i, p := range r.Patents {
		doc.Patents = append(doc.Patents, Patent{Number: i + 1, Text: p})
	}
	return doc
}

var monthsGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// FormatDate форматирует дату как «2 января 2026 г.».
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return fmt.Sprintf("%d %s %d г.", t.Day(), monthsGenitive[t.Month()-1], t.Year())
}

// FormatShortDate форматирует дату как 02.01.2026 (список записей).
func FormatShortDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02.01.2006")
}
