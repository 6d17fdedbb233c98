// Package expiry вычисляет срок действия записи и уровень отображения.
package expiry

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// WarningDays — начиная с этого остатка (включительно) запись требует обновления.
const WarningDays = 7

// Tier уровень отображения срока действия.
type Tier string

const (
	TierOK       Tier = "ok"
	TierWarning  Tier = "warning"
	TierCritical Tier = "critical"
)

// IsExpired строго: в момент expiresAt запись ещё действительна.
func IsExpired(expiresAt, now time.Time) bool {
	return now.After(expiresAt)
}

// DaysRemaining = ceil((expiresAt - now) / 1 day). После истечения может быть <= 0.
func DaysRemaining(expiresAt, now time.Time) int {
	d := expiresAt.Sub(now)
	days := d / day
	// деление в Go усекает к нулю, для отрицательных это и есть ceil
	if d%day > 0 {
		days++
	}
	return int(days)
}

// TierOf: истёк → critical; осталось <= 7 дней → warning; иначе ok.
func TierOf(expiresAt, now time.Time) Tier {
	if IsExpired(expiresAt, now) {
		return TierCritical
	}
	if DaysRemaining(expiresAt, now) <= WarningDays {
		return TierWarning
	}
	return TierOK
}

// DaysWord упрощённое склонение: 1 — день, 2..4 — дня, остальное — дней.
func DaysWord(n int) string {
	switch {
	case n == 1:
		return "день"
	case n >= 2 && n <= 4:
		return "дня"
	default:
		return "дней"
	}
}

// Status полный результат вычисления для одной записи.
type Status struct {
	Tier          Tier   `json:"tier"`
	Expired       bool   `json:"expired"`
	DaysRemaining int    `json:"days_remaining"`
	Heading       string `json:"heading"`
	Message       string `json:"message"`
}

// Evaluate считает уровень и тексты для блока срока действия.
func Evaluate(expiresAt, now time.Time) Status {
	st := Status{
		Tier:          TierOf(expiresAt, now),
		Expired:       IsExpired(expiresAt, now),
		DaysRemaining: DaysRemaining(expiresAt, now),
	}
	switch st.Tier {
	case TierCritical:
		st.Heading = "Сертификат истёк"
		st.Message = "Требуется повторная проверка"
	case TierWarning:
		st.Heading = "Требуется обновление"
		st.Message = remaining(st.DaysRemaining)
	default:
		st.Heading = "Срок действия"
		st.Message = remaining(st.DaysRemaining)
	}
	return st
}

func remaining(days int) string {
	return fmt.Sprintf("Действителен ещё %d %s", days, DaysWord(days))
}
