package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var expiresAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestDaysRemaining_Boundaries(t *testing.T) {
	assert.Equal(t, 1, DaysRemaining(expiresAt, expiresAt.Add(-time.Second)))
	assert.Equal(t, 0, DaysRemaining(expiresAt, expiresAt))
	assert.Equal(t, 0, DaysRemaining(expiresAt, expiresAt.Add(time.Second)))
	assert.Equal(t, -1, DaysRemaining(expiresAt, expiresAt.Add(day+time.Second)))
	assert.Equal(t, 30, DaysRemaining(expiresAt, expiresAt.Add(-30*day)))
	assert.Equal(t, 31, DaysRemaining(expiresAt, expiresAt.Add(-30*day-time.Minute)))
}

func TestIsExpired_Strict(t *testing.T) {
	assert.False(t, IsExpired(expiresAt, expiresAt.Add(-time.Second)))
	assert.False(t, IsExpired(expiresAt, expiresAt))
	assert.True(t, IsExpired(expiresAt, expiresAt.Add(time.Second)))
}

func TestTierOf(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want Tier
	}{
		{"8 days left is ok", expiresAt.Add(-8 * day), TierOK},
		{"7 days left is warning", expiresAt.Add(-7 * day), TierWarning},
		{"6 days and a bit rounds up to 7", expiresAt.Add(-6*day - time.Hour), TierWarning},
		{"7 days and a bit rounds up to 8", expiresAt.Add(-7*day - time.Hour), TierOK},
		{"last second", expiresAt.Add(-time.Second), TierWarning},
		{"expired", expiresAt.Add(time.Second), TierCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TierOf(expiresAt, tt.now))
		})
	}
}

func TestDaysWord(t *testing.T) {
	assert.Equal(t, "день", DaysWord(1))
	for _, n := range []int{2, 3, 4} {
		assert.Equal(t, "дня", DaysWord(n), n)
	}
	// упрощённое правило: 21, 22 не склоняются «по-русски»
	for _, n := range []int{0, 5, 6, 11, 21, 22, 30} {
		assert.Equal(t, "дней", DaysWord(n), n)
	}
}

func TestEvaluate_Copy(t *testing.T) {
	st := Evaluate(expiresAt, expiresAt.Add(-3*day))
	assert.Equal(t, TierWarning, st.Tier)
	assert.Equal(t, "Требуется обновление", st.Heading)
	assert.Equal(t, "Действителен ещё 3 дня", st.Message)

	st = Evaluate(expiresAt, expiresAt.Add(-20*day))
	assert.Equal(t, TierOK, st.Tier)
	assert.Equal(t, "Срок действия", st.Heading)
	assert.Equal(t, "Действителен ещё 20 дней", st.Message)

	st = Evaluate(expiresAt, expiresAt.Add(-day))
	assert.Equal(t, "Действителен ещё 1 день", st.Message)

	st = Evaluate(expiresAt, expiresAt.Add(time.Hour))
	assert.True(t, st.Expired)
	assert.Equal(t, TierCritical, st.Tier)
	assert.Equal(t, "Сертификат истёк", st.Heading)
	assert.Equal(t, "Требуется повторная проверка", st.Message)
}
