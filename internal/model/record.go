package model

import (
	"encoding/json"
	"time"
)

// ValidityPeriod срок действия записи с момента создания.
const ValidityPeriod = 30 * 24 * time.Hour

// Record — запись верификации (или мошенника) для одного аккаунта.
type Record struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	Channel        string    `json:"channel"`
	Age            string    `json:"age"`
	Category       string    `json:"category,omitempty"` // ссылка на CategoryDefinition.ID
	Reason         string    `json:"reason,omitempty"`
	Patents        []string  `json:"patents"`
	SocialNetworks string    `json:"socialNetworks"`
	Status         string    `json:"status"` // ссылка на StatusDefinition.ID
	CreatedAt      time.Time `json:"createdAt"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

// UnmarshalJSON принимает и ранний формат записи: одиночный patentConfirmation
// превращается в первый патент, а отсутствующий expiresAt считается от createdAt.
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	var aux struct {
		plain
		PatentConfirmation string `json:"patentConfirmation"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = Record(aux.plain)
	if len(r.Patents) == 0 && aux.PatentConfirmation != "" {
		r.Patents = []string{aux.PatentConfirmation}
	}
	if r.ExpiresAt.IsZero() && !r.CreatedAt.IsZero() {
		r.ExpiresAt = r.CreatedAt.Add(ValidityPeriod)
	}
	return nil
}

// Clone возвращает копию записи с собственным слайсом патентов.
func (r Record) Clone() Record {
	out := r
	if r.Patents != nil {
		out.Patents = append([]string(nil), r.Patents...)
	}
	return out
}
