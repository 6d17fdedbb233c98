package model

// Зарезервированные статусы, которые нельзя удалить.
const (
	StatusVerified = "verified"
	StatusFraud    = "fraud"
)

// DefaultStatusColor используется для статусов без цвета и для висячих ссылок.
const DefaultStatusColor = "#3b82f6"

// StatusDefinition — пользовательский статус записи.
type StatusDefinition struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CategoryDefinition — категория записи.
type CategoryDefinition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultStatuses начальный набор статусов.
func DefaultStatuses() []StatusDefinition {
	return []StatusDefinition{
		{ID: StatusVerified, Name: "Верифицирован", Color: "#22c55e"},
		{ID: StatusFraud, Name: "Мошенник", Color: "#ef4444"},
	}
}

// IsReservedStatus сообщает, относится ли id к неудаляемым статусам.
func IsReservedStatus(id string) bool {
	return id == StatusVerified || id == StatusFraud
}
