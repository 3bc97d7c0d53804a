package entities

import (
	"strings"
	"time"
)

// ItemKind separates parts (peça) from labor tasks (serviço).
type ItemKind string

const (
	ItemKindPeca    ItemKind = "peca"
	ItemKindServico ItemKind = "servico"
)

func (k ItemKind) IsValid() bool {
	return k == ItemKindPeca || k == ItemKindServico
}

// OrderItem is a priced line of a service order.
type OrderItem struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"os_id"`
	Kind      ItemKind  `json:"tipo"`
	Desc      string    `json:"descricao"`
	Quantity  int       `json:"quantidade"`
	UnitPrice float64   `json:"valor_unitario"`
	Total     float64   `json:"valor_total"`
	CreatedAt time.Time `json:"created_at"`
}

var (
	laborKeywords = []string{"troca", "instala", "revis", "diagn", "ajuste", "mão de obra", "mao de obra"}
	partKeywords  = []string{"vela", "bomba", "filtro", "correia", "pastilha", "sensor", "óleo", "oleo", "fluido", "pneu", "bateria"}
)

// SuggestItemKind guesses the kind of a line from its description. Labor
// keywords win over part keywords ("Troca de óleo" is labor); unknown
// descriptions default to labor.
func SuggestItemKind(description string) ItemKind {
	d := strings.ToLower(strings.TrimSpace(description))
	if containsAny(d, laborKeywords) {
		return ItemKindServico
	}
	if containsAny(d, partKeywords) {
		return ItemKindPeca
	}
	return ItemKindServico
}

func containsAny(s string, keys []string) bool {
	for _, k := range keys {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
