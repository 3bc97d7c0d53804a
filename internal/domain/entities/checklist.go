package entities

import "time"

// ChecklistRow is one vehicle inspection item recorded at intake.
type ChecklistRow struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"os_id"`
	Item      string    `json:"item"`
	Checked   bool      `json:"checked"`
	Position  int       `json:"ordem"`
	CreatedAt time.Time `json:"created_at"`
}

// ChecklistEntry is a catalog entry plus the flag marked during intake.
type ChecklistEntry struct {
	Item    string
	Checked bool
}

// DefaultChecklistCatalog is the fixed intake inspection list, in display order.
var DefaultChecklistCatalog = []string{
	"Extintor",
	"Triângulo",
	"Macaco",
	"Chave de roda",
	"Estepe",
	"Tapetes",
	"Rádio/multimídia",
	"Documento do veículo",
	"Manual do proprietário",
	"Avarias na lataria",
}

// DefaultChecklist builds catalog entries marking the given labels as checked.
func DefaultChecklist(checked ...string) []ChecklistEntry {
	marked := make(map[string]bool, len(checked))
	for _, c := range checked {
		marked[c] = true
	}
	out := make([]ChecklistEntry, 0, len(DefaultChecklistCatalog))
	for _, item := range DefaultChecklistCatalog {
		out = append(out, ChecklistEntry{Item: item, Checked: marked[item]})
	}
	return out
}
