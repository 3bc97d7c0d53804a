package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"oficina_pro/internal/domain/entities"
)

const whatsappCountryCode = "55"

// QuoteLine is one printable line of the quote.
type QuoteLine struct {
	Description string
	Quantity    int
	UnitPrice   float64
	Total       float64
}

// Quote (orçamento) is what the customer sees: parts and labor are always
// reported as separate buckets.
type Quote struct {
	OrderID       string
	OrderNumber   int
	Status        entities.OrderStatus
	StatusLabel   string
	ClientName    string
	ClientPhone   string
	WhatsAppPhone string
	Plate         string
	Vehicle       string
	Parts         []QuoteLine
	Labor         []QuoteLine
	Totals        entities.Totals
	Message       string
}

type IOrderQuoteUseCase interface {
	Quote(ctx context.Context, userID, orderID string) (Quote, error)
}

type OrderQuoteUseCase struct {
	ws *Workspace
}

var _ IOrderQuoteUseCase = (*OrderQuoteUseCase)(nil)

func NewOrderQuoteUseCase(ws *Workspace) *OrderQuoteUseCase {
	return &OrderQuoteUseCase{ws: ws}
}

func (u *OrderQuoteUseCase) Quote(ctx context.Context, userID, orderID string) (Quote, error) {
	ds, err := u.ws.read(ctx)
	if err != nil {
		return Quote{}, err
	}
	o, err := ownedOrder(ds, userID, strings.TrimSpace(orderID))
	if err != nil {
		return Quote{}, err
	}
	return BuildQuote(details(ds, *o)), nil
}

// BuildQuote splits the order lines into buckets and renders the customer
// message.
func BuildQuote(d OrderDetails) Quote {
	q := Quote{
		OrderID:     d.Order.ID,
		OrderNumber: d.Order.Number,
		Status:      d.Order.Status,
		StatusLabel: d.Order.Status.Label(),
		ClientName:  "Cliente",
		Parts:       []QuoteLine{},
		Labor:       []QuoteLine{},
		Totals:      entities.ComputeTotals(d.Items, d.Order.LaborValue),
	}
	if d.Client != nil {
		q.ClientName = d.Client.Name
		q.ClientPhone = d.Client.Phone
		q.WhatsAppPhone = WhatsAppPhone(d.Client.Phone)
	}
	if d.Vehicle != nil {
		q.Plate = d.Vehicle.Plate
		q.Vehicle = d.Vehicle.Description()
	}

	for _, it := range d.Items {
		line := QuoteLine{Description: it.Desc, Quantity: it.Quantity, UnitPrice: it.UnitPrice, Total: it.Total}
		if it.Kind == entities.ItemKindPeca {
			q.Parts = append(q.Parts, line)
		} else {
			q.Labor = append(q.Labor, line)
		}
	}
	q.Message = composeMessage(q)
	return q
}

func composeMessage(q Quote) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Olá, %s!\n\n", q.ClientName)
	fmt.Fprintf(&b, "Sua ordem de serviço #%d foi atualizada.\n\n", q.OrderNumber)
	b.WriteString("🚗 Veículo: " + q.Plate)
	if q.Vehicle != "" {
		b.WriteString(" (" + q.Vehicle + ")")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "📌 Status: %s\n", q.StatusLabel)

	if len(q.Parts) > 0 {
		b.WriteString("\nPeças:\n")
		writeLines(&b, q.Parts)
	}
	if len(q.Labor) > 0 || q.Totals.MechanicLabor > 0 {
		b.WriteString("\nMão de obra:\n")
		writeLines(&b, q.Labor)
		if q.Totals.MechanicLabor > 0 {
			fmt.Fprintf(&b, "- Mão de obra (mecânico): R$ %s\n", FormatBRL(q.Totals.MechanicLabor))
		}
	}

	fmt.Fprintf(&b, "\n🔩 Peças: R$ %s\n", FormatBRL(q.Totals.Parts))
	fmt.Fprintf(&b, "🛠️ Mão de obra: R$ %s\n", FormatBRL(q.Totals.Labor))
	fmt.Fprintf(&b, "💰 Valor total: R$ %s\n\n", FormatBRL(q.Totals.Grand))
	b.WriteString("Qualquer dúvida, estamos à disposição.")
	return b.String()
}

func writeLines(b *strings.Builder, lines []QuoteLine) {
	for _, l := range lines {
		fmt.Fprintf(b, "- %dx %s: R$ %s\n", l.Quantity, l.Description, FormatBRL(l.Total))
	}
}

// FormatBRL renders 1234.5 as "1234,50".
func FormatBRL(v float64) string {
	return strings.Replace(strconv.FormatFloat(entities.RoundMoney(v), 'f', 2, 64), ".", ",", 1)
}

// WhatsAppPhone keeps the digits of phone and prefixes the Brazilian country
// code when missing. Empty when phone has no digits.
func WhatsAppPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, whatsappCountryCode) && len(digits) > 11 {
		return digits
	}
	return whatsappCountryCode + digits
}
