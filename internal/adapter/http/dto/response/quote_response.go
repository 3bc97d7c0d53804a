package response

import "oficina_pro/internal/usecase"

type QuoteLineResponse struct {
	Descricao     string  `json:"descricao"`
	Quantidade    int     `json:"quantidade"`
	ValorUnitario float64 `json:"valor_unitario"`
	ValorTotal    float64 `json:"valor_total"`
}

type QuoteResponse struct {
	OSID          string              `json:"os_id"`
	Numero        int                 `json:"numero"`
	Status        string              `json:"status"`
	StatusLabel   string              `json:"status_label"`
	Cliente       string              `json:"cliente"`
	Telefone      string              `json:"telefone"`
	Placa         string              `json:"placa"`
	Veiculo       string              `json:"veiculo"`
	Pecas         []QuoteLineResponse `json:"pecas"`
	MaoDeObra     []QuoteLineResponse `json:"mao_de_obra"`
	Totais        TotalsResponse      `json:"totais"`
	Mensagem      string              `json:"mensagem"`
	WhatsAppPhone string              `json:"whatsapp_phone"`
	WhatsAppURL   string              `json:"whatsapp_url,omitempty"`
}

func fromQuoteLines(lines []usecase.QuoteLine) []QuoteLineResponse {
	out := make([]QuoteLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, QuoteLineResponse{Descricao: l.Description, Quantidade: l.Quantity, ValorUnitario: l.UnitPrice, ValorTotal: l.Total})
	}
	return out
}

// FromQuote maps the quote. whatsAppURL is the deep link built by the handler.
func FromQuote(q usecase.Quote, whatsAppURL string) QuoteResponse {
	return QuoteResponse{
		OSID:          q.OrderID,
		Numero:        q.OrderNumber,
		Status:        string(q.Status),
		StatusLabel:   q.StatusLabel,
		Cliente:       q.ClientName,
		Telefone:      q.ClientPhone,
		Placa:         q.Plate,
		Veiculo:       q.Vehicle,
		Pecas:         fromQuoteLines(q.Parts),
		MaoDeObra:     fromQuoteLines(q.Labor),
		Totais:        FromTotals(q.Totals),
		Mensagem:      q.Message,
		WhatsAppPhone: q.WhatsAppPhone,
		WhatsAppURL:   whatsAppURL,
	}
}
