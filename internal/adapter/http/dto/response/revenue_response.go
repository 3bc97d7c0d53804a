package response

import "oficina_pro/internal/usecase"

type RevenueResponse struct {
	Hoje           string          `json:"hoje"`
	FaturamentoDia float64         `json:"faturamento_dia"`
	FaturamentoSem float64         `json:"faturamento_semana"`
	FaturamentoMes float64         `json:"faturamento_mes"`
	PrevistoSemana float64         `json:"previsto_semana"`
	PrevistoMes    float64         `json:"previsto_mes"`
	AtrasadasQtd   int             `json:"atrasadas_qtd"`
	AtrasadasValor float64         `json:"atrasadas_valor"`
	AtrasadasIDs   []string        `json:"atrasadas_ids"`
	TotalOrdens    int             `json:"total_ordens"`
	OrdensAbertas  int             `json:"ordens_abertas"`
	OrdensRecentes []OrderResponse `json:"ordens_recentes"`
}

func FromRevenue(s usecase.RevenueSummary) RevenueResponse {
	return RevenueResponse{
		Hoje:           s.Today,
		FaturamentoDia: s.Day,
		FaturamentoSem: s.Week,
		FaturamentoMes: s.Month,
		PrevistoSemana: s.ExpectedWeek,
		PrevistoMes:    s.ExpectedMonth,
		AtrasadasQtd:   s.OverdueCount,
		AtrasadasValor: s.OverdueValue,
		AtrasadasIDs:   s.OverdueIDs,
		TotalOrdens:    s.TotalOrders,
		OrdensAbertas:  s.OpenOrders,
		OrdensRecentes: FromOrders(s.Recent),
	}
}
