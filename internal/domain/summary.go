package domain

// TotalEntityName é o rótulo da linha sintética de total geral
const TotalEntityName = "Total"

// EntitySummary agrega os valores de uma entidade legal (ou do total geral)
// em uma semana. Os ratios são calculados com divisão segura e arredondados
// para quatro casas decimais.
type EntitySummary struct {
	Entity                string  `json:"entity"`
	TotalReceivable       float64 `json:"total_receivable"`
	Overdue90             float64 `json:"overdue_90"`
	OverdueScheduled      float64 `json:"overdue_scheduled"`
	Overdue90Ratio        float64 `json:"overdue_90_ratio"`
	OverdueScheduledRatio float64 `json:"overdue_scheduled_ratio"`
}

// ComparisonRow combina os agregados da semana atual e da anterior com as
// variações absolutas (não percentuais) de total e de vencidos há 90 dias.
type ComparisonRow struct {
	Entity                string  `json:"entity"`
	TotalPrevious         float64 `json:"total_previous"`
	TotalCurrent          float64 `json:"total_current"`
	TotalDelta            float64 `json:"total_delta"`
	Overdue90Previous     float64 `json:"overdue_90_previous"`
	Overdue90Current      float64 `json:"overdue_90_current"`
	Overdue90Delta        float64 `json:"overdue_90_delta"`
	Overdue90Ratio        float64 `json:"overdue_90_ratio"`
	OverdueScheduled      float64 `json:"overdue_scheduled"`
	OverdueScheduledRatio float64 `json:"overdue_scheduled_ratio"`
}

// PivotSummaryRow é a visão da comparação em milhões e percentuais. Todos os
// campos de variação valem 0 quando não existe valor anterior comparável.
type PivotSummaryRow struct {
	Entity                         string  `json:"entity"`
	TotalMillions                  float64 `json:"total_millions"`
	TotalChangePct                 float64 `json:"total_change_pct"`
	Overdue90Millions              float64 `json:"overdue_90_millions"`
	Overdue90ChangePct             float64 `json:"overdue_90_change_pct"`
	Overdue90RatioPct              float64 `json:"overdue_90_ratio_pct"`
	Overdue90RatioChangePts        float64 `json:"overdue_90_ratio_change_pts"`
	OverdueScheduledMillions       float64 `json:"overdue_scheduled_millions"`
	OverdueScheduledChangePct      float64 `json:"overdue_scheduled_change_pct"`
	OverdueScheduledRatioPct       float64 `json:"overdue_scheduled_ratio_pct"`
	OverdueScheduledRatioChangePts float64 `json:"overdue_scheduled_ratio_change_pts"`
}

// ClientRankingRow é uma posição do ranking de clientes inadimplentes,
// ordenado pelo valor vencido programado da semana atual.
type ClientRankingRow struct {
	ClientName                     string  `json:"client_name"`
	TotalMillions                  float64 `json:"total_millions"`
	OverdueScheduledMillions       float64 `json:"overdue_scheduled_millions"`
	OverdueScheduledRatioPct       float64 `json:"overdue_scheduled_ratio_pct"`
	PreviousOverdueRatioPct        float64 `json:"previous_overdue_ratio_pct"`
	TotalChangePct                 float64 `json:"total_change_pct"`
	OverdueScheduledRatioChangePts float64 `json:"overdue_scheduled_ratio_change_pts"`
}
