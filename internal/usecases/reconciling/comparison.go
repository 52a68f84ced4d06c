package reconciling

import (
	"github.com/vfg2006/receivables-recon-api/internal/domain"
	"github.com/vfg2006/receivables-recon-api/pkg/utils"
)

// BuildComparison produz a tabela de variações absolutas entre as duas
// semanas via inner join por entidade: entidades presentes em apenas uma das
// semanas são excluídas. Sem resumo anterior (modo de extrato único) a
// seção é omitida por inteiro.
func BuildComparison(current, previous []domain.EntitySummary) []domain.ComparisonRow {
	rows := make([]domain.ComparisonRow, 0, len(current))

	if len(current) == 0 || len(previous) == 0 {
		return rows
	}

	previousByEntity := make(map[string]domain.EntitySummary, len(previous))
	for _, summary := range previous {
		previousByEntity[summary.Entity] = summary
	}

	for _, curr := range current {
		prev, exists := previousByEntity[curr.Entity]
		if !exists {
			continue
		}

		rows = append(rows, domain.ComparisonRow{
			Entity:                curr.Entity,
			TotalPrevious:         prev.TotalReceivable,
			TotalCurrent:          curr.TotalReceivable,
			TotalDelta:            curr.TotalReceivable - prev.TotalReceivable,
			Overdue90Previous:     prev.Overdue90,
			Overdue90Current:      curr.Overdue90,
			Overdue90Delta:        curr.Overdue90 - prev.Overdue90,
			Overdue90Ratio:        curr.Overdue90Ratio,
			OverdueScheduled:      curr.OverdueScheduled,
			OverdueScheduledRatio: curr.OverdueScheduledRatio,
		})
	}

	return rows
}

// BuildPivotSummary produz a visão em milhões e percentuais da comparação.
// As variações percentuais só são calculadas quando existe valor anterior
// comparável e diferente de zero; variações de ratio em pontos percentuais
// são subtração simples e dispensam guarda de zero.
func BuildPivotSummary(current, previous []domain.EntitySummary) []domain.PivotSummaryRow {
	rows := make([]domain.PivotSummaryRow, 0, len(current))

	previousByEntity := make(map[string]domain.EntitySummary, len(previous))
	for _, summary := range previous {
		previousByEntity[summary.Entity] = summary
	}

	for _, curr := range current {
		row := domain.PivotSummaryRow{
			Entity:                   curr.Entity,
			TotalMillions:            utils.ToMillions(curr.TotalReceivable, 0),
			Overdue90Millions:        utils.ToMillions(curr.Overdue90, 1),
			Overdue90RatioPct:        utils.RoundWithDecimalPlaces(curr.Overdue90Ratio*100, 1),
			OverdueScheduledMillions: utils.ToMillions(curr.OverdueScheduled, 1),
			OverdueScheduledRatioPct: utils.RoundWithDecimalPlaces(curr.OverdueScheduledRatio*100, 1),
		}

		if prev, exists := previousByEntity[curr.Entity]; exists {
			row.TotalChangePct = percentageChange(curr.TotalReceivable, prev.TotalReceivable)
			row.Overdue90ChangePct = percentageChange(curr.Overdue90, prev.Overdue90)
			row.OverdueScheduledChangePct = percentageChange(curr.OverdueScheduled, prev.OverdueScheduled)

			row.Overdue90RatioChangePts = utils.RoundWithDecimalPlaces(
				(curr.Overdue90Ratio-prev.Overdue90Ratio)*100, 1)
			row.OverdueScheduledRatioChangePts = utils.RoundWithDecimalPlaces(
				(curr.OverdueScheduledRatio-prev.OverdueScheduledRatio)*100, 1)
		}

		rows = append(rows, row)
	}

	return rows
}

// percentageChange calcula (atual-anterior)/anterior*100 com uma casa
// decimal, valendo 0 quando o valor anterior é zero.
func percentageChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}

	return utils.RoundWithDecimalPlaces((current-previous)/previous*100, 1)
}
