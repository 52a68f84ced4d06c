package reconciling

import (
	"math"
	"sort"

	"github.com/vfg2006/receivables-recon-api/internal/domain"
	"github.com/vfg2006/receivables-recon-api/pkg/utils"
)

const ratioDecimals = 4

// SummarizeByEntity agrega os registros por entidade, soma os três campos
// numéricos e anexa a linha sintética de total geral. Os ratios usam divisão
// segura: 0 quando o denominador é zero ou inválido.
func SummarizeByEntity(records []domain.Record) []domain.EntitySummary {
	if len(records) == 0 {
		return []domain.EntitySummary{}
	}

	totalsByEntity := make(map[string]*domain.EntitySummary)

	for _, record := range records {
		summary, exists := totalsByEntity[record.Entity]
		if !exists {
			summary = &domain.EntitySummary{Entity: record.Entity}
			totalsByEntity[record.Entity] = summary
		}

		summary.TotalReceivable += sanitizeAmount(record.TotalReceivable)
		summary.Overdue90 += sanitizeAmount(record.Overdue90)
		summary.OverdueScheduled += sanitizeAmount(record.OverdueScheduled)
	}

	entities := make([]string, 0, len(totalsByEntity))
	for entity := range totalsByEntity {
		entities = append(entities, entity)
	}
	sort.Strings(entities)

	summaries := make([]domain.EntitySummary, 0, len(entities)+1)
	grandTotal := domain.EntitySummary{Entity: domain.TotalEntityName}

	for _, entity := range entities {
		summary := *totalsByEntity[entity]
		summary.Overdue90Ratio = utils.SafeDivide(summary.Overdue90, summary.TotalReceivable, ratioDecimals)
		summary.OverdueScheduledRatio = utils.SafeDivide(summary.OverdueScheduled, summary.TotalReceivable, ratioDecimals)
		summaries = append(summaries, summary)

		grandTotal.TotalReceivable += summary.TotalReceivable
		grandTotal.Overdue90 += summary.Overdue90
		grandTotal.OverdueScheduled += summary.OverdueScheduled
	}

	grandTotal.Overdue90Ratio = utils.SafeDivide(grandTotal.Overdue90, grandTotal.TotalReceivable, ratioDecimals)
	grandTotal.OverdueScheduledRatio = utils.SafeDivide(grandTotal.OverdueScheduled, grandTotal.TotalReceivable, ratioDecimals)

	return append(summaries, grandTotal)
}

// sanitizeAmount aplica a coerção defensiva dos valores monetários: valores
// inválidos ou negativos contam como zero, nunca como erro.
func sanitizeAmount(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}
