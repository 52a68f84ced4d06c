// Package reconciling contém o motor de reconciliação semanal de contas a
// receber: classificação de semanas de negócio, resolução de extratos,
// agregação, comparação e ranking de clientes.
package reconciling

import (
	"fmt"
	"time"

	"github.com/vfg2006/receivables-recon-api/internal/domain"
	"github.com/vfg2006/receivables-recon-api/pkg/utils"
)

// WeekStartMonday retorna a segunda-feira da semana de negócio (segunda a
// sexta) a que a data pertence. Sábado e domingo pertencem à semana da
// segunda-feira seguinte, não à anterior.
func WeekStartMonday(date time.Time) time.Time {
	d := utils.TruncateToDate(date)

	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d.AddDate(0, 0, -(int(d.Weekday()) - 1))
	}
}

// ClassifyWeek retorna o número inteiro de semanas entre a semana da data de
// referência e a semana da data de extração: 0 = semana atual, 1 = semana
// anterior, >1 = N semanas atrás, negativo = semanas à frente.
func ClassifyWeek(extractDate, referenceDate time.Time) int {
	referenceMonday := WeekStartMonday(referenceDate)
	extractMonday := WeekStartMonday(extractDate)

	return int(referenceMonday.Sub(extractMonday).Hours()) / (24 * 7)
}

// WeekLabelFor converte a diferença de semanas no rótulo de proveniência
func WeekLabelFor(weekDiff int) string {
	switch {
	case weekDiff == 0:
		return domain.WeekLabelCurrent
	case weekDiff == 1:
		return domain.WeekLabelPrevious
	case weekDiff > 1:
		return fmt.Sprintf("%d semanas atrás", weekDiff)
	default:
		return fmt.Sprintf("%d semanas à frente", -weekDiff)
	}
}
