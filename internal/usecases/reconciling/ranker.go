package reconciling

import (
	"sort"

	"github.com/vfg2006/receivables-recon-api/internal/domain"
	"github.com/vfg2006/receivables-recon-api/pkg/utils"
)

// DefaultTopClients é o tamanho padrão do ranking de clientes inadimplentes
const DefaultTopClients = 20

// clientTotals acumula as somas por cliente de uma semana
type clientTotals struct {
	total            float64
	overdueScheduled float64
}

// RankTopClients agrega os registros da semana atual por cliente, faz o left
// join com as somas da semana anterior (ausência vale 0, nunca erro) e
// retorna os topN clientes por valor vencido programado da semana atual.
func RankTopClients(current, previous []domain.Record, topN int) []domain.ClientRankingRow {
	if len(current) == 0 {
		return []domain.ClientRankingRow{}
	}

	if topN <= 0 {
		topN = DefaultTopClients
	}

	currentByClient := sumByClient(current)
	previousByClient := sumByClient(previous)

	clients := make([]string, 0, len(currentByClient))
	for client := range currentByClient {
		clients = append(clients, client)
	}

	// Ordena por vencido programado decrescente; empates por nome para
	// manter o resultado determinístico.
	sort.Slice(clients, func(i, j int) bool {
		left := currentByClient[clients[i]]
		right := currentByClient[clients[j]]
		if left.overdueScheduled != right.overdueScheduled {
			return left.overdueScheduled > right.overdueScheduled
		}
		return clients[i] < clients[j]
	})

	if len(clients) > topN {
		clients = clients[:topN]
	}

	rows := make([]domain.ClientRankingRow, 0, len(clients))

	for _, client := range clients {
		curr := currentByClient[client]
		prev := previousByClient[client] // zero-value quando o cliente não existia

		currRatioPct := utils.SafeDivide(curr.overdueScheduled, curr.total, ratioDecimals) * 100
		prevRatioPct := utils.SafeDivide(prev.overdueScheduled, prev.total, ratioDecimals) * 100
		totalChangePct := utils.SafeDivide(curr.total-prev.total, prev.total, ratioDecimals) * 100

		rows = append(rows, domain.ClientRankingRow{
			ClientName:                     client,
			TotalMillions:                  utils.ToMillions(curr.total, 1),
			OverdueScheduledMillions:       utils.ToMillions(curr.overdueScheduled, 1),
			OverdueScheduledRatioPct:       utils.RoundWithDecimalPlaces(currRatioPct, 1),
			PreviousOverdueRatioPct:        utils.RoundWithDecimalPlaces(prevRatioPct, 1),
			TotalChangePct:                 utils.RoundWithDecimalPlaces(totalChangePct, 1),
			OverdueScheduledRatioChangePts: utils.RoundWithDecimalPlaces(currRatioPct-prevRatioPct, 1),
		})
	}

	return rows
}

func sumByClient(records []domain.Record) map[string]clientTotals {
	totalsByClient := make(map[string]clientTotals, len(records))

	for _, record := range records {
		totals := totalsByClient[record.ClientName]
		totals.total += sanitizeAmount(record.TotalReceivable)
		totals.overdueScheduled += sanitizeAmount(record.OverdueScheduled)
		totalsByClient[record.ClientName] = totals
	}

	return totalsByClient
}
