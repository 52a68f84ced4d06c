package domain

import "time"

// Record é uma linha de contas a receber já validada e tipada, extraída de
// uma aba de planilha de uma das entidades legais.
type Record struct {
	Entity           string    `json:"entity"`
	ClientCode       int64     `json:"client_code"`
	ClientName       string    `json:"client_name"`
	TotalReceivable  float64   `json:"total_receivable"`
	Overdue90        float64   `json:"overdue_90"`
	OverdueScheduled float64   `json:"overdue_scheduled"`
	SourceFile       string    `json:"source_file"`
	ExtractDate      time.Time `json:"extract_date"`
}
