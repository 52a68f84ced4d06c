package domain

import "time"

// ReconciliationReport é o contrato de saída consumido pelo escritor de
// relatórios: as cinco seções nomeadas mais os metadados da execução.
type ReconciliationReport struct {
	ReferenceDate time.Time          `json:"reference_date"`
	GeneratedAt   time.Time          `json:"generated_at"`
	FileInfo      []SnapshotInfo     `json:"file_info"`
	PivotSummary  []PivotSummaryRow  `json:"pivot_summary"`
	Comparison    []ComparisonRow    `json:"comparison"`
	TopClients    []ClientRankingRow `json:"top_clients"`
	CurrentData   []Record           `json:"current_data"`
	PreviousData  []Record           `json:"previous_data,omitempty"`
}

// ReconciliationRun é o registro de auditoria de uma execução persistido no
// histórico de execuções.
type ReconciliationRun struct {
	ID            string    `json:"id"`
	ReferenceDate time.Time `json:"reference_date"`
	CurrentFile   string    `json:"current_file"`
	PreviousFile  string    `json:"previous_file,omitempty"`
	CurrentRows   int       `json:"current_rows"`
	PreviousRows  int       `json:"previous_rows"`
	Status        string    `json:"status"`
	FailureReason string    `json:"failure_reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Status possíveis de uma execução de reconciliação
const (
	RunStatusSucceeded = "succeeded"
	RunStatusFailed    = "failed"
)
