package domain

import "time"

// Rótulos de classificação de semana usados na proveniência do relatório
const (
	WeekLabelCurrent  = "semana atual"
	WeekLabelPrevious = "semana anterior"
	WeekLabelUnknown  = "desconhecida"
)

// Snapshot referencia um arquivo de extrato com a data embutida no nome.
// É descoberto na resolução e imutável a partir daí.
type Snapshot struct {
	FileName    string    `json:"file_name"`
	FilePath    string    `json:"file_path"`
	ExtractDate time.Time `json:"extract_date"`
	WeekLabel   string    `json:"week_label"`
}

// SnapshotInfo é uma linha da seção de proveniência do relatório: qual
// arquivo foi escolhido para cada papel e por quê.
type SnapshotInfo struct {
	Role        string `json:"role"`
	FileName    string `json:"file_name"`
	FilePath    string `json:"file_path"`
	ExtractDate string `json:"extract_date"`
	WeekLabel   string `json:"week_label"`
}

// Resolution é o resultado da seleção de extratos: o arquivo da semana
// atual, o da semana anterior (nil em modo de extrato único) e os nomes de
// arquivos que não casaram com nenhum padrão de data.
type Resolution struct {
	Current      *Snapshot `json:"current"`
	Previous     *Snapshot `json:"previous,omitempty"`
	Unclassified []string  `json:"unclassified,omitempty"`
}

// SingleSnapshotMode indica que não há extrato anterior utilizável e as
// seções dependentes de comparação degradam para valores da semana atual.
func (r *Resolution) SingleSnapshotMode() bool {
	return r.Previous == nil
}
