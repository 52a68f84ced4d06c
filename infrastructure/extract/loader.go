// Package extract lê os extratos semanais de contas a receber em planilhas
// xlsx. Cada aba cujo nome contém um marcador de entidade conhecido vira um
// conjunto de registros tipados daquela entidade.
package extract

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/receivables-recon-api/internal/config"
	"github.com/vfg2006/receivables-recon-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// MissingColumnsError indica que uma aba não possui as colunas obrigatórias
// do esquema de extrato.
type MissingColumnsError struct {
	SheetName string
	Columns   []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf(
		"aba %q sem as colunas obrigatórias: %s",
		e.SheetName, strings.Join(e.Columns, ", "),
	)
}

// Loader lê o diretório de extratos e carrega registros de planilhas xlsx
type Loader struct {
	cfg config.Extract
}

func NewLoader(cfg config.Extract) *Loader {
	return &Loader{cfg: cfg}
}

// ListExtracts retorna os nomes dos arquivos regulares presentes no
// diretório de extratos, ignorando subdiretórios.
func (l *Loader) ListExtracts() ([]string, error) {
	entries, err := os.ReadDir(l.cfg.DataDir)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao listar o diretório de extratos %q", l.cfg.DataDir)
	}

	fileNames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileNames = append(fileNames, entry.Name())
	}

	return fileNames, nil
}

// LoadRecords carrega os registros válidos de todas as abas do extrato que
// contêm um marcador de entidade no nome. Linhas de total e linhas com
// código de cliente não numérico são descartadas antes da agregação.
func (l *Loader) LoadRecords(snapshot *domain.Snapshot) ([]domain.Record, error) {
	workbook, err := excelize.OpenFile(snapshot.FilePath)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o extrato %q", snapshot.FilePath)
	}
	defer func() {
		if err := workbook.Close(); err != nil {
			logrus.WithError(err).WithField("file", snapshot.FileName).
				Warn("Erro ao fechar a planilha de extrato")
		}
	}()

	records := make([]domain.Record, 0)
	matchedSheets := 0

	for _, sheetName := range workbook.GetSheetList() {
		entity, ok := l.entityForSheet(sheetName)
		if !ok {
			continue
		}
		matchedSheets++

		sheetRecords, err := l.loadSheet(workbook, sheetName, entity, snapshot)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"file":  snapshot.FileName,
				"sheet": sheetName,
			}).Warn("Aba de extrato ignorada")
			continue
		}

		records = append(records, sheetRecords...)
	}

	if matchedSheets == 0 {
		logrus.WithField("file", snapshot.FileName).
			Warn("Nenhuma aba do extrato contém um marcador de entidade conhecido")
	}

	return records, nil
}

// entityForSheet resolve o marcador de entidade embutido no nome da aba
func (l *Loader) entityForSheet(sheetName string) (string, bool) {
	for _, marker := range l.cfg.EntityMarkers {
		if strings.Contains(sheetName, marker) {
			return marker, true
		}
	}

	return "", false
}

func (l *Loader) loadSheet(
	workbook *excelize.File,
	sheetName string,
	entity string,
	snapshot *domain.Snapshot,
) ([]domain.Record, error) {
	rows, err := workbook.GetRows(sheetName)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a aba %q", sheetName)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	columns, err := l.mapColumns(sheetName, rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(rows)-1)

	for _, row := range rows[1:] {
		clientName := strings.TrimSpace(cellAt(row, columns.clientName))
		if clientName == "" || strings.EqualFold(clientName, l.cfg.TotalRowMarker) {
			continue
		}

		clientCode, ok := parseClientCode(cellAt(row, columns.clientCode))
		if !ok {
			continue
		}

		records = append(records, domain.Record{
			Entity:           entity,
			ClientCode:       clientCode,
			ClientName:       clientName,
			TotalReceivable:  parseAmount(cellAt(row, columns.totalReceivable)),
			Overdue90:        parseAmount(cellAt(row, columns.overdue90)),
			OverdueScheduled: parseAmount(cellAt(row, columns.overdueScheduled)),
			SourceFile:       snapshot.FileName,
			ExtractDate:      snapshot.ExtractDate,
		})
	}

	return records, nil
}

// columnIndexes guarda a posição de cada coluna obrigatória na aba
type columnIndexes struct {
	clientName       int
	clientCode       int
	totalReceivable  int
	overdue90        int
	overdueScheduled int
}

// mapColumns valida o cabeçalho contra o esquema de colunas obrigatórias.
// Colunas ausentes ou renomeadas produzem uma falha tipada em vez de
// propagação silenciosa de valores vazios.
func (l *Loader) mapColumns(sheetName string, header []string) (*columnIndexes, error) {
	indexByName := make(map[string]int, len(header))
	for i, name := range header {
		indexByName[strings.TrimSpace(name)] = i
	}

	columns := &columnIndexes{}
	required := []string{
		l.cfg.ColumnClientName,
		l.cfg.ColumnClientCode,
		l.cfg.ColumnTotalReceivable,
		l.cfg.ColumnOverdue90,
		l.cfg.ColumnOverdueScheduled,
	}
	targets := []*int{
		&columns.clientName,
		&columns.clientCode,
		&columns.totalReceivable,
		&columns.overdue90,
		&columns.overdueScheduled,
	}

	missing := make([]string, 0)
	for i, name := range required {
		index, ok := indexByName[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		*targets[i] = index
	}

	if len(missing) > 0 {
		return nil, &MissingColumnsError{SheetName: sheetName, Columns: missing}
	}

	return columns, nil
}

// cellAt retorna o valor da célula ou vazio quando a linha é curta demais.
// O excelize omite células vazias no fim da linha.
func cellAt(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return row[index]
}

// parseClientCode aceita apenas códigos estritamente numéricos. Valores
// fracionários inteiros (ex.: "1042.0") são aceitos por virem de células
// numéricas da planilha.
func parseClientCode(value string) (int64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	if code, err := strconv.ParseInt(value, 10, 64); err == nil {
		return code, true
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}

	return int64(f), true
}

// parseAmount converte o valor da célula em float64 com padrão zero: vazio,
// não numérico, NaN, infinito ou negativo viram 0.
func parseAmount(value string) float64 {
	value = strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	if value == "" {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}

	return f
}
