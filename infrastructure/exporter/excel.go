// Package exporter grava o relatório de reconciliação em um documento xlsx
// com uma aba por seção.
package exporter

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/receivables-recon-api/internal/config"
	"github.com/vfg2006/receivables-recon-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Nomes das abas do documento de saída
const (
	sheetFileInfo     = "Arquivos"
	sheetPivotSummary = "Resumo"
	sheetComparison   = "Calculo"
	sheetTopClients   = "Top20"
	sheetCurrentData  = "Base Semana Atual"
	sheetPreviousData = "Base Semana Anterior"
)

// ExcelExporter escreve as seções do relatório em abas de uma planilha xlsx
type ExcelExporter struct {
	cfg config.Report
}

func NewExcelExporter(cfg config.Report) *ExcelExporter {
	return &ExcelExporter{cfg: cfg}
}

// Write grava o relatório no diretório de saída e retorna o caminho do
// arquivo gerado. Seções vazias (comparação em modo de extrato único, base
// da semana anterior ausente) são omitidas do documento.
func (e *ExcelExporter) Write(report *domain.ReconciliationReport) (string, error) {
	if err := os.MkdirAll(e.cfg.OutputDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "erro ao criar o diretório de saída %q", e.cfg.OutputDir)
	}

	workbook := excelize.NewFile()
	defer func() {
		if err := workbook.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar a planilha do relatório")
		}
	}()

	if err := workbook.SetSheetName("Sheet1", sheetFileInfo); err != nil {
		return "", err
	}

	if err := e.writeFileInfo(workbook, report.FileInfo); err != nil {
		return "", err
	}

	if err := e.writePivotSummary(workbook, report.PivotSummary); err != nil {
		return "", err
	}

	if len(report.Comparison) > 0 {
		if err := e.writeComparison(workbook, report.Comparison); err != nil {
			return "", err
		}
	}

	if err := e.writeTopClients(workbook, report.TopClients); err != nil {
		return "", err
	}

	if err := e.writeRecords(workbook, sheetCurrentData, report.CurrentData); err != nil {
		return "", err
	}

	if len(report.PreviousData) > 0 {
		if err := e.writeRecords(workbook, sheetPreviousData, report.PreviousData); err != nil {
			return "", err
		}
	}

	outputPath := filepath.Join(e.cfg.OutputDir, e.cfg.OutputFilename)
	if err := workbook.SaveAs(outputPath); err != nil {
		return "", errors.Wrapf(err, "erro ao salvar o relatório em %q", outputPath)
	}

	logrus.WithField("path", outputPath).Info("Relatório de reconciliação gravado")

	return outputPath, nil
}

func (e *ExcelExporter) writeFileInfo(workbook *excelize.File, info []domain.SnapshotInfo) error {
	rows := [][]interface{}{
		{"Papel", "Arquivo", "Caminho", "Data do Extrato", "Semana"},
	}

	for _, item := range info {
		rows = append(rows, []interface{}{
			item.Role, item.FileName, item.FilePath, item.ExtractDate, item.WeekLabel,
		})
	}

	return writeSheet(workbook, sheetFileInfo, rows)
}

func (e *ExcelExporter) writePivotSummary(workbook *excelize.File, summary []domain.PivotSummaryRow) error {
	rows := [][]interface{}{
		{
			"Entidade",
			"Total (MM)", "Var Total %",
			"Vencido 90d (MM)", "Var Vencido 90d %",
			"Ratio 90d %", "Var Ratio 90d (pts)",
			"Venc Programado (MM)", "Var Venc Programado %",
			"Ratio Programado %", "Var Ratio Programado (pts)",
		},
	}

	for _, row := range summary {
		rows = append(rows, []interface{}{
			row.Entity,
			row.TotalMillions, row.TotalChangePct,
			row.Overdue90Millions, row.Overdue90ChangePct,
			row.Overdue90RatioPct, row.Overdue90RatioChangePts,
			row.OverdueScheduledMillions, row.OverdueScheduledChangePct,
			row.OverdueScheduledRatioPct, row.OverdueScheduledRatioChangePts,
		})
	}

	return writeSheet(workbook, sheetPivotSummary, rows)
}

func (e *ExcelExporter) writeComparison(workbook *excelize.File, comparison []domain.ComparisonRow) error {
	rows := [][]interface{}{
		{
			"Entidade",
			"Total Anterior", "Total Atual", "Variação Total",
			"Vencido 90d Anterior", "Vencido 90d Atual", "Variação Vencido 90d",
			"Ratio 90d", "Venc Programado", "Ratio Programado",
		},
	}

	for _, row := range comparison {
		rows = append(rows, []interface{}{
			row.Entity,
			row.TotalPrevious, row.TotalCurrent, row.TotalDelta,
			row.Overdue90Previous, row.Overdue90Current, row.Overdue90Delta,
			row.Overdue90Ratio, row.OverdueScheduled, row.OverdueScheduledRatio,
		})
	}

	return writeSheet(workbook, sheetComparison, rows)
}

func (e *ExcelExporter) writeTopClients(workbook *excelize.File, clients []domain.ClientRankingRow) error {
	rows := [][]interface{}{
		{
			"Cliente",
			"Total (MM)", "Venc Programado (MM)",
			"Ratio Programado %", "Ratio Anterior %",
			"Var Total %", "Var Ratio (pts)",
		},
	}

	for _, row := range clients {
		rows = append(rows, []interface{}{
			row.ClientName,
			row.TotalMillions, row.OverdueScheduledMillions,
			row.OverdueScheduledRatioPct, row.PreviousOverdueRatioPct,
			row.TotalChangePct, row.OverdueScheduledRatioChangePts,
		})
	}

	return writeSheet(workbook, sheetTopClients, rows)
}

func (e *ExcelExporter) writeRecords(workbook *excelize.File, sheetName string, records []domain.Record) error {
	rows := [][]interface{}{
		{
			"Entidade", "Codigo Cliente", "Cliente",
			"Total Receber", "Vencido 90 Dias", "Vencido Programado",
			"Arquivo", "Data do Extrato",
		},
	}

	for _, record := range records {
		rows = append(rows, []interface{}{
			record.Entity, record.ClientCode, record.ClientName,
			record.TotalReceivable, record.Overdue90, record.OverdueScheduled,
			record.SourceFile, record.ExtractDate.Format("2006-01-02"),
		})
	}

	return writeSheet(workbook, sheetName, rows)
}

// writeSheet cria a aba quando necessário e grava as linhas a partir de A1
func writeSheet(workbook *excelize.File, sheetName string, rows [][]interface{}) error {
	if index, err := workbook.GetSheetIndex(sheetName); err != nil {
		return err
	} else if index < 0 {
		if _, err := workbook.NewSheet(sheetName); err != nil {
			return err
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		if err := workbook.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	return nil
}
