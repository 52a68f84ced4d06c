package reconciling

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/receivables-recon-api/internal/config"
	"github.com/vfg2006/receivables-recon-api/internal/domain"
)

// Papéis usados na seção de proveniência do relatório
const (
	RoleCurrent      = "Semana atual (seg-sex)"
	RolePrevious     = "Semana anterior (seg-sex)"
	RoleUnclassified = "Não classificado"
)

// Service orquestra o pipeline de reconciliação: resolução dos extratos,
// carga dos registros, agregação, comparação, ranking e montagem do
// relatório. Cada execução é uma função pura das entradas mais a data de
// referência; nenhum estado sobrevive entre chamadas.
type Service struct {
	cfg      *config.Config
	resolver *SnapshotResolver
	loader   ExtractLoader
}

func NewService(cfg *config.Config, loader ExtractLoader) *Service {
	return &Service{
		cfg:      cfg,
		resolver: NewSnapshotResolver(cfg.Extract),
		loader:   loader,
	}
}

// Reconcile executa a reconciliação completa para a data de referência.
// Retorna o relatório completo ou um erro - nunca um resultado parcial.
func (s *Service) Reconcile(referenceDate time.Time) (*domain.ReconciliationReport, error) {
	logrus.WithField("reference_date", referenceDate.Format("2006-01-02")).
		Info("Iniciando reconciliação semanal de contas a receber")

	fileNames, err := s.loader.ListExtracts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar o diretório de extratos")
		return nil, err
	}

	resolution, err := s.resolver.Resolve(fileNames, referenceDate)
	if err != nil {
		logrus.WithError(err).Error("Erro na resolução dos extratos semanais")
		return nil, err
	}

	currentRecords := s.loadRecords(resolution.Current)
	if len(currentRecords) == 0 {
		logrus.WithField("file", resolution.Current.FileName).
			Error("Extrato da semana atual sem registros válidos")
		return nil, ErrEmptyCurrentData
	}

	var previousRecords []domain.Record
	if resolution.Previous != nil {
		previousRecords = s.loadRecords(resolution.Previous)
	}

	currentSummary := SummarizeByEntity(currentRecords)
	previousSummary := SummarizeByEntity(previousRecords)

	report := &domain.ReconciliationReport{
		ReferenceDate: referenceDate,
		GeneratedAt:   time.Now(),
		FileInfo:      buildFileInfo(resolution),
		PivotSummary:  BuildPivotSummary(currentSummary, previousSummary),
		Comparison:    BuildComparison(currentSummary, previousSummary),
		TopClients:    RankTopClients(currentRecords, previousRecords, s.cfg.Report.TopClients),
		CurrentData:   currentRecords,
		PreviousData:  previousRecords,
	}

	s.checkOverdueKPI(currentSummary)

	logrus.WithFields(logrus.Fields{
		"current_rows":  len(currentRecords),
		"previous_rows": len(previousRecords),
		"top_clients":   len(report.TopClients),
	}).Info("Reconciliação semanal concluída")

	return report, nil
}

// loadRecords degrada falhas de carga para um conjunto vazio com aviso: a
// execução continua com o que estiver disponível.
func (s *Service) loadRecords(snapshot *domain.Snapshot) []domain.Record {
	records, err := s.loader.LoadRecords(snapshot)
	if err != nil {
		logrus.WithError(err).WithField("file", snapshot.FileName).
			Warn("Falha ao carregar extrato - tratando como conjunto vazio")
		return nil
	}

	return records
}

// checkOverdueKPI compara o ratio de vencidos há 90 dias do total geral com
// a meta configurada e registra o resultado.
func (s *Service) checkOverdueKPI(summary []domain.EntitySummary) {
	target := s.cfg.Report.Overdue90KPITarget
	if target <= 0 {
		return
	}

	for _, row := range summary {
		if row.Entity != domain.TotalEntityName {
			continue
		}

		currentPct := row.Overdue90Ratio * 100
		logger := logrus.WithFields(logrus.Fields{
			"overdue_90_pct": currentPct,
			"kpi_target_pct": target,
		})

		if currentPct > target {
			logger.Warn("KPI de vencidos há 90 dias acima da meta")
		} else {
			logger.Info("KPI de vencidos há 90 dias dentro da meta")
		}

		return
	}
}

func buildFileInfo(resolution *domain.Resolution) []domain.SnapshotInfo {
	info := []domain.SnapshotInfo{
		{
			Role:        RoleCurrent,
			FileName:    resolution.Current.FileName,
			FilePath:    resolution.Current.FilePath,
			ExtractDate: resolution.Current.ExtractDate.Format("2006-01-02"),
			WeekLabel:   resolution.Current.WeekLabel,
		},
	}

	if resolution.Previous != nil {
		info = append(info, domain.SnapshotInfo{
			Role:        RolePrevious,
			FileName:    resolution.Previous.FileName,
			FilePath:    resolution.Previous.FilePath,
			ExtractDate: resolution.Previous.ExtractDate.Format("2006-01-02"),
			WeekLabel:   resolution.Previous.WeekLabel,
		})
	}

	for _, fileName := range resolution.Unclassified {
		info = append(info, domain.SnapshotInfo{
			Role:      RoleUnclassified,
			FileName:  fileName,
			WeekLabel: domain.WeekLabelUnknown,
		})
	}

	return info
}
