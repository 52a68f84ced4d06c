package reconciling

import (
	"path/filepath"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/receivables-recon-api/internal/config"
	"github.com/vfg2006/receivables-recon-api/internal/domain"
)

// datePattern associa uma expressão regular de nome de arquivo ao layout de
// data embutido no nome.
type datePattern struct {
	re     *regexp.Regexp
	layout string
}

// SnapshotResolver classifica os arquivos de extrato por semana de negócio e
// seleciona os representantes da semana atual e da anterior, aplicando a
// cascata de fallback quando o par ideal não existe.
type SnapshotResolver struct {
	dataDir  string
	patterns []datePattern
}

func NewSnapshotResolver(cfg config.Extract) *SnapshotResolver {
	prefix := regexp.QuoteMeta(cfg.FilePrefix)
	ext := regexp.QuoteMeta(cfg.FileExtension)

	return &SnapshotResolver{
		dataDir: cfg.DataDir,
		patterns: []datePattern{
			{re: regexp.MustCompile(`^` + prefix + `(\d{8})` + ext + `$`), layout: "20060102"},
			{re: regexp.MustCompile(`^` + prefix + `\((\d{4}-\d{2}-\d{2})\)` + ext + `$`), layout: "2006-01-02"},
			{re: regexp.MustCompile(`^` + prefix + `(\d{4}-\d{2}-\d{2})` + ext + `$`), layout: "2006-01-02"},
		},
	}
}

// ExtractDateFromFileName extrai a data embutida no nome do arquivo. Retorna
// falso quando o nome não casa com nenhum padrão aceito; o arquivo segue
// para o grupo de não classificados, nunca para um erro.
func (r *SnapshotResolver) ExtractDateFromFileName(fileName string) (time.Time, bool) {
	for _, pattern := range r.patterns {
		match := pattern.re.FindStringSubmatch(fileName)
		if match == nil {
			continue
		}

		date, err := time.Parse(pattern.layout, match[1])
		if err != nil {
			continue
		}

		return date, true
	}

	return time.Time{}, false
}

// Resolve seleciona os extratos da semana atual e da anterior a partir do
// conjunto de nomes de arquivos, usando a data de referência informada.
// A ausência total de arquivos classificáveis é falha dura da execução.
func (r *SnapshotResolver) Resolve(fileNames []string, referenceDate time.Time) (*domain.Resolution, error) {
	var (
		classified   []*domain.Snapshot
		currentPool  []*domain.Snapshot
		previousPool []*domain.Snapshot
		unclassified []string
	)

	for _, fileName := range fileNames {
		extractDate, ok := r.ExtractDateFromFileName(fileName)
		if !ok {
			logrus.WithField("file", fileName).Warn("Não foi possível extrair a data do nome do arquivo")
			unclassified = append(unclassified, fileName)
			continue
		}

		weekDiff := ClassifyWeek(extractDate, referenceDate)
		snapshot := &domain.Snapshot{
			FileName:    fileName,
			FilePath:    filepath.Join(r.dataDir, fileName),
			ExtractDate: extractDate,
			WeekLabel:   WeekLabelFor(weekDiff),
		}

		classified = append(classified, snapshot)

		switch weekDiff {
		case 0:
			currentPool = append(currentPool, snapshot)
		case 1:
			previousPool = append(previousPool, snapshot)
		}
	}

	resolution := &domain.Resolution{
		Current:      latestSnapshot(currentPool),
		Previous:     latestSnapshot(previousPool),
		Unclassified: unclassified,
	}

	// Cascata de fallback: lista de regras priorizadas, cada uma um
	// predicado mais um seletor, avaliadas em ordem.
	rules := []resolutionRule{
		{
			name: "semana atual ausente: usar o arquivo mais recente do conjunto",
			applies: func(res *domain.Resolution) bool {
				return res.Current == nil && len(classified) > 0
			},
			apply: func(res *domain.Resolution) {
				res.Current = latestSnapshot(classified)
			},
		},
		{
			name: "semana anterior ausente ou igual à atual: usar o mais recente restante",
			applies: func(res *domain.Resolution) bool {
				if res.Current == nil {
					return false
				}
				return res.Previous == nil || res.Previous.FileName == res.Current.FileName
			},
			apply: func(res *domain.Resolution) {
				res.Previous = latestSnapshot(excludeSnapshot(classified, res.Current))
			},
		},
	}

	for _, rule := range rules {
		if !rule.applies(resolution) {
			continue
		}

		rule.apply(resolution)
		logrus.WithField("rule", rule.name).Info("Regra de fallback da resolução de extratos aplicada")
	}

	if resolution.Current == nil {
		return nil, ErrNoCurrentSnapshot
	}

	logFields := logrus.Fields{
		"current_file": resolution.Current.FileName,
		"current_date": resolution.Current.ExtractDate.Format("2006-01-02"),
	}
	if resolution.Previous != nil {
		logFields["previous_file"] = resolution.Previous.FileName
		logFields["previous_date"] = resolution.Previous.ExtractDate.Format("2006-01-02")
	} else {
		logrus.Warn("Sem extrato da semana anterior utilizável - análise em modo de extrato único")
	}
	logrus.WithFields(logFields).Info("Extratos resolvidos")

	return resolution, nil
}

// resolutionRule é um passo da cascata de fallback da resolução
type resolutionRule struct {
	name    string
	applies func(*domain.Resolution) bool
	apply   func(*domain.Resolution)
}

// latestSnapshot escolhe o extrato de data máxima; empates ficam com o
// último visto, já que a data sozinha determina o significado de negócio.
func latestSnapshot(snapshots []*domain.Snapshot) *domain.Snapshot {
	var latest *domain.Snapshot

	for _, snapshot := range snapshots {
		if latest == nil || !snapshot.ExtractDate.Before(latest.ExtractDate) {
			latest = snapshot
		}
	}

	return latest
}

func excludeSnapshot(snapshots []*domain.Snapshot, excluded *domain.Snapshot) []*domain.Snapshot {
	remaining := make([]*domain.Snapshot, 0, len(snapshots))

	for _, snapshot := range snapshots {
		if snapshot.FileName == excluded.FileName {
			continue
		}
		remaining = append(remaining, snapshot)
	}

	return remaining
}
