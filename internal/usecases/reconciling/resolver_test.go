package reconciling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/receivables-recon-api/internal/config"
)

func testExtractConfig() config.Extract {
	return config.Extract{
		DataDir:       "/data/receivables",
		FilePrefix:    "ContasReceber",
		FileExtension: ".xlsx",
	}
}

func TestExtractDateFromFileName(t *testing.T) {
	resolver := NewSnapshotResolver(testExtractConfig())

	tests := []struct {
		name     string
		fileName string
		expected time.Time
		ok       bool
	}{
		{
			name:     "Data compacta de oito dígitos",
			fileName: "ContasReceber20240115.xlsx",
			expected: date(2024, time.January, 15),
			ok:       true,
		},
		{
			name:     "Data ISO entre parênteses",
			fileName: "ContasReceber(2024-01-15).xlsx",
			expected: date(2024, time.January, 15),
			ok:       true,
		},
		{
			name:     "Data ISO com hífens",
			fileName: "ContasReceber2024-01-15.xlsx",
			expected: date(2024, time.January, 15),
			ok:       true,
		},
		{
			name:     "Prefixo errado não classifica",
			fileName: "Relatorio20240115.xlsx",
			ok:       false,
		},
		{
			name:     "Data inválida não classifica",
			fileName: "ContasReceber2024-13-45.xlsx",
			ok:       false,
		},
		{
			name:     "Sem data não classifica",
			fileName: "ContasReceber.xlsx",
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractDate, ok := resolver.ExtractDateFromFileName(tt.fileName)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, extractDate)
			}
		})
	}
}

func TestResolve_ParIdealDeSemanas(t *testing.T) {
	resolver := NewSnapshotResolver(testExtractConfig())
	reference := date(2024, time.January, 17) // quarta-feira

	// Um arquivo na semana de referência e outro exatamente 7 dias antes:
	// a seleção independe da ordem dos nomes.
	fileNames := [][]string{
		{"ContasReceber20240116.xlsx", "ContasReceber20240109.xlsx"},
		{"ContasReceber20240109.xlsx", "ContasReceber20240116.xlsx"},
	}

	for _, files := range fileNames {
		resolution, err := resolver.Resolve(files, reference)
		require.NoError(t, err)

		assert.Equal(t, "ContasReceber20240116.xlsx", resolution.Current.FileName)
		assert.Equal(t, "semana atual", resolution.Current.WeekLabel)
		require.NotNil(t, resolution.Previous)
		assert.Equal(t, "ContasReceber20240109.xlsx", resolution.Previous.FileName)
		assert.Equal(t, "semana anterior", resolution.Previous.WeekLabel)
		assert.False(t, resolution.SingleSnapshotMode())
	}
}

func TestResolve_MaisRecentePorSemana(t *testing.T) {
	resolver := NewSnapshotResolver(testExtractConfig())
	reference := date(2024, time.January, 17)

	resolution, err := resolver.Resolve([]string{
		"ContasReceber20240115.xlsx",
		"ContasReceber20240116.xlsx", // mais recente da semana atual
		"ContasReceber20240108.xlsx",
		"ContasReceber20240110.xlsx", // mais recente da semana anterior
	}, reference)
	require.NoError(t, err)

	assert.Equal(t, "ContasReceber20240116.xlsx", resolution.Current.FileName)
	assert.Equal(t, "ContasReceber20240110.xlsx", resolution.Previous.FileName)
}

func TestResolve_FallbackSemSemanaAtual(t *testing.T) {
	resolver := NewSnapshotResolver(testExtractConfig())
	reference := date(2024, time.January, 17)

	// Nenhum arquivo na semana de referência: o mais recente vira o atual e
	// o segundo mais recente vira o anterior.
	resolution, err := resolver.Resolve([]string{
		"ContasReceber20231220.xlsx",
		"ContasReceber20240103.xlsx",
		"ContasReceber20240105.xlsx",
	}, reference)
	require.NoError(t, err)

	assert.Equal(t, "ContasReceber20240105.xlsx", resolution.Current.FileName)
	require.NotNil(t, resolution.Previous)
	assert.Equal(t, "ContasReceber20240103.xlsx", resolution.Previous.FileName)
}

func TestResolve_ExtratoUnico(t *testing.T) {
	resolver := NewSnapshotResolver(testExtractConfig())
	reference := date(2024, time.January, 17)

	resolution, err := resolver.Resolve([]string{"ContasReceber20240116.xlsx"}, reference)
	require.NoError(t, err)

	assert.Equal(t, "ContasReceber20240116.xlsx", resolution.Current.FileName)
	assert.Nil(t, resolution.Previous)
	assert.True(t, resolution.SingleSnapshotMode())
}

func TestResolve_AnteriorIgualAoAtualEReselecionado(t *testing.T) {
	resolver := NewSnapshotResolver(testExtractConfig())
	reference := date(2024, time.January, 17)

	// Ambos os arquivos estão na semana anterior: o fallback promove o mais
	// recente a semana atual, o que deixaria o anterior igual ao atual; a
	// regra seguinte reseleciona o anterior entre os restantes.
	resolution, err := resolver.Resolve([]string{
		"ContasReceber20240110.xlsx",
		"ContasReceber20240108.xlsx",
	}, reference)
	require.NoError(t, err)

	assert.Equal(t, "ContasReceber20240110.xlsx", resolution.Current.FileName)
	require.NotNil(t, resolution.Previous)
	assert.Equal(t, "ContasReceber20240108.xlsx", resolution.Previous.FileName)
	assert.NotEqual(t, resolution.Current.FileName, resolution.Previous.FileName)
}

func TestResolve_SemArquivosClassificaveis(t *testing.T) {
	resolver := NewSnapshotResolver(testExtractConfig())

	_, err := resolver.Resolve([]string{"notas.txt", "Relatorio.xlsx"}, date(2024, time.January, 17))
	assert.ErrorIs(t, err, ErrNoCurrentSnapshot)

	_, err = resolver.Resolve(nil, date(2024, time.January, 17))
	assert.ErrorIs(t, err, ErrNoCurrentSnapshot)
}

func TestResolve_NaoClassificadosSaoRetidos(t *testing.T) {
	resolver := NewSnapshotResolver(testExtractConfig())

	resolution, err := resolver.Resolve([]string{
		"ContasReceber20240116.xlsx",
		"backup_antigo.xlsx",
	}, date(2024, time.January, 17))
	require.NoError(t, err)

	assert.Equal(t, []string{"backup_antigo.xlsx"}, resolution.Unclassified)
}
