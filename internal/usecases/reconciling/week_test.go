package reconciling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestWeekStartMonday(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "Segunda-feira é o próprio início da semana",
			input:    date(2024, time.January, 15),
			expected: date(2024, time.January, 15),
		},
		{
			name:     "Quarta-feira volta para a segunda da mesma semana",
			input:    date(2024, time.January, 17),
			expected: date(2024, time.January, 15),
		},
		{
			name:     "Sexta-feira volta para a segunda da mesma semana",
			input:    date(2024, time.January, 19),
			expected: date(2024, time.January, 15),
		},
		{
			name:     "Sábado pertence à semana da segunda SEGUINTE",
			input:    date(2024, time.January, 20),
			expected: date(2024, time.January, 22),
		},
		{
			name:     "Domingo pertence à semana da segunda SEGUINTE",
			input:    date(2024, time.January, 21),
			expected: date(2024, time.January, 22),
		},
		{
			name:     "Horário é descartado",
			input:    time.Date(2024, time.January, 17, 23, 45, 0, 0, time.UTC),
			expected: date(2024, time.January, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeekStartMonday(tt.input))
		})
	}
}

func TestWeekStartMonday_Idempotente(t *testing.T) {
	// Para qualquer data, weekStart(weekStart(d)) == weekStart(d)
	start := date(2024, time.January, 1)
	for day := 0; day < 60; day++ {
		d := start.AddDate(0, 0, day)
		monday := WeekStartMonday(d)
		assert.Equal(t, monday, WeekStartMonday(monday), "data de entrada: %s", d.Format("2006-01-02"))
		assert.Equal(t, time.Monday, monday.Weekday())
	}
}

func TestClassifyWeek(t *testing.T) {
	reference := date(2024, time.January, 17) // quarta-feira

	tests := []struct {
		name     string
		extract  time.Time
		expected int
	}{
		{name: "Mesma semana", extract: date(2024, time.January, 15), expected: 0},
		{name: "Sexta da mesma semana", extract: date(2024, time.January, 19), expected: 0},
		{name: "Semana anterior", extract: date(2024, time.January, 10), expected: 1},
		{name: "Duas semanas atrás", extract: date(2024, time.January, 3), expected: 2},
		{name: "Semana seguinte", extract: date(2024, time.January, 24), expected: -1},
		{name: "Sábado anterior conta como semana atual", extract: date(2024, time.January, 13), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyWeek(tt.extract, reference))
		})
	}
}

func TestWeekLabelFor(t *testing.T) {
	assert.Equal(t, "semana atual", WeekLabelFor(0))
	assert.Equal(t, "semana anterior", WeekLabelFor(1))
	assert.Equal(t, "3 semanas atrás", WeekLabelFor(3))
	assert.Equal(t, "2 semanas à frente", WeekLabelFor(-2))
}
