package dateutil

import (
	"strings"
	"time"
)

// DisplayLayout formato brasileiro de exibição de datas
const DisplayLayout = "02/01/2006"

// DateMissing valor exibido quando a data do evento não foi informada
const DateMissing = "Não informado"

// brLayouts formatos explícitos dia-primeiro, em ordem de tentativa
var brLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"02/01/06",
}

// genericLayouts formatos adicionais aceitos no fallback dia-primeiro
var genericLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"02/01/2006 15:04:05",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseBR interpreta uma data em formato brasileiro (dia primeiro).
// Tenta os formatos explícitos em ordem e depois um fallback genérico.
func ParseBR(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range brLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// FormatBR formata uma data como DD/MM/YYYY
func FormatBR(t time.Time) string {
	return t.Format(DisplayLayout)
}

// DateOnly descarta o componente de hora, mantendo apenas a data
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WithinInclusive verifica se date está dentro de [start, end], inclusivo
func WithinInclusive(date, start, end time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(start)) && !d.After(DateOnly(end))
}
