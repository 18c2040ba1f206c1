package normalizer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Valores reservados que sinalizam "descartar este registro" ao chamador.
// Não são nomes reais de circo.
const (
	ShowInvalid = "Evento Inválido"
	ShowUnnamed = "Evento Sem Nome"
)

// weekdays dias da semana em português, formas completas e abreviadas
const weekdays = `(?:segunda|terça|terca|quarta|quinta|sexta|sábado|sabado|domingo|seg|ter|qua|qui|sex|sab|dom)`

// datePatterns padrões de sufixo de data/dia da semana, em ordem decrescente
// de especificidade. O primeiro que casar define o fim do nome do circo.
var datePatterns = []*regexp.Regexp{
	// "Domingo 16.MAR"
	regexp.MustCompile(`(?i)\s+` + weekdays + `\s+\d{1,2}\.\w{3}`),
	// "Domingo 16/03"
	regexp.MustCompile(`(?i)\s+` + weekdays + `\s+\d{1,2}/\d{1,2}`),
	// "16.MAR"
	regexp.MustCompile(`(?i)\s+\d{1,2}\.\w{3}`),
	// "16/03"
	regexp.MustCompile(`(?i)\s+\d{1,2}/\d{1,2}`),
	// "16-03"
	regexp.MustCompile(`(?i)\s+\d{1,2}-\d{1,2}`),
	// "16 MAR"
	regexp.MustCompile(`(?i)\s+\d{1,2}\s+\w{3}`),
	// apenas dia da semana no final
	regexp.MustCompile(`(?i)\s+` + weekdays + `$`),
}

// trailingWeekday dia da semana solto no final do texto
var trailingWeekday = regexp.MustCompile(`(?i)\s+` + weekdays + `$`)

// ExtractShowName extrai o nome canônico do circo a partir do texto livre do
// evento. A barra vertical é o delimitador autoritativo quando presente;
// sufixos de data/dia da semana são o limite seguinte mais confiável; o texto
// completo é o último recurso para não descartar dados fora dos padrões.
func ExtractShowName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ShowInvalid
	}
	switch strings.ToLower(trimmed) {
	case "nan", "none":
		return ShowInvalid
	}

	// Caso 1: barra vertical — usar o texto antes da primeira barra
	if idx := strings.Index(trimmed, "|"); idx >= 0 {
		return strings.TrimSpace(trimmed[:idx])
	}

	// Caso 2: sufixo de data ou dia da semana
	for _, pattern := range datePatterns {
		if loc := pattern.FindStringIndex(trimmed); loc != nil {
			name := strings.TrimSpace(trimmed[:loc[0]])
			if utf8.RuneCountInString(name) > 2 {
				return name
			}
		}
	}

	// Caso 3: remover dia da semana solto no final
	cleaned := strings.TrimSpace(trailingWeekday.ReplaceAllString(trimmed, ""))
	if cleaned != trimmed && utf8.RuneCountInString(cleaned) > 2 {
		return cleaned
	}

	// Caso 4: texto completo, se longo o suficiente para ser um nome
	if utf8.RuneCountInString(trimmed) > 2 {
		return trimmed
	}

	return ShowUnnamed
}

// IsReserved informa se o nome retornado é um valor reservado de descarte
func IsReserved(name string) bool {
	return name == ShowInvalid || name == ShowUnnamed
}
