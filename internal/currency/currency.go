package currency

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// plainNumber valor já numérico (célula numérica serializada pelo excelize)
var plainNumber = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// groupedInt inteiro com separador de milhar brasileiro ("1.234", "12.345.678")
var groupedInt = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)

// Parse converte uma representação monetária heterogênea (string brasileira
// "R$ 1.234,56" ou número) para um valor decimal canônico. Entradas inválidas
// resultam em zero; a função nunca falha.
func Parse(value string) decimal.Decimal {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return decimal.Zero
	}
	switch strings.ToLower(cleaned) {
	case "nan", "none":
		return decimal.Zero
	}

	// Grupos de três dígitos separados por ponto são milhar, não decimal
	if groupedInt.MatchString(cleaned) {
		if d, err := decimal.NewFromString(strings.ReplaceAll(cleaned, ".", "")); err == nil {
			return d
		}
		return decimal.Zero
	}

	// Valores já numéricos passam direto, preservando o ponto decimal
	if plainNumber.MatchString(cleaned) {
		if d, err := decimal.NewFromString(cleaned); err == nil {
			return d
		}
		return decimal.Zero
	}

	// Remover símbolo de moeda, separador de milhar e converter vírgula decimal
	cleaned = strings.ReplaceAll(cleaned, "R$", "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	// Manter apenas dígitos e ponto
	var b strings.Builder
	for _, r := range cleaned {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned = b.String()
	if cleaned == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatDisplay formata um valor decimal para exibição no padrão brasileiro:
// "R$ 1.234,56" com milhar separado por ponto e decimal por vírgula.
func FormatDisplay(value decimal.Decimal) string {
	fixed := value.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart := parts[0]
	fracPart := "00"
	if len(parts) == 2 {
		fracPart = parts[1]
	}

	// Inserir separador de milhar a cada três dígitos
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "R$ " + strings.Join(groups, ".") + "," + fracPart
	if negative {
		out = "R$ -" + strings.Join(groups, ".") + "," + fracPart
	}
	return out
}
