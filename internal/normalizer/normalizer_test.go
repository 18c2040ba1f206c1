package normalizer

import "testing"

func TestExtractShowName_PipeDelimiter(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{"Circo Beto Carrero | Domingo 16.MAR", "Circo Beto Carrero"},
		{"Circo Estoril|16/03", "Circo Estoril"},
		{"Circo do Povo | qualquer coisa | outra", "Circo do Povo"},
		{"  Circo Mirage  |", "Circo Mirage"},
	}
	for _, tc := range cases {
		if got := ExtractShowName(tc.raw); got != tc.want {
			t.Fatalf("ExtractShowName(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestExtractShowName_DateSuffixes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{"Circo Beto Carrero Domingo 16.MAR", "Circo Beto Carrero"},
		{"Circo Beto Carrero domingo 16/03", "Circo Beto Carrero"},
		{"Circo Estoril 16.MAR", "Circo Estoril"},
		{"Circo Estoril 16/03", "Circo Estoril"},
		{"Circo Estoril 16-03", "Circo Estoril"},
		{"Circo Estoril 16 MAR", "Circo Estoril"},
		{"Circo Estoril sábado", "Circo Estoril"},
		{"Circo Estoril SEXTA", "Circo Estoril"},
	}
	for _, tc := range cases {
		if got := ExtractShowName(tc.raw); got != tc.want {
			t.Fatalf("ExtractShowName(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestExtractShowName_InvalidInputs(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "nan", "NaN", "none", "None"} {
		if got := ExtractShowName(raw); got != ShowInvalid {
			t.Fatalf("ExtractShowName(%q) = %q, want %q", raw, got, ShowInvalid)
		}
	}
}

func TestExtractShowName_FullTextFallback(t *testing.T) {
	t.Parallel()

	// Sem padrão reconhecível: o texto completo é preservado
	if got := ExtractShowName("Circo Sem Data Conhecida"); got != "Circo Sem Data Conhecida" {
		t.Fatalf("unexpected: %q", got)
	}
	// Curto demais para ser um nome
	if got := ExtractShowName("ab"); got != ShowUnnamed {
		t.Fatalf("ExtractShowName(\"ab\") = %q, want %q", got, ShowUnnamed)
	}
}

func TestExtractShowName_ShortNameBeforeSuffix(t *testing.T) {
	t.Parallel()

	// O prefixo antes do padrão tem 2 caracteres; o padrão seguinte (dia da
	// semana no final) também não produz nome válido, então o texto completo
	// é devolvido.
	got := ExtractShowName("ab 16/03")
	if got != "ab 16/03" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestIsReserved(t *testing.T) {
	t.Parallel()

	if !IsReserved(ShowInvalid) || !IsReserved(ShowUnnamed) {
		t.Fatalf("reserved names not recognized")
	}
	if IsReserved("Circo Estoril") {
		t.Fatalf("real name flagged as reserved")
	}
}
