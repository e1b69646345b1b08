package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteText(t *testing.T) {
	r, err := General(threeSales(t), DefaultRankingLimit)
	if err != nil {
		t.Fatalf("general: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteText(&buf, r); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"RELATÓRIO GERAL DE VENDAS",
		"Total Geral de Vendas: R$ 8.199,50",
		"Total de Transações:   3",
		"Melhor Mês:            2024-01 (R$ 8.199,50)",
		"Top 5 Vendedores (por Valor)",
		"  1. Maria Silva          - R$ 7.750,00",
		"  2. João Santos          - R$ 449,50",
		"  1. Mouse Logitech       - 5 unidades",
		"  - 2024-01: R$ 8.199,50",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestWriteTextEmpty(t *testing.T) {
	r, _ := General(nil, DefaultRankingLimit)
	var buf bytes.Buffer
	if err := WriteText(&buf, r); err != nil {
		t.Fatalf("write: %v", err)
	}
	if strings.Contains(buf.String(), "Melhor Mês:") {
		t.Fatalf("best month must be omitted without sales")
	}
	if !strings.Contains(buf.String(), "R$ 0,00") {
		t.Fatalf("expected zero total in:\n%s", buf.String())
	}
}

func TestWriteMarkdown(t *testing.T) {
	r, _ := General(threeSales(t), 2)
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, r); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"# Relatório Geral de Vendas",
		"* **Total Geral de Vendas:** R$ 8.199,50",
		"## Top 2 Vendedores (por Valor)",
		"1.  **Maria Silva** - R$ 7.750,00",
		"* **2024-01:** R$ 8.199,50",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestWriteSellerAndProductText(t *testing.T) {
	sr, _ := Seller(threeSales(t), "Maria Silva")
	var buf bytes.Buffer
	if err := WriteSellerText(&buf, sr); err != nil {
		t.Fatalf("write: %v", err)
	}
	for _, want := range []string{
		"Relatório de: Maria Silva",
		"Valor Médio/Transação: R$ 3.875,00",
		"    - Notebook Dell: 2 un.",
		"#3 2024-01-17 Teclado Mecânico 3 x R$ 250,00 = R$ 750,00",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("missing %q in:\n%s", want, buf.String())
		}
	}

	pr, _ := Product(threeSales(t), "Mouse Logitech")
	buf.Reset()
	if err := WriteProductText(&buf, pr); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "Receita: R$ 449,50") {
		t.Fatalf("unexpected product text:\n%s", buf.String())
	}
}

func TestWriteMonthlyText(t *testing.T) {
	mr, _ := Monthly(threeSales(t))
	var buf bytes.Buffer
	if err := WriteMonthlyText(&buf, mr); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "Melhor Mês: 2024-01 (R$ 8.199,50)") {
		t.Fatalf("unexpected monthly text:\n%s", buf.String())
	}
}
