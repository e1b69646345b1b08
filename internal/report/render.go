package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"vendas/internal/core"
)

const ruleWidth = 40

var (
	doubleRule = strings.Repeat("=", ruleWidth)
	singleRule = strings.Repeat("-", ruleWidth)
)

func writeLines(w io.Writer, lines []string) error {
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// WriteText renders the general report as plain text.
func WriteText(w io.Writer, r GeneralReport) error {
	lines := []string{
		doubleRule,
		"      RELATÓRIO GERAL DE VENDAS",
		doubleRule,
		"",
		"Resumo Geral:",
		"  - Total Geral de Vendas: " + core.FormatCurrency(r.TotalValue),
		fmt.Sprintf("  - Total de Transações:   %d", r.SaleCount),
	}
	if r.BestMonth != nil {
		lines = append(lines, fmt.Sprintf("  - Melhor Mês:            %s (%s)", r.BestMonth.Month, core.FormatCurrency(r.BestMonth.Total)))
	}

	lines = append(lines, "", singleRule, fmt.Sprintf("Top %d Vendedores (por Valor)", r.RankingLimit), singleRule)
	for i, e := range r.TopSellers {
		lines = append(lines, fmt.Sprintf("  %d. %-20s - %s", i+1, e.Key, core.FormatCurrency(e.Value)))
	}

	lines = append(lines, "", singleRule, fmt.Sprintf("Top %d Produtos (por Quantidade)", r.RankingLimit), singleRule)
	for i, e := range r.TopProducts {
		lines = append(lines, fmt.Sprintf("  %d. %-20s - %d unidades", i+1, e.Key, e.Value))
	}

	lines = append(lines, "", singleRule, "Vendas por Mês", singleRule)
	for _, m := range r.Months() {
		lines = append(lines, fmt.Sprintf("  - %s: %s", m.Month, core.FormatCurrency(m.Total)))
	}

	lines = append(lines, "", doubleRule)
	return writeLines(w, lines)
}

// WriteMarkdown renders the general report as Markdown.
func WriteMarkdown(w io.Writer, r GeneralReport) error {
	lines := []string{
		"# Relatório Geral de Vendas",
		"",
		"## Resumo Geral",
		"",
		"* **Total Geral de Vendas:** " + core.FormatCurrency(r.TotalValue),
		fmt.Sprintf("* **Total de Transações:** %d", r.SaleCount),
	}
	if r.BestMonth != nil {
		lines = append(lines, fmt.Sprintf("* **Melhor Mês:** %s (%s)", r.BestMonth.Month, core.FormatCurrency(r.BestMonth.Total)))
	}

	lines = append(lines, "", fmt.Sprintf("## Top %d Vendedores (por Valor)", r.RankingLimit), "")
	for i, e := range r.TopSellers {
		lines = append(lines, fmt.Sprintf("%d.  **%s** - %s", i+1, e.Key, core.FormatCurrency(e.Value)))
	}

	lines = append(lines, "", fmt.Sprintf("## Top %d Produtos (por Quantidade)", r.RankingLimit), "")
	for i, e := range r.TopProducts {
		lines = append(lines, fmt.Sprintf("%d.  **%s** - %d unidades", i+1, e.Key, e.Value))
	}

	lines = append(lines, "", "## Vendas por Mês", "")
	for _, m := range r.Months() {
		lines = append(lines, fmt.Sprintf("* **%s:** %s", m.Month, core.FormatCurrency(m.Total)))
	}
	return writeLines(w, lines)
}

// WriteSellerText renders a seller report as plain text.
func WriteSellerText(w io.Writer, r SellerReport) error {
	lines := []string{
		"Relatório de: " + r.Seller,
		"  - Total Vendido: " + core.FormatCurrency(r.TotalValue),
		fmt.Sprintf("  - Nº de Transações: %d", r.SaleCount),
		"  - Valor Médio/Transação: " + core.FormatCurrency(r.AverageValue),
		"",
		"  Produtos vendidos (Quantidade):",
	}
	for _, name := range sortedKeys(r.ProductQuantities) {
		lines = append(lines, fmt.Sprintf("    - %s: %d un.", name, r.ProductQuantities[name]))
	}
	lines = append(lines, "", "  Vendas:")
	lines = append(lines, saleLines(r.Sales)...)
	return writeLines(w, lines)
}

// WriteProductText renders a product report as plain text.
func WriteProductText(w io.Writer, r ProductReport) error {
	lines := []string{
		"Relatório do produto: " + r.Product,
		"  - Receita: " + core.FormatCurrency(r.Revenue),
		fmt.Sprintf("  - Quantidade Vendida: %d", r.TotalQuantity),
		fmt.Sprintf("  - Nº de Transações: %d", r.SaleCount),
		"",
		"  Vendedores (Quantidade):",
	}
	for _, name := range sortedKeys(r.SellerQuantities) {
		lines = append(lines, fmt.Sprintf("    - %s: %d un.", name, r.SellerQuantities[name]))
	}
	lines = append(lines, "", "  Vendas:")
	lines = append(lines, saleLines(r.Sales)...)
	return writeLines(w, lines)
}

// WriteMonthlyText renders the monthly report as plain text.
func WriteMonthlyText(w io.Writer, r MonthlyReport) error {
	lines := []string{"Vendas por Mês", singleRule}
	for _, m := range r.Months() {
		lines = append(lines, fmt.Sprintf("  - %s: %s", m.Month, core.FormatCurrency(m.Total)))
	}
	lines = append(lines, singleRule,
		fmt.Sprintf("Melhor Mês: %s (%s)", r.BestMonth.Month, core.FormatCurrency(r.BestMonth.Total)))
	return writeLines(w, lines)
}

func saleLines(sales []core.Sale) []string {
	out := make([]string, 0, len(sales))
	for _, s := range sales {
		out = append(out, fmt.Sprintf("    #%d %s %s %d x %s = %s",
			s.ID, s.Date, s.Product, s.Quantity,
			core.FormatCurrency(s.UnitPrice), core.FormatCurrency(s.TotalValue)))
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
