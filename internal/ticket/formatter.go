// Package ticket renders orders for 80mm thermal receipt stock.
package ticket

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"

	"driwich/internal/domain"
)

const (
	Width     = 32
	NameWidth = 20
	boxInner  = Width - 2
	bullet    = "• "
)

type Formatter struct {
	shopName string
	cond     *runewidth.Condition
}

func NewFormatter(shopName string) *Formatter {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false

	return &Formatter{shopName: shopName, cond: cond}
}

// Format lays the order out in fixed columns. Names longer than NameWidth
// are cut, never wrapped.
func (f *Formatter) Format(order domain.Order) string {
	separator := strings.Repeat("-", Width)
	priceWidth := Width - f.cond.StringWidth(bullet) - NameWidth

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("╔" + strings.Repeat("═", boxInner) + "╗\n")
	b.WriteString("║" + f.center(f.shopName, boxInner) + "║\n")
	b.WriteString("╚" + strings.Repeat("═", boxInner) + "╝\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "ORDER #%03d\n", order.OrderNumber)
	b.WriteString(order.CreatedAt.Format("15:04") + "\n")
	b.WriteString("\n")
	b.WriteString(separator + "\n")
	b.WriteString("ITEMS:\n")
	for _, item := range order.Items {
		b.WriteString(bullet)
		b.WriteString(f.fit(item.Name, NameWidth))
		b.WriteString(f.cond.FillLeft(Price(item.Price), priceWidth))
		b.WriteString("\n")
	}
	b.WriteString(separator + "\n")
	b.WriteString("\n")
	label := "TOTAL:"
	b.WriteString(label + f.cond.FillLeft(Price(order.TotalAmount), Width-len(label)) + "\n")
	b.WriteString("\n")
	b.WriteString("Thank you!\n")
	b.WriteString("\n")

	return b.String()
}

// Price renders an amount as dollars with two decimals.
func Price(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func (f *Formatter) fit(s string, width int) string {
	return f.cond.FillRight(f.cond.Truncate(s, width, ""), width)
}

func (f *Formatter) center(s string, width int) string {
	s = f.cond.Truncate(s, width, "")
	pad := width - f.cond.StringWidth(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
