package mail

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/shopfront/shopfront/internal/model"
)

// OrderConfirmationSubject is the subject line of every confirmation email.
const OrderConfirmationSubject = "Your Order Confirmation"

// orderConfirmationTmpl renders the HTML body of the confirmation email.
// html/template escapes line-item names, so customer input cannot inject markup.
var orderConfirmationTmpl = template.Must(template.New("order_confirmation").Funcs(template.FuncMap{
	"money": formatMoney,
}).Parse(`<h1>Thank you for your purchase!</h1>
<p>Dear Customer,</p>
<p>We have received your order and it will be processed soon.</p>
<h3>Your Order Summary:</h3>
<ul>
{{- range .Items}}
  <li>
    <strong>{{.Name}}</strong><br>
    Price: ${{money .Price}}<br>
    Quantity: {{.Quantity}}<br>
    Subtotal: ${{money .Subtotal}}
  </li>
{{- end}}
</ul>
<p><strong>Total Amount: ${{money .TotalAmount}}</strong></p>
<p>If you have any questions, feel free to contact us.</p>
`))

// RenderOrderConfirmation renders the order confirmation body for an order.
// Each line item shows a subtotal of price multiplied by quantity at two
// decimals. The total amount is the caller-supplied figure; it is presented,
// not recomputed.
func RenderOrderConfirmation(order model.Order) (string, error) {
	var b strings.Builder
	if err := orderConfirmationTmpl.Execute(&b, order); err != nil {
		return "", fmt.Errorf("failed to render order confirmation: %w", err)
	}
	return b.String(), nil
}

// formatMoney renders an amount with two-decimal presentation.
func formatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
