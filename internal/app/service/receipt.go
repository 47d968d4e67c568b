package service

import (
	"html/template"
	"strings"
	"time"

	"github.com/brewrain/brewrain-backend/internal/app/model"
	"github.com/brewrain/brewrain-backend/pkg/currency"
)

// The receipt is a self-contained printable document: inline styles only,
// and a script that triggers the platform print action on load and closes
// the view shortly after.
const receiptHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8"/>
<title>{{.StoreName}} – Struk</title>
<style>
  body { font-family: ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Ubuntu, Cantarell, Noto Sans, Helvetica, Arial; padding: 20px; }
  h1 { font-size: 18px; margin: 0 0 8px; }
  .muted { color: #6b7280; font-size: 12px }
  .line { height: 1px; background: #e5e7eb; margin: 10px 0 }
  table { width: 100%; border-collapse: collapse; font-size: 12px }
  th, td { text-align: left; padding: 6px 4px; }
  tfoot td { font-weight: 700 }
</style>
</head>
<body>
  <h1>{{.StoreName}} – Struk Pesanan</h1>
  <div class="muted">{{.Timestamp}}</div>
  <div style="margin-top:8px">
    <div><strong>Nama:</strong> {{.Name}}</div>
    <div><strong>WA:</strong> {{.Phone}}</div>
    <div><strong>Alamat:</strong> {{.Notes}}</div>
  </div>
  <div class="line"></div>
  <table>
    <thead>
      <tr><th>#</th><th>Menu</th><th>Qty</th><th>Harga</th><th>Subtotal</th></tr>
    </thead>
    <tbody>
      {{range .Lines}}<tr>
        <td>{{.Index}}</td>
        <td>{{.Name}} – {{.SizeLabel}}<br/><span class="muted">Es: {{.IceLevel}} • Gula: {{.SugarLevel}}{{if .Notes}} • {{.Notes}}{{end}}</span></td>
        <td>{{.Quantity}}</td>
        <td>{{.UnitPrice}}</td>
        <td>{{.Subtotal}}</td>
      </tr>{{end}}
    </tbody>
    <tfoot>
      <tr><td colspan="4">Total</td><td>{{.Total}}</td></tr>
    </tfoot>
  </table>
  <script>window.print(); setTimeout(function () { window.close(); }, 300);</script>
</body>
</html>`

var receiptTemplate = template.Must(template.New("receipt").Parse(receiptHTML))

// receiptTimestampFormat follows id-ID conventions: day first, dot-separated
// clock.
const receiptTimestampFormat = "02/01/2006 15.04.05"

type receiptLineView struct {
	Index      int
	Name       string
	SizeLabel  string
	IceLevel   string
	SugarLevel string
	Notes      string
	Quantity   int
	UnitPrice  string
	Subtotal   string
}

type receiptView struct {
	StoreName string
	Timestamp string
	Name      string
	Phone     string
	Notes     string
	Lines     []receiptLineView
	Total     string
}

// renderReceipt produces the printable document for an order at the given
// instant. User-entered text is HTML-escaped by the template.
func renderReceipt(order model.Order, storeName string, now time.Time) (string, error) {
	view := receiptView{
		StoreName: storeName,
		Timestamp: now.Format(receiptTimestampFormat),
		Name:      orDash(order.Customer.Name),
		Phone:     orDash(order.Customer.Phone),
		Notes:     orDash(order.Customer.Notes),
		Total:     currency.Format(order.Total),
	}

	for i, line := range order.Lines {
		view.Lines = append(view.Lines, receiptLineView{
			Index:      i + 1,
			Name:       line.Name,
			SizeLabel:  line.SizeLabel,
			IceLevel:   line.IceLevel,
			SugarLevel: line.SugarLevel,
			Notes:      line.Notes,
			Quantity:   line.Quantity,
			UnitPrice:  currency.Format(line.UnitPrice),
			Subtotal:   currency.Format(line.Subtotal()),
		})
	}

	var b strings.Builder
	if err := receiptTemplate.Execute(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}
