// Package invoice renders order invoices as PDF.
package invoice

import (
    "fmt"
    "io"

    "github.com/go-pdf/fpdf"

    "github.com/d60-Lab/desi-delights/internal/model"
)

// Render 渲染订单发票 PDF 到 w
func Render(w io.Writer, order *model.Order) error {
    pdf := fpdf.New("P", "mm", "A4", "")
    pdf.AddPage()

    pdf.SetFont("Helvetica", "B", 18)
    pdf.Cell(0, 12, "Desi Delights - Invoice")
    pdf.Ln(14)

    pdf.SetFont("Helvetica", "", 11)
    pdf.Cell(0, 7, fmt.Sprintf("Order No: %s", order.OrderNo))
    pdf.Ln(7)
    pdf.Cell(0, 7, fmt.Sprintf("Date: %s", order.CreatedAt.Format("02 Jan 2006 15:04")))
    pdf.Ln(7)
    pdf.Cell(0, 7, fmt.Sprintf("Status: %s    Payment: %s", order.Status, order.PaymentMethod))
    pdf.Ln(12)

    // 明细表头
    pdf.SetFont("Helvetica", "B", 11)
    pdf.CellFormat(90, 8, "Item", "1", 0, "L", false, 0, "")
    pdf.CellFormat(25, 8, "Qty", "1", 0, "R", false, 0, "")
    pdf.CellFormat(35, 8, "Unit Price", "1", 0, "R", false, 0, "")
    pdf.CellFormat(35, 8, "Amount", "1", 1, "R", false, 0, "")

    pdf.SetFont("Helvetica", "", 11)
    for _, item := range order.Items {
        name := item.Name
        if item.VariantName != "" {
            name += " (" + item.VariantName + ")"
        }
        pdf.CellFormat(90, 8, name, "1", 0, "L", false, 0, "")
        pdf.CellFormat(25, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
        pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
        pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.UnitPrice*float64(item.Quantity)), "1", 1, "R", false, 0, "")
    }

    pdf.SetFont("Helvetica", "B", 11)
    pdf.CellFormat(150, 8, "Total", "1", 0, "R", false, 0, "")
    pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", order.Total), "1", 1, "R", false, 0, "")

    return pdf.Output(w)
}
