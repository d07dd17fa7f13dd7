package finapigo

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// writeStatementPDF renders a user's statement history and derived
// balance as a PDF table.
func writeStatementPDF(w io.Writer, usr *User, sts []Statement, balance decimal.Decimal) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Account Statement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Account Statement")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("%s <%s>", usr.Name, usr.Email))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("User ID: %s", usr.ID))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(45, 8, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Kind", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Amount", "1", 0, "R", false, 0, "")
	pdf.CellFormat(90, 8, "Description", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, st := range sts {
		pdf.CellFormat(45, 7, st.CreatedAt.Format("2006-01-02 15:04:05"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, string(st.Kind), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, st.Amount.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(90, 7, st.Description, "1", 1, "L", false, 0, "")
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Balance: %s", balance.String()))

	return pdf.Output(w)
}
