package bankapp

import (
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// renderStatement writes the account's ledger as a PDF statement. The
// running balance column is recomputed row by row from the entries
// themselves so the document can never disagree with the ledger.
func renderStatement(w io.Writer, acct *Account, txns []Transaction) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Account Statement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Account Statement")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Account: "+acct.AcctNum)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Holder: "+acct.Username)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(45, 8, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(70, 8, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, "Amount", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Balance", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	running := decimal.Zero
	for _, t := range txns {
		running = running.Add(t.Amount)
		pdf.CellFormat(45, 8, t.Timestamp.Format("2006-01-02 15:04:05"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 8, t.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, t.Amount.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, running.String(), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, "Closing balance: "+running.String())

	return pdf.Output(w)
}
