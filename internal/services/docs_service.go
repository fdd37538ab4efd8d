package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain/models"
	"github.com/Prathamraj05/railbooker-zenith/internal/repositories"
	"github.com/Prathamraj05/railbooker-zenith/internal/utils"
)

// DocsService renders the e-ticket PDF for a finalized booking.
type DocsService struct {
	Bookings  *repositories.BookingRepo
	RequestID string
	Loader    func(string) (models.Booking, error)
}

func (s DocsService) GenerateETicket(bookingID string) ([]byte, string, error) {
	booking, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "pnr="+booking.PNR)
	return buildETicketPDF(booking)
}

func (s DocsService) loadBooking(bookingID string) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	return s.Bookings.GetByID(bookingID)
}

func buildETicketPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RAILBOOKER E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("PNR            : %s", b.PNR),
		fmt.Sprintf("Train          : %s (%s)", b.Train.Name, b.Train.Number),
		fmt.Sprintf("Route          : %s (%s) -> %s (%s)", b.Train.From.Name, b.Train.From.Code, b.Train.To.Name, b.Train.To.Code),
		fmt.Sprintf("Date           : %s", b.Date),
		fmt.Sprintf("Departure      : %s  Arrival: %s", b.Train.DepartureTime, b.Train.ArrivalTime),
		fmt.Sprintf("Class          : %s", b.ClassType.Label()),
		fmt.Sprintf("Status         : %s", strings.ToUpper(string(b.Status))),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Passengers:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, p := range b.Passengers {
		berth := string(p.Berth)
		if berth == "" {
			berth = "no preference"
		}
		pdf.Cell(0, 6, fmt.Sprintf("%d) %s, %d, %s, berth: %s", i+1, p.Name, p.Age, p.Gender, berth))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	// core PDF fonts are cp1252; the rupee sign is not, so spell it out
	pdf.Cell(0, 8, "Total Fare: Rs. "+strings.TrimPrefix(utils.FormatINR(b.Fare), "₹"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Booked %s. Payment ref %s. Carry a valid photo ID for every passenger.",
		b.BookingTime.Format("2006-01-02 15:04"), b.PaymentID), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", b.PNR)
	return buf.Bytes(), filename, nil
}
