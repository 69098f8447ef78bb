package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cablepay-be-svc/internal/models"
	"cablepay-be-svc/internal/repository"
	"cablepay-be-svc/pkg/logger"

	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Payments"

// ExportService defines the payment register export
type ExportService interface {
	// ExportPayments renders the yearly register of the homes whose status for month matches status
	ExportPayments(ctx context.Context, month, year int, status string) ([]byte, string, error)
}

// exportService implements ExportService
type exportService struct {
	homeRepo    repository.HomeRepository
	paymentRepo repository.PaymentRepository
	logger      *logger.Logger
	now         Clock
}

// NewExportService creates a new export service
func NewExportService(homeRepo repository.HomeRepository, paymentRepo repository.PaymentRepository, logger *logger.Logger, now Clock) ExportService {
	if now == nil {
		now = SystemClock
	}
	return &exportService{
		homeRepo:    homeRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
		now:         now,
	}
}

// ExportPayments builds an xlsx workbook with one row per home and one column per month of the year.
// A paid month shows its paid date, an unpaid month up to the reporting limit shows "-".
func (s *exportService) ExportPayments(ctx context.Context, month, year int, status string) ([]byte, string, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, "", err
	}
	statusFilter, err := normalizeStatusFilter(status)
	if err != nil {
		return nil, "", err
	}

	homes, err := s.homeRepo.ListHomes(ctx)
	if err != nil {
		return nil, "", storageError("list homes", err)
	}
	payments, err := s.paymentRepo.ListPaymentsByYear(ctx, year)
	if err != nil {
		return nil, "", storageError("list payments", err)
	}

	byHomeMonth := make(map[int]map[int]*models.Payment)
	for _, p := range payments {
		if byHomeMonth[p.HomeID] == nil {
			byHomeMonth[p.HomeID] = make(map[int]*models.Payment)
		}
		byHomeMonth[p.HomeID][p.Month] = p
	}

	limit := reportingLimitMonth(year, s.now())

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close export workbook")
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheetName); err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{"S.No", "Home ID", "Customer Name", "Phone", "Set-Top Box ID", "Monthly Amount"}
	widths := []float64{8, 12, 25, 15, 18, 15}
	for m := time.January; m <= time.December; m++ {
		headers = append(headers, m.String()[:3])
		widths = append(widths, 12)
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheetName, cell, header); err != nil {
			return nil, "", fmt.Errorf("failed to write header: %w", err)
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(exportSheetName, col, col, widths[i]); err != nil {
			return nil, "", fmt.Errorf("failed to set column width: %w", err)
		}
	}

	row := 1
	for _, home := range homes {
		months := byHomeMonth[home.HomeID]
		if statusFilter != "" && derivedStatus(months[month]) != statusFilter {
			continue
		}
		row++

		values := []interface{}{row - 1, home.HomeID, home.CustomerName, home.Phone, home.SetTopBoxID, home.MonthlyAmount}
		for m := 1; m <= 12; m++ {
			values = append(values, monthCell(months[m], m, limit))
		}

		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(exportSheetName, cell, &values); err != nil {
			return nil, "", fmt.Errorf("failed to write row: %w", err)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E0E0E0"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err == nil {
		_ = f.SetCellStyle(exportSheetName, "A1", lastCol+"1", headerStyle)
	}
	if row > 1 {
		bodyStyle, err := f.NewStyle(&excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
		if err == nil {
			_ = f.SetCellStyle(exportSheetName, "A2", fmt.Sprintf("%s%d", lastCol, row), bodyStyle)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"month":  month,
		"year":   year,
		"status": statusFilter,
		"rows":   row - 1,
	}).Info("Payment register exported")

	return buffer.Bytes(), exportFilename(month, year, statusFilter), nil
}

// reportingLimitMonth is the last month of year that is already due: all of a past year,
// up to the current month of the current year, none of a future year
func reportingLimitMonth(year int, now time.Time) int {
	switch {
	case year < now.Year():
		return 12
	case year == now.Year():
		return int(now.Month())
	default:
		return 0
	}
}

func derivedStatus(p *models.Payment) string {
	if p != nil && p.IsPaid() {
		return models.PaymentStatusPaid
	}
	return models.PaymentStatusUnpaid
}

func monthCell(p *models.Payment, month, limit int) string {
	if p != nil && p.IsPaid() {
		if p.PaidDate == nil {
			return "Paid"
		}
		return p.PaidDate.Format("02-01-2006")
	}
	if month > limit {
		return ""
	}
	return "-"
}

func exportFilename(month, year int, status string) string {
	statusText := "ALL"
	if status != "" {
		statusText = strings.ToUpper(status)
	}
	return fmt.Sprintf("Cable_Payment_Register_%d_%s_%s.xlsx", year, time.Month(month).String(), statusText)
}
