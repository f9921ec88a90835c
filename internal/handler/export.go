package handler

import (
    "fmt"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/xuri/excelize/v2"

    "github.com/iliyamo/studio-booking/internal/model"
)

const exportSheet = "Bookings"

var exportColumns = []string{
    "Reference", "Status", "Name", "Email", "ID Number", "Phone", "Department",
    "Date", "Time", "Duration (h)", "Equipment", "Notes", "Created At",
}

// Export handles GET /api/bookings/export and streams the filtered booking
// list as an xlsx workbook.  It accepts the same query parameters as List.
func (h *BookingHandler) Export(c echo.Context) error {
    ctx, cancel := dbContext(c)
    defer cancel()
    items, err := h.Svc.List(ctx, c.QueryParam("status"), c.QueryParam("search"), c.QueryParam("date"))
    if err != nil {
        return internalError(c, h.Log, err, "Error fetching bookings")
    }
    f, err := bookingsWorkbook(items)
    if err != nil {
        return internalError(c, h.Log, err, "Error building export")
    }
    defer f.Close()

    name := fmt.Sprintf("bookings_%s.xlsx", time.Now().UTC().Format("20060102"))
    c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
    c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
    c.Response().WriteHeader(http.StatusOK)
    return f.Write(c.Response())
}

// bookingsWorkbook lays bookings out one per row under a bold header.
func bookingsWorkbook(items []*model.Booking) (*excelize.File, error) {
    f := excelize.NewFile()
    index, err := f.NewSheet(exportSheet)
    if err != nil {
        return nil, fmt.Errorf("create sheet: %w", err)
    }
    f.SetActiveSheet(index)
    if err := f.DeleteSheet("Sheet1"); err != nil {
        return nil, fmt.Errorf("drop default sheet: %w", err)
    }

    for i, title := range exportColumns {
        cell, _ := excelize.CoordinatesToCellName(i+1, 1)
        _ = f.SetCellValue(exportSheet, cell, title)
    }
    last, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
    if style, err := f.NewStyle(&excelize.Style{
        Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
        Font: &excelize.Font{Bold: true},
    }); err == nil {
        _ = f.SetCellStyle(exportSheet, "A1", last, style)
    }

    for r, b := range items {
        notes := ""
        if b.Notes != nil {
            notes = *b.Notes
        }
        row := []interface{}{
            b.Reference, string(b.Status), b.Name, b.Email, b.IDNumber, b.Phone, b.Department,
            b.Date, b.Time, b.Duration, strings.Join(b.EquipmentList, ", "), notes,
            b.CreatedAt.UTC().Format(time.RFC3339),
        }
        cell, _ := excelize.CoordinatesToCellName(1, r+2)
        if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
            return nil, fmt.Errorf("write row %d: %w", r+2, err)
        }
    }
    _ = f.SetColWidth(exportSheet, "A", "A", 20)
    _ = f.SetColWidth(exportSheet, "B", "M", 16)
    return f, nil
}
