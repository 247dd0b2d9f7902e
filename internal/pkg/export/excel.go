package export

import (
	"bytes"
	"strconv"

	"github.com/xuri/excelize/v2"

	"webmall/internal/pkg/errs"
	"webmall/internal/pkg/money"
	"webmall/internal/usecase/queries"
)

var orderSheetHeader = []string{
	"Order #", "Customer", "Items", "Subtotal", "Coupon", "Discount", "Total", "Status", "Placed At",
}

// OrdersWorkbook renders the back-office order export, one row per order.
func OrdersWorkbook(orders []*queries.OrderView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	const sheet = "Orders"
	f.SetSheetName("Sheet1", sheet) //nolint:errcheck

	for col, title := range orderSheetHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, errs.Wrap(err, "failed to write header cell")
		}
	}

	for i, o := range orders {
		coupon := ""
		if o.CouponCode != nil {
			coupon = *o.CouponCode
		}
		row := []any{
			o.Number,
			o.UserEmail,
			itemCount(o.Items),
			money.FormatLKR(o.Subtotal),
			coupon,
			money.FormatLKR(o.DiscountAmount),
			money.FormatLKR(o.Total),
			o.Status,
			o.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, val := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return nil, errs.Wrap(err, "failed to write order cell "+strconv.Itoa(i))
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errs.Wrap(err, "failed to serialize workbook")
	}
	return buf, nil
}

func itemCount(items []queries.OrderItemView) int32 {
	var n int32
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
