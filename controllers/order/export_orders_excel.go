package orderControllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/vasanthdommeti/Kiranna-Mart-Task/store"
)

// GET /admin/orders/export-excel
func ExportOrdersToExcel(orders *store.OrdersStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "OrderNumber", "Status", "CreatedAt",
			"Subtotal", "DeliveryFee", "Total", "Address", "Note", "Items",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders.Orders() {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.OrderNumber)
			row.AddCell().SetValue(o.Status)
			row.AddCell().SetValue(time.UnixMilli(o.CreatedAt).Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.DeliveryFee)
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(o.Address)
			row.AddCell().SetValue(o.Note)

			var items []string
			for _, it := range o.Items {
				items = append(items, it.Name+" x"+strconv.Itoa(it.Quantity))
			}
			row.AddCell().SetValue(strings.Join(items, ", "))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
