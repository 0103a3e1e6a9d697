package portal

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/travel-tour/portal/internal/admin"
	"github.com/travel-tour/portal/internal/bookings"
	portalMiddleware "github.com/travel-tour/portal/internal/portal/middleware"
	"github.com/travel-tour/portal/internal/tools/responding"
)

const FetchFailedText = "Bookings could not be loaded"

type adminHandlers struct {
	loader   BookingsLoader
	renderer *admin.Renderer
}

type bookingsTableView struct {
	Table  admin.Table
	Failed bool
	Notice string
}

// page renders the shell with the loading placeholder, the table is loaded from /table.
func (h *adminHandlers) page(ctx *gin.Context) {
	table := h.renderer.BuildTable(bookings.NewGroupedBookingView(nil), true)

	ctx.HTML(http.StatusOK, "bookings.tmpl", bookingsTableView{Table: table})
}

func (h *adminHandlers) table(ctx *gin.Context) {
	logger := ctx.MustGet(responding.LoggerKey).(*zerolog.Logger)

	result := h.loader.LoadGroupedBookings(ctx.Request.Context(), portalMiddleware.Credentials(ctx), logger)
	if result.Discarded {
		// the client is gone, nothing is written
		ctx.Abort()
		return
	}

	view := bookingsTableView{
		Table:  h.renderer.BuildTable(result.View, false),
		Failed: result.Failed,
	}

	if result.Failed {
		view.Notice = FetchFailedText
	}

	ctx.HTML(http.StatusOK, "booking_table.tmpl", view)
}
