package httpgin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kirinyoku/parkgo/internal/validation"
)

// @Summary   List lots
// @Tags      lot
// @Security  Bearer
// @Success   200  {object}  Envelope{body=[]LotResponse}
// @Router    /api/v1/lot/ [get]
func (h *handlers) listLots(c *gin.Context) {
	lots, err := h.svcs.Lots.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, toLotResponses(lots))
}

// @Summary   Get lot
// @Tags      lot
// @Security  Bearer
// @Param     id  path  int  true  "Lot ID"
// @Success   200  {object}  Envelope{body=LotResponse}
// @Failure   404  {object}  Envelope{body=ErrorBody}
// @Router    /api/v1/lot/{id} [get]
func (h *handlers) getLot(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	lot, err := h.svcs.Lots.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	writeWithCache(c, http.StatusOK, toLotResponse(lot), "private, max-age=15")
}

// @Summary   Lot availability counters
// @Tags      lot
// @Security  Bearer
// @Success   200  {object}  Envelope{body=AvailabilityResponse}
// @Router    /api/v1/lot/availability [get]
func (h *handlers) lotAvailability(c *gin.Context) {
	counts, err := h.svcs.Lots.Availability(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}

	writeWithCache(c, http.StatusOK, toAvailabilityResponse(counts), "private, max-age=5")
}

// @Summary   Create lot
// @Tags      lot
// @Security  Bearer
// @Param     req  body  LotRequest  true  "lot"
// @Success   201  {object}  Envelope{body=LotResponse}
// @Failure   400  {object}  Envelope{body=ErrorBody}
// @Failure   403  {object}  Envelope{body=ErrorBody}
// @Router    /api/v1/lot/ [post]
func (h *handlers) createLot(c *gin.Context) {
	var req LotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, validation.FromBinding(err))
		return
	}

	lot, err := h.svcs.Lots.Create(c.Request.Context(), *req.Busy)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusCreated, toLotResponse(lot))
}

// @Summary   Update lot
// @Tags      lot
// @Security  Bearer
// @Param     id   path  int         true  "Lot ID"
// @Param     req  body  LotRequest  true  "lot"
// @Success   200  {object}  Envelope{body=LotResponse}
// @Failure   404  {object}  Envelope{body=ErrorBody}
// @Router    /api/v1/lot/{id} [put]
func (h *handlers) updateLot(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	var req LotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, validation.FromBinding(err))
		return
	}

	lot, err := h.svcs.Lots.Update(c.Request.Context(), id, *req.Busy)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, toLotResponse(lot))
}

// @Summary   Delete lot
// @Tags      lot
// @Security  Bearer
// @Param     id  path  int  true  "Lot ID"
// @Success   200  {object}  Envelope{body=string}
// @Failure   404  {object}  Envelope{body=ErrorBody}
// @Router    /api/v1/lot/{id} [delete]
func (h *handlers) deleteLot(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	if err := h.svcs.Lots.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, "Lot deleted successfully")
}
