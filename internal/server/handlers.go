package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gbistila/bidupgradestest/pkg/present"
)

// captureRenderer holds whatever the adapter decided to show for one request.
type captureRenderer struct {
	view    present.View
	visible bool
}

func (r *captureRenderer) Render(v present.View) {
	r.view = v
	r.visible = true
}

func (r *captureRenderer) Hide() {
	r.view = present.View{}
	r.visible = false
}

// bidResponse is the JSON shape of GET /api/bid.
type bidResponse struct {
	present.View
	Dollars struct {
		SoilRemoval    string `json:"soil_removal"`
		RoadBase       string `json:"road_base"`
		Concrete       string `json:"concrete"`
		Total          string `json:"total"`
		ConcreteBudget string `json:"concrete_budget"`
	} `json:"dollars"`
	RequestID string `json:"request_id"`
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Copied": present.CopiedMessage})
}

// handleCalculate answers every form change with an HTML fragment. Invalid
// input yields an empty fragment, which clears any earlier result.
func (s *Server) handleCalculate(c *gin.Context) {
	rr := &captureRenderer{}
	a := present.NewAdapter(s.presenter, rr)
	report := a.Update(present.Request{
		Area:        c.PostForm("area"),
		Thickness:   c.PostForm("thickness"),
		ShowHandoff: c.PostForm("handoff") == "true",
	})
	if !report.Valid {
		s.log.Debug("bid.withheld",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("summary", report.Summary))
	}

	data := gin.H{"Visible": rr.visible, "View": rr.view}
	if rr.visible && rr.view.HasHandoff() {
		html, err := s.renderHandoff(rr.view.Handoff)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		data["HandoffHTML"] = html
	}
	c.HTML(http.StatusOK, "result.html", data)
}

// handleBid is the JSON form of the calculator. Invalid input returns the
// validation report with 422 and no bid.
func (s *Server) handleBid(c *gin.Context) {
	rr := &captureRenderer{}
	a := present.NewAdapter(s.presenter, rr)
	report := a.Update(present.Request{
		Area:        c.Query("area"),
		Thickness:   c.Query("thickness"),
		ShowHandoff: c.Query("handoff") == "true",
	})
	if !report.Valid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"request_id": c.GetString("request_id"),
			"validation": report,
		})
		return
	}

	c.JSON(http.StatusOK, newBidResponse(rr.view, c.GetString("request_id")))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func newBidResponse(v present.View, requestID string) bidResponse {
	r := v.Result
	resp := bidResponse{View: v, RequestID: requestID}
	resp.Dollars.SoilRemoval = r.SoilRemoval.Price.String()
	resp.Dollars.RoadBase = r.RoadBase.Price.String()
	resp.Dollars.Concrete = r.Concrete.Price.String()
	resp.Dollars.Total = r.Total.String()
	resp.Dollars.ConcreteBudget = r.Handoff.ConcreteBudget.String()
	return resp
}

var _ present.Renderer = (*captureRenderer)(nil)
