package controllers

import (
	"coffeepos/pkg/resp"
	"coffeepos/services"
	"coffeepos/ws"

	"github.com/gin-gonic/gin"
)

type StatisticController struct {
	service *services.StatisticService
	hub     *ws.StatsHub
}

func NewStatisticController(s *services.StatisticService, hub *ws.StatsHub) *StatisticController {
	return &StatisticController{service: s, hub: hub}
}

// GET /stats/daily?date=YYYY-MM-DD — defaults to today
func (sc *StatisticController) Daily(c *gin.Context) {
	stat, err := sc.service.ForDate(c.Query("date"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, stat)
}

// GET /stats/range?from=&to=
func (sc *StatisticController) Range(c *gin.Context) {
	rows, err := sc.service.Range(c.Query("from"), c.Query("to"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /ws/stats — live dashboard feed; sends today's snapshot on
// connect, then every checkout pushes the fresh row.
func (sc *StatisticController) Live(c *gin.Context) {
	snapshot, err := sc.service.ForDate("")
	if err != nil {
		snapshot = nil
	}
	sc.hub.Serve(c, snapshot)
}
