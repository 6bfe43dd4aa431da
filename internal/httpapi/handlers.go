package httpapi

import (
	"context"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/misodaily/newsdesk/internal/events"
	"github.com/misodaily/newsdesk/internal/market"
	"github.com/misodaily/newsdesk/internal/pipeline"
)

func (s *Server) handleHealth(c echo.Context) error {
	data := map[string]any{
		"service": "newsdesk",
		"time":    now(),
	}
	if s.pool != nil {
		pingCtx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := s.pool.Ping(pingCtx); err != nil {
			s.logger.Error().Err(err).Msg("health check database ping failed")
			data["database"] = "unreachable"
			return internalError(c, "Database unreachable")
		}
		data["database"] = "ok"
	}
	return success(c, data)
}

func (s *Server) handleStocks(c echo.Context) error {
	marketFilter := strings.TrimSpace(strings.ToLower(c.QueryParam("market")))

	var stocks []market.Stock
	switch marketFilter {
	case "":
		stocks = market.All()
	case "kr", "us":
		stocks = market.ByMarket(marketFilter)
	default:
		return failValidation(c, map[string]string{"market": "must be kr or us"})
	}

	return success(c, map[string]any{
		"items": stocks,
		"total": len(stocks),
	})
}

func (s *Server) handleTickerEvents(c echo.Context) error {
	marketCode := strings.TrimSpace(strings.ToLower(c.Param("market")))
	ticker := strings.TrimSpace(c.Param("ticker"))
	if marketCode == "us" {
		ticker = strings.ToUpper(ticker)
	}

	stock, ok := market.Find(marketCode, ticker)
	if !ok {
		return failNotFound(c, "Unknown stock")
	}

	evs := s.snapshot().ByTicker(stock.Market, stock.Ticker)
	return success(c, map[string]any{
		"stock":  stock,
		"items":  evs,
		"total":  len(evs),
		"asOf":   now(),
		"market": stock.Market,
	})
}

func (s *Server) handleEvents(c echo.Context) error {
	hours, err := parseWindowHours(c.QueryParam("hours"))
	if err != nil {
		return failValidation(c, map[string]string{"hours": err.Error()})
	}
	limit, err := parsePositiveInt(c.QueryParam("limit"), defaultEventLimit, 1, maxEventLimit)
	if err != nil {
		return failValidation(c, map[string]string{"limit": err.Error()})
	}

	ref := now()
	evs := s.snapshot().TopInWindow(ref, hours, limit)
	return success(c, map[string]any{
		"items": evs,
		"total": len(evs),
		"window": map[string]any{
			"hours": hours,
			"until": ref,
		},
	})
}

func (s *Server) handleEventDetail(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return failValidation(c, map[string]string{"id": "is required"})
	}

	ev, ok := s.snapshot().ByID(id)
	if !ok {
		return failNotFound(c, "Event not found")
	}
	return success(c, ev)
}

func (s *Server) handleLabelCounts(c echo.Context) error {
	set := s.snapshot()

	selected := set.All()
	if raw := strings.TrimSpace(c.QueryParam("hours")); raw != "" {
		hours, err := parseWindowHours(raw)
		if err != nil {
			return failValidation(c, map[string]string{"hours": err.Error()})
		}
		selected = set.InWindow(now(), hours)
	}
	counts := events.LabelCounts(selected)

	items := make([]map[string]any, 0, len(counts))
	for _, label := range pipeline.Labels() {
		items = append(items, map[string]any{
			"label":       label,
			"displayName": events.LabelDisplayName(label),
			"count":       counts[label],
		})
	}
	return success(c, map[string]any{
		"items": items,
		"total": len(selected),
	})
}
