package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pricecheck/backend/internal/domain"
	"github.com/pricecheck/backend/internal/usecase"
)

const (
	serviceName    = "pricecheck-backend"
	serviceVersion = "1.0.0"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalogue domain.CatalogueReader
	query     *usecase.QueryService
	matcher   *usecase.MatchingService
	grouping  *usecase.GroupingService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	catalogue domain.CatalogueReader,
	query *usecase.QueryService,
	matcher *usecase.MatchingService,
	grouping *usecase.GroupingService,
) *Handler {
	return &Handler{
		catalogue: catalogue,
		query:     query,
		matcher:   matcher,
		grouping:  grouping,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	listings := 0
	if h.catalogue != nil {
		listings = h.catalogue.Len()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  serviceName,
		"version":  serviceVersion,
		"listings": listings,
	})
}

// BrowseListings handles filtered, sorted and paginated listing queries
func (h *Handler) BrowseListings(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	sortOption, err := usecase.ParseSortOption(c.Query("sort"))
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := intQuery(c, "page")
	if err != nil {
		respondError(c, err)
		return
	}

	pageSize, err := intQuery(c, "page_size")
	if err != nil {
		respondError(c, err)
		return
	}

	retailers, err := retailerQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result := h.query.Browse(usecase.BrowseRequest{
		Query:     c.Query("q"),
		Category:  c.Query("category"),
		Retailers: retailers,
		Sort:      sortOption,
		Page:      page,
		PageSize:  pageSize,
	})

	c.JSON(http.StatusOK, result)
}

// SearchListings returns the raw search result in catalogue order
func (h *Handler) SearchListings(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	listings := h.query.Search(c.Query("q"), c.Query("category"))
	c.JSON(http.StatusOK, gin.H{
		"listings": listings,
		"total":    len(listings),
	})
}

// ListCategories returns the sorted distinct categories
func (h *Handler) ListCategories(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	categories := h.query.Categories()
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ListSuggestions returns product names for search autocomplete
func (h *Handler) ListSuggestions(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	limit, err := intQuery(c, "limit")
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": h.query.Suggestions(limit)})
}

// CompareProduct returns the price comparison for a listing name
func (h *Handler) CompareProduct(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	name := strings.TrimPrefix(c.Param("productName"), "/")
	if name == "" {
		respondError(c, domain.ErrInvalidRequest)
		return
	}

	group, err := h.grouping.CompareListing(name, h.catalogue.Listings())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// FindMatches returns the catalogue listings matching the posted listing
func (h *Handler) FindMatches(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	var target domain.Listing
	if err := c.ShouldBindJSON(&target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRequest.Error() + ": " + err.Error()})
		return
	}

	matches := h.matcher.FindMatches(target, h.catalogue.Listings())
	c.JSON(http.StatusOK, gin.H{
		"matches": matches,
		"total":   len(matches),
	})
}

// ListGroups returns product groups, optionally for one category and
// above a minimum saving
func (h *Handler) ListGroups(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	minSavings := 0.0
	if raw := c.Query("min_savings"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(c, domain.ErrInvalidRequest)
			return
		}
		minSavings = v
	}

	listings := h.query.Search("", c.Query("category"))
	groups := make([]domain.ProductGroup, 0)
	for _, g := range h.grouping.GroupListings(listings) {
		if g.Savings >= minSavings {
			groups = append(groups, g)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"groups": groups,
		"total":  len(groups),
	})
}

// ParsePrice exposes price parsing for clients that hold raw price strings
func (h *Handler) ParsePrice(c *gin.Context) {
	raw := c.Query("value")
	price := usecase.ParsePrice(raw)
	c.JSON(http.StatusOK, gin.H{
		"value":     raw,
		"price":     price,
		"formatted": usecase.FormatPrice(price),
	})
}

// FormatPrice renders a numeric price with the currency prefix
func (h *Handler) FormatPrice(c *gin.Context) {
	v, err := strconv.ParseFloat(c.Query("value"), 64)
	if err != nil {
		respondError(c, domain.ErrInvalidRequest)
		return
	}
	c.JSON(http.StatusOK, gin.H{"formatted": usecase.FormatPrice(v)})
}

// ready reports whether the catalogue services are wired, answering 503 if not
func (h *Handler) ready(c *gin.Context) bool {
	if h.catalogue == nil || h.query == nil || h.matcher == nil || h.grouping == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "catalogue not configured",
		})
		return false
	}
	return true
}

// intQuery parses an optional integer query parameter; absent means 0
func intQuery(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, domain.ErrInvalidRequest
	}
	return v, nil
}

// retailerQuery collects repeated retailer parameters
func retailerQuery(c *gin.Context) ([]domain.Retailer, error) {
	var retailers []domain.Retailer
	for _, raw := range c.QueryArray("retailer") {
		r := domain.Retailer(raw)
		if !r.Valid() {
			return nil, domain.ErrInvalidRequest
		}
		retailers = append(retailers, r)
	}
	return retailers, nil
}

// respondError maps domain errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrListingNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrRateLimited):
		status = http.StatusTooManyRequests
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
