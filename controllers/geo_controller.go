package controllers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bvtech/attendance-server/config"
	"github.com/bvtech/attendance-server/utils"
)

var geoHTTPClient = &http.Client{Timeout: 5 * time.Second}

// GeoController proxies geolocation lookups to the upstream IP API so the
// browser client never talks to it directly.
type GeoController struct{}

// NewGeoController creates a GeoController.
func NewGeoController() *GeoController {
	return &GeoController{}
}

// Lookup fetches the upstream JSON for an IP. Successful responses are cached
// in Redis; upstream non-200s pass their status through.
func (g *GeoController) Lookup(ctx *gin.Context) {
	ip := ctx.Param("ip")

	cacheKey := "geoip:" + ip
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	req, err := http.NewRequestWithContext(ctx.Request.Context(), http.MethodGet, config.Get().IPAPIBaseURL+ip, nil)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	resp, err := geoHTTPClient.Do(req)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		ctx.String(resp.StatusCode, "Error fetching data from IP-API")
		return
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}

	utils.CacheSetBytes(cacheKey, body, 24*time.Hour)
	ctx.Data(http.StatusOK, "application/json", body)
}
