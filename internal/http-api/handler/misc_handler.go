package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// About describes the project
// GET /about
func About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "restaurant-tracker",
		"description": "Personal log of restaurants visited and meals eaten there",
		"source":      "https://github.com/pliabraaten/restaurant-tracker",
	})
}

// Health is the liveness probe
// GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
