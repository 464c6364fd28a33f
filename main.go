package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"lg/diet-plan-go-api/internal/config"
)

func main() {
	log.SetPrefix("lg/diet-plan-go-api: ")
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	h := &Handler{
		db: getDBPool(cfg.DBURL),
		ai: newAIClient(cfg),
	}
	defer h.db.Close()

	sched, err := h.startScheduler(cfg.PlanRegenSchedule)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid PLAN_REGEN_SCHEDULE: %v\n", err)
		os.Exit(1)
	}
	if sched != nil {
		defer sched.Stop()
	}

	fmt.Println("Starting gin app...")

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	if err := router.Run(cfg.Addr); err != nil {
		log.Printf("[main] server stopped: %v", err)
	}
}

// health reports liveness. GET /api/health.
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
