package controllers

import (
	"log"
	"net/http"
	"runtime"
	"time"

	"movesched-backend/config"
	"movesched-backend/database"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	gopsutilnet "github.com/shirou/gopsutil/v4/net"
)

const (
	serviceName    = "moving-scheduling-server"
	serviceVersion = "1.0.0"
)

// cpuSampleInterval bounds how long CPU sampling may block a health request.
const cpuSampleInterval = 100 * time.Millisecond

// BasicHealthCheck is a lightweight probe for load balancers: connectivity
// only.
func BasicHealthCheck(c *gin.Context) {
	if err := config.DB.Exec("SELECT 1").Error; err != nil {
		log.Printf("Health check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    database.StatusUnhealthy,
			"timestamp": time.Now(),
			"service":   serviceName,
			"error":     err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    database.StatusHealthy,
		"timestamp": time.Now(),
		"service":   serviceName,
		"version":   serviceVersion,
	})
}

// DetailedHealthCheck combines the database health report with host resource
// usage. CPU or memory above 80% degrades the verdict to warning, above 95%
// to unhealthy.
func DetailedHealthCheck(c *gin.Context) {
	dbHealth := database.GetDatabaseHealth(config.DB)

	systemInfo := gin.H{}
	var cpuPercent, memPercent float64
	if percents, err := cpu.Percent(cpuSampleInterval, false); err == nil && len(percents) > 0 {
		cpuPercent = percents[0]
		systemInfo["cpu_percent"] = cpuPercent
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		memPercent = vm.UsedPercent
		systemInfo["memory_percent"] = memPercent
	}
	if du, err := disk.Usage("/"); err == nil {
		systemInfo["disk_percent"] = du.UsedPercent
	}

	overall := dbHealth.OverallStatus
	if cpuPercent > 80 || memPercent > 80 {
		if overall == database.StatusHealthy {
			overall = database.StatusWarning
		}
	}
	if cpuPercent > 95 || memPercent > 95 {
		overall = database.StatusUnhealthy
	}

	statusCode := http.StatusOK
	if overall == database.StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, gin.H{
		"status":    overall,
		"timestamp": time.Now(),
		"service":   serviceName,
		"version":   serviceVersion,
		"database":  dbHealth,
		"system":    systemInfo,
		"environment": gin.H{
			"go_version": runtime.Version(),
			"gin_mode":   gin.Mode(),
		},
	})
}

// DatabaseHealthCheck surfaces the health aggregator output as-is.
func DatabaseHealthCheck(c *gin.Context) {
	report := database.GetDatabaseHealth(config.DB)

	statusCode := http.StatusOK
	if report.OverallStatus == database.StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, report)
}

// SystemMetrics reports raw host resource metrics.
func SystemMetrics(c *gin.Context) {
	metrics := gin.H{"timestamp": time.Now()}

	cpuInfo := gin.H{}
	if percents, err := cpu.Percent(cpuSampleInterval, false); err == nil && len(percents) > 0 {
		cpuInfo["percent"] = percents[0]
	}
	if count, err := cpu.Counts(true); err == nil {
		cpuInfo["count"] = count
	}
	if avg, err := load.Avg(); err == nil {
		cpuInfo["load_avg"] = []float64{avg.Load1, avg.Load5, avg.Load15}
	}
	metrics["cpu"] = cpuInfo

	if vm, err := mem.VirtualMemory(); err == nil {
		metrics["memory"] = gin.H{
			"total":     vm.Total,
			"available": vm.Available,
			"percent":   vm.UsedPercent,
			"used":      vm.Used,
		}
	}
	if du, err := disk.Usage("/"); err == nil {
		metrics["disk"] = gin.H{
			"total":   du.Total,
			"used":    du.Used,
			"free":    du.Free,
			"percent": du.UsedPercent,
		}
	}
	if counters, err := gopsutilnet.IOCounters(false); err == nil && len(counters) > 0 {
		metrics["network"] = gin.H{
			"bytes_sent":   counters[0].BytesSent,
			"bytes_recv":   counters[0].BytesRecv,
			"packets_sent": counters[0].PacketsSent,
			"packets_recv": counters[0].PacketsRecv,
		}
	}

	c.JSON(http.StatusOK, metrics)
}

// ReadinessCheck verifies connectivity and the presence of every required
// table before declaring the service ready.
func ReadinessCheck(c *gin.Context) {
	if err := config.DB.Exec("SELECT 1").Error; err != nil {
		log.Printf("Readiness check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "not_ready",
			"timestamp": time.Now(),
			"error":     err.Error(),
		})
		return
	}

	for _, table := range []string{"customers", "appointments", "crews", "crew_members"} {
		var count int64
		if err := config.DB.Table(table).Count(&count).Error; err != nil {
			log.Printf("Readiness check failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "not_ready",
				"timestamp": time.Now(),
				"error":     err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now(),
		"message":   "Service is ready to accept requests",
	})
}

// LivenessCheck reports that the process is up.
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "alive",
		"timestamp": time.Now(),
		"message":   "Service is alive",
	})
}
