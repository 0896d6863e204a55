package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

// SessionCounter reports how many editor sessions are open.
type SessionCounter interface{ Len() int }

type HealthCtrl struct {
	db       *gorm.DB
	sessions SessionCounter
}

func NewHealthCtrl(db *gorm.DB, sessions SessionCounter) *HealthCtrl {
	return &HealthCtrl{db: db, sessions: sessions}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		}
	} else {
		dbOK = false
		dbErr = "gorm db is nil"
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}
	open := 0
	if h.sessions != nil {
		open = h.sessions.Len()
	}

	return c.JSON(status, echo.Map{
		"status":     echo.Map{"ok": dbOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": echo.Map{
			"database": sub{OK: dbOK, Err: dbErr},
		},
		"sessions": open,
		"time":     time.Now().Format(time.RFC3339),
	})
}
