package dashboard

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/consistyard/internal/models"
	"github.com/zulandar/consistyard/internal/store"
	"gorm.io/gorm"
)

var (
	pollInterval      = 3 * time.Second
	heartbeatInterval = 15 * time.Second
)

// statusEvent is sent whenever the stored consist changes.
type statusEvent struct {
	Name        string    `json:"name"`
	Locomotives int       `json:"locomotives"`
	Orders      int       `json:"orders"`
	Weight      float64   `json:"weight"`
	Length      float64   `json:"length"`
	ZeroGrade   int       `json:"zero_grade"`
	TwoGrade    int       `json:"two_grade"`
	RainGrade   int       `json:"rain_grade"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// handleSSE streams a status event for the named consist each time another
// writer (usually the cy CLI) saves it.
func handleSSE(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no")

		writeSSE(c.Writer, "connected", map[string]string{"type": "connected", "consist": name})
		c.Writer.Flush()

		if db == nil {
			return
		}

		var lastSeen time.Time
		poll := func() {
			var row models.Consist
			if err := db.Select("updated_at").Where("name = ?", name).First(&row).Error; err != nil {
				return
			}
			if !row.UpdatedAt.After(lastSeen) {
				return
			}
			lastSeen = row.UpdatedAt

			cs, err := store.Load(db, name)
			if err != nil {
				writeSSE(c.Writer, "error", map[string]string{"error": err.Error()})
				c.Writer.Flush()
				return
			}
			t, l := cs.Totals(), cs.Limits()
			writeSSE(c.Writer, "status", statusEvent{
				Name:        name,
				Locomotives: len(cs.Locomotives()),
				Orders:      len(cs.Orders()),
				Weight:      t.Weight,
				Length:      t.Length,
				ZeroGrade:   l.ZeroGrade,
				TwoGrade:    l.TwoGrade,
				RainGrade:   l.RainGrade,
				UpdatedAt:   row.UpdatedAt,
			})
			c.Writer.Flush()
		}
		poll()

		ctx := c.Request.Context()
		ticker := time.NewTicker(pollInterval)
		heartbeat := time.NewTicker(heartbeatInterval)
		defer ticker.Stop()
		defer heartbeat.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-heartbeat.C:
				writeSSE(c.Writer, "heartbeat", map[string]string{
					"timestamp": time.Now().UTC().Format(time.RFC3339),
				})
				c.Writer.Flush()
			case <-ticker.C:
				poll()
			}
		}
	}
}

// writeSSE writes a single SSE event to the writer.
func writeSSE(w io.Writer, event string, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, string(jsonData))
}
