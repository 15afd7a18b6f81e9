package dashboard

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/consistyard/internal/catalog"
	"github.com/zulandar/consistyard/internal/consist"
	"github.com/zulandar/consistyard/internal/store"
	"gorm.io/gorm"
)

// registerRoutes sets up all dashboard routes on the Gin router.
func registerRoutes(router *gin.Engine, db *gorm.DB) {
	api := router.Group("/api")
	api.GET("/catalog/locomotives", handleLocomotives())
	api.GET("/catalog/stations", handleStations())
	api.GET("/consists", handleConsistList(db))
	api.GET("/consists/:name", handleConsistDetail(db))
	api.GET("/consists/:name/events", handleSSE(db))
}

type locomotiveView struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	Mass      float64 `json:"mass"`
	Length    float64 `json:"length"`
	ZeroGrade int     `json:"zero_grade"`
	TwoGrade  int     `json:"two_grade"`
	RainGrade int     `json:"rain_grade"`
	HasPower  bool    `json:"has_power"`
}

type stationView struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Abbrev string `json:"abbrev"`
}

type unitView struct {
	Position int    `json:"position"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	HasPower bool   `json:"has_power"`
	Powered  bool   `json:"powered"`
}

type orderView struct {
	Position     int     `json:"position"`
	Name         string  `json:"name"`
	Weight       float64 `json:"weight"`
	Length       float64 `json:"length"`
	Pickup       string  `json:"pickup"`
	PickupTrack  string  `json:"pickup_track"`
	Dropoff      string  `json:"dropoff"`
	DropoffTrack string  `json:"dropoff_track"`
}

type consistView struct {
	Name        string         `json:"name"`
	Locomotives []unitView     `json:"locomotives"`
	Orders      []orderView    `json:"orders"`
	Totals      consist.Totals `json:"totals"`
	Limits      consist.Limits `json:"limits"`
}

type summaryView struct {
	Name        string         `json:"name"`
	Locomotives int            `json:"locomotives"`
	Orders      int            `json:"orders"`
	Totals      consist.Totals `json:"totals"`
	Limits      consist.Limits `json:"limits"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func handleLocomotives() gin.HandlerFunc {
	return func(c *gin.Context) {
		ids := catalog.LocomotiveIDs()
		out := make([]locomotiveView, len(ids))
		for i, id := range ids {
			k := catalog.Locomotive(id)
			out[i] = locomotiveView{
				Key:       id.Key(),
				Name:      id.String(),
				Mass:      k.Mass,
				Length:    k.Length,
				ZeroGrade: k.ZeroGrade,
				TwoGrade:  k.TwoGrade,
				RainGrade: k.RainGrade,
				HasPower:  k.HasPower,
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

func handleStations() gin.HandlerFunc {
	return func(c *gin.Context) {
		ids := catalog.StationIDs()
		out := make([]stationView, len(ids))
		for i, id := range ids {
			st := catalog.Station(id)
			out[i] = stationView{Key: st.Key, Name: st.Name, Abbrev: st.Abbrev}
		}
		c.JSON(http.StatusOK, out)
	}
}

func handleConsistList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sums, err := store.List(db)
		if err != nil {
			log.Printf("dashboard list consists: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list consists"})
			return
		}
		out := make([]summaryView, len(sums))
		for i, s := range sums {
			out[i] = summaryView{
				Name:        s.Name,
				Locomotives: s.Locomotives,
				Orders:      s.Orders,
				Totals:      s.Totals,
				Limits:      s.Limits,
				UpdatedAt:   s.UpdatedAt,
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

func handleConsistDetail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		cs, err := store.Load(db, name)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "consist not found", "name": name})
			return
		}
		if err != nil {
			log.Printf("dashboard load consist %s: %v", name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load consist"})
			return
		}
		c.JSON(http.StatusOK, viewConsist(name, cs))
	}
}

func viewConsist(name string, cs *consist.Consist) consistView {
	v := consistView{
		Name:        name,
		Locomotives: []unitView{},
		Orders:      []orderView{},
		Totals:      cs.Totals(),
		Limits:      cs.Limits(),
	}
	for i, l := range cs.Locomotives() {
		v.Locomotives = append(v.Locomotives, unitView{
			Position: i,
			Key:      l.Kind.ID.Key(),
			Name:     l.Kind.ID.String(),
			HasPower: l.Kind.HasPower,
			Powered:  l.Powered,
		})
	}
	for i, o := range cs.Orders() {
		v.Orders = append(v.Orders, orderView{
			Position:     i,
			Name:         o.Name,
			Weight:       o.Weight,
			Length:       o.Length,
			Pickup:       o.Pickup.Abbrev(),
			PickupTrack:  o.PickupTrack,
			Dropoff:      o.Dropoff.Abbrev(),
			DropoffTrack: o.DropoffTrack,
		})
	}
	return v
}
