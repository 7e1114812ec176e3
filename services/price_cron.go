package services

import (
	"log"
	"time"

	"github.com/Sishir120/PackYourBags-sub000/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartPriceWatchCron refreshes active price watches nightly at 03:00 and
// once at startup. homeAirport is the departure fallback for watches that
// never set an origin.
func StartPriceWatchCron(db *gorm.DB, flights *FlightsService, notify *NotifyService, homeAirport string) {
	go RefreshPriceWatches(db, flights, notify, homeAirport)

	c := cron.New()
	c.AddFunc("0 3 * * *", func() {
		RefreshPriceWatches(db, flights, notify, homeAirport)
	})
	c.Start()
}

// RefreshPriceWatches pulls a fresh quote for every active watch, updates the
// stored price and pushes a notification when the drop threshold is met
func RefreshPriceWatches(db *gorm.DB, flights *FlightsService, notify *NotifyService, homeAirport string) {
	var watches []models.PriceWatch
	if err := db.Where("active = ?", true).Find(&watches).Error; err != nil {
		log.Printf("price watch refresh failed to load watches: %v", err)
		return
	}

	now := time.Now()
	outbound := now.AddDate(0, 0, 30).Format("2006-01-02")
	ret := now.AddDate(0, 0, 33).Format("2006-01-02")

	updated, notified := 0, 0
	for i := range watches {
		w := &watches[i]

		// expired mutes are cleared so the next drop notifies again
		if w.MuteUntil != nil && now.After(*w.MuteUntil) {
			w.MuteUntil = nil
		}

		origin := w.Origin
		if origin == "" {
			origin = homeAirport
		}
		price, err := flights.LowestPrice(origin, w.Destination, outbound, ret)
		if err != nil {
			log.Printf("price watch %d: quote for %s failed: %v", w.ID, w.Destination, err)
			continue
		}
		if price <= 0 {
			continue
		}

		previous := w.LastPrice
		w.LastPrice = price
		if err := db.Save(w).Error; err != nil {
			log.Printf("price watch %d: save failed: %v", w.ID, err)
			continue
		}
		updated++

		if previous <= 0 || w.Muted(now) {
			continue
		}
		dropPercent := (previous - price) / previous * 100
		hitThreshold := dropPercent >= w.PercentDrop ||
			(w.TargetPrice > 0 && price <= w.TargetPrice)
		if hitThreshold {
			if notify.PushToUser(w.UserID, "Price drop alert",
				w.Destination+" flights dropped to a new low - check your watch list") {
				notified++
			}
		}
	}

	log.Printf("price watch refresh complete: %d updated, %d notified of %d watches",
		updated, notified, len(watches))
}
