package services

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/Sishir120/PackYourBags-sub000/models"
)

// Scoring weights, hand-tuned: savings matter most, then urgency, then type
const (
	weightSavings = 0.5
	weightUrgency = 0.3
	weightType    = 0.2

	dealExpiryWindow = 48 * time.Hour
)

var dealTypes = []string{
	models.DealFlash,
	models.DealSeasonal,
	models.DealLastMin,
	models.DealEarlyBird,
}

var dealTypeWeights = map[string]float64{
	models.DealFlash:     1.0,
	models.DealLastMin:   0.9,
	models.DealSeasonal:  0.7,
	models.DealEarlyBird: 0.6,
}

// TrackerService simulates price drops against an itinerary's estimated
// budget and scores the resulting deals
type TrackerService struct {
	ai  *AIService
	rng *rand.Rand
}

func NewTrackerService(ai *AIService) *TrackerService {
	return &TrackerService{
		ai:  ai,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// newTrackerServiceWithSeed keeps the simulation deterministic in tests
func newTrackerServiceWithSeed(ai *AIService, seed int64) *TrackerService {
	return &TrackerService{
		ai:  ai,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// SimulatePrice draws a new price uniformly in [0.75*budget, 1.05*budget]
func (t *TrackerService) SimulatePrice(budget float64) float64 {
	change := -0.25 + t.rng.Float64()*0.30 // U(-0.25, 0.05)
	return budget * (1 + change)
}

// CheckItinerary runs one simulation pass. It returns nil when the drawn
// price is not below the stored budget - no deal, nothing persisted.
func (t *TrackerService) CheckItinerary(it *models.Itinerary, now time.Time) *models.Deal {
	budget := it.EstimatedBudget
	if budget <= 0 {
		return nil
	}

	newPrice := t.SimulatePrice(budget)
	if newPrice >= budget {
		return nil
	}

	savings := budget - newPrice
	savingsPercent := savings / budget * 100
	dealType := dealTypes[t.rng.Intn(len(dealTypes))]
	expiresAt := now.Add(dealExpiryWindow)

	deal := &models.Deal{
		ItineraryID:    it.ID,
		OriginalPrice:  budget,
		NewPrice:       newPrice,
		SavingsAmount:  savings,
		SavingsPercent: savingsPercent,
		DealType:       dealType,
		ExpiresAt:      expiresAt,
	}
	deal.Score = ScoreDeal(deal, now)
	return deal
}

// ScoreDeal combines savings percentage, time to expiry and deal-type weight
// into a 0..1 score
func ScoreDeal(deal *models.Deal, now time.Time) float64 {
	savingsScore := deal.SavingsPercent / 25.0 // 25% drop is the simulated maximum
	if savingsScore > 1 {
		savingsScore = 1
	}
	if savingsScore < 0 {
		savingsScore = 0
	}

	// closer expiry means more urgent
	remaining := deal.ExpiresAt.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	urgency := 1 - remaining.Hours()/dealExpiryWindow.Hours()
	if urgency < 0 {
		urgency = 0
	}
	if urgency > 1 {
		urgency = 1
	}

	typeWeight := dealTypeWeights[deal.DealType]

	return weightSavings*savingsScore + weightUrgency*urgency + weightType*typeWeight
}

// PersonalizeScore multiplies the score based on free-text user preferences
func PersonalizeScore(score float64, preferences string) float64 {
	p := strings.ToLower(preferences)
	multiplier := 1.0
	if strings.Contains(p, "budget") || strings.Contains(p, "cheap") || strings.Contains(p, "saving") {
		multiplier += 0.2
	}
	if strings.Contains(p, "luxury") {
		multiplier -= 0.1
	}
	if strings.Contains(p, "spontaneous") || strings.Contains(p, "last minute") {
		multiplier += 0.1
	}
	result := score * multiplier
	if result > 1 {
		result = 1
	}
	return result
}

// EnhanceDeal asks the LLM for narrative analysis of the deal. On any failure
// the deal is returned as-is; insight is best effort only.
func (t *TrackerService) EnhanceDeal(deal *models.Deal, destination string) *models.Deal {
	prompt := fmt.Sprintf(
		"A trip to %s normally costs $%.0f and is now available for $%.0f (%.1f%% off, %s deal, expires in %d hours). "+
			"Reply with a short paragraph starting with 'ANALYSIS:' on whether this is worth booking.",
		destination, deal.OriginalPrice, deal.NewPrice, deal.SavingsPercent,
		deal.DealType, int(time.Until(deal.ExpiresAt).Hours()),
	)

	answer, err := t.ai.Chat("You are a travel-deal analyst.", prompt)
	if err != nil {
		log.Printf("deal insight generation failed: %v", err)
		return deal
	}

	deal.Insight = ParseInsight(answer)
	return deal
}

// ParseInsight pulls the text after the ANALYSIS: marker out of a model
// response; without the marker the whole trimmed response is used
func ParseInsight(answer string) string {
	idx := strings.Index(answer, "ANALYSIS:")
	if idx >= 0 {
		return strings.TrimSpace(answer[idx+len("ANALYSIS:"):])
	}
	return strings.TrimSpace(answer)
}
