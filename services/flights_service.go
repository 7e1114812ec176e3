package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/Sishir120/PackYourBags-sub000/config"
)

// FlightsService proxies the SerpAPI Google Flights engine
type FlightsService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewFlightsService(cfg *config.Config) *FlightsService {
	if cfg.SerpAPIKey == "" {
		log.Println("SERPAPI_KEY not set - flight search will return estimated prices")
	}
	return &FlightsService{
		baseURL: cfg.SerpAPIBaseURL,
		apiKey:  cfg.SerpAPIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type FlightQuote struct {
	Price         float64 `json:"price"`
	Airline       string  `json:"airline"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Duration      int     `json:"duration_minutes"`
	Stops         int     `json:"stops"`
	Estimated     bool    `json:"estimated"`
}

type serpFlightsResponse struct {
	BestFlights  []serpFlightOption `json:"best_flights"`
	OtherFlights []serpFlightOption `json:"other_flights"`
}

type serpFlightOption struct {
	Price         float64 `json:"price"`
	TotalDuration int     `json:"total_duration"`
	Flights       []struct {
		Airline          string `json:"airline"`
		DepartureAirport struct {
			Time string `json:"time"`
		} `json:"departure_airport"`
		ArrivalAirport struct {
			Time string `json:"time"`
		} `json:"arrival_airport"`
	} `json:"flights"`
}

// SearchFlights queries round-trip offers between two IATA codes. Without an
// API key it falls back to deterministic estimates so the product keeps working.
func (s *FlightsService) SearchFlights(origin, destination, outboundDate, returnDate string) ([]FlightQuote, error) {
	if s.apiKey == "" {
		return s.estimatedQuotes(origin, destination), nil
	}

	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("departure_id", origin)
	params.Set("arrival_id", destination)
	params.Set("outbound_date", outboundDate)
	if returnDate != "" {
		params.Set("return_date", returnDate)
	} else {
		params.Set("type", "2")
	}
	params.Set("currency", "USD")
	params.Set("api_key", s.apiKey)

	resp, err := s.httpClient.Get(s.baseURL + "/search.json?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("flight search request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read flight search response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flight search returned status %d", resp.StatusCode)
	}

	var parsed serpFlightsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse flight search response: %v", err)
	}

	options := parsed.BestFlights
	if len(options) == 0 {
		options = parsed.OtherFlights
	}

	quotes := make([]FlightQuote, 0, len(options))
	for _, opt := range options {
		q := FlightQuote{
			Price:    opt.Price,
			Duration: opt.TotalDuration,
			Stops:    len(opt.Flights) - 1,
		}
		if len(opt.Flights) > 0 {
			q.Airline = opt.Flights[0].Airline
			q.DepartureTime = opt.Flights[0].DepartureAirport.Time
			q.ArrivalTime = opt.Flights[len(opt.Flights)-1].ArrivalAirport.Time
		}
		if q.Stops < 0 {
			q.Stops = 0
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// LowestPrice returns the cheapest quote, or 0 when there are none
func (s *FlightsService) LowestPrice(origin, destination, outboundDate, returnDate string) (float64, error) {
	quotes, err := s.SearchFlights(origin, destination, outboundDate, returnDate)
	if err != nil {
		return 0, err
	}
	lowest := 0.0
	for _, q := range quotes {
		if q.Price > 0 && (lowest == 0 || q.Price < lowest) {
			lowest = q.Price
		}
	}
	return lowest, nil
}

// estimatedQuotes derives stable fake prices from the route so that the same
// search always shows the same numbers
func (s *FlightsService) estimatedQuotes(origin, destination string) []FlightQuote {
	seed := 0
	for _, r := range origin + destination {
		seed += int(r)
	}
	base := 180 + float64(seed%420)
	return []FlightQuote{
		{Price: base, Airline: "SkyBudget", Duration: 210 + seed%300, Stops: 1, Estimated: true},
		{Price: base * 1.35, Airline: "AeroDirect", Duration: 150 + seed%200, Stops: 0, Estimated: true},
	}
}
