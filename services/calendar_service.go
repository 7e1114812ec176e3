package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Sishir120/PackYourBags-sub000/utils"
)

const calendarCacheTTL = 6 * time.Hour

// CalendarService fetches busy intervals from the Google Calendar freeBusy API
type CalendarService struct {
	baseURL    string
	httpClient *http.Client
}

func NewCalendarService() *CalendarService {
	return &CalendarService{
		baseURL: "https://www.googleapis.com/calendar/v3",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type freeBusyRequest struct {
	TimeMin string              `json:"timeMin"`
	TimeMax string              `json:"timeMax"`
	Items   []map[string]string `json:"items"`
}

type freeBusyResponse struct {
	Calendars map[string]struct {
		Busy []struct {
			Start string `json:"start"`
			End   string `json:"end"`
		} `json:"busy"`
	} `json:"calendars"`
}

// FetchBusy returns the user's busy intervals over [from, to), served from a
// 6-hour redis cache when available. accessToken is the user's Google OAuth
// token with calendar.readonly scope.
func (s *CalendarService) FetchBusy(userID uint, accessToken string, from, to time.Time) ([]BusyInterval, error) {
	cacheKey := fmt.Sprintf("calendar_busy:%d", userID)

	if rdb := utils.GetRedis(); rdb != nil {
		if cached, err := rdb.Get(utils.RedisCtx(), cacheKey).Result(); err == nil {
			var intervals []BusyInterval
			if json.Unmarshal([]byte(cached), &intervals) == nil {
				return intervals, nil
			}
		}
	}

	payload := freeBusyRequest{
		TimeMin: from.UTC().Format(time.RFC3339),
		TimeMax: to.UTC().Format(time.RFC3339),
		Items:   []map[string]string{{"id": "primary"}},
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal freeBusy request: %v", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/freeBusy", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create freeBusy request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("freeBusy request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read freeBusy response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("freeBusy returned status %d", resp.StatusCode)
	}

	var parsed freeBusyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse freeBusy response: %v", err)
	}

	var intervals []BusyInterval
	for _, cal := range parsed.Calendars {
		for _, b := range cal.Busy {
			start, err1 := time.Parse(time.RFC3339, b.Start)
			end, err2 := time.Parse(time.RFC3339, b.End)
			if err1 != nil || err2 != nil {
				continue
			}
			intervals = append(intervals, BusyInterval{Start: start.UTC(), End: end.UTC()})
		}
	}

	if rdb := utils.GetRedis(); rdb != nil {
		if data, err := json.Marshal(intervals); err == nil {
			rdb.Set(utils.RedisCtx(), cacheKey, data, calendarCacheTTL)
		}
	}

	return intervals, nil
}
