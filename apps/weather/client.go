package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"
	DefaultLocateURL   = "http://ip-api.com/json/?fields=status,lat,lon,city,country"
)

// Days is the number of forecast days requested.
const Days = 7

var ErrLocate = errors.New("weather: location lookup failed")

// Location is a place to fetch the forecast for.
type Location struct {
	Lat, Lon float64
	City     string
}

// Zurich is used when no location is configured and the lookup fails.
var Zurich = Location{Lat: 47.3769, Lon: 8.5417, City: "ZRH"}

// Day is the forecast for one day. Max and Min are nil when the service
// had no value.
type Day struct {
	Date string
	Code int
	Max  *float64
	Min  *float64
}

// Data is one forecast.
type Data struct {
	City        string
	CurrentTemp *float64
	CurrentCode *int
	Days        []Day
}

// Client talks to the geolocation and forecast services.
type Client struct {
	HTTP        *http.Client
	ForecastURL string
	LocateURL   string
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("weather: build request: %w", err)
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("weather: get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather: get %s: %s", req.URL.Host, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("weather: decode %s: %w", req.URL.Host, err)
	}
	return nil
}

// Locate looks up the location of the current public IP address.
func (c *Client) Locate(ctx context.Context) (Location, error) {
	var body struct {
		Status  string  `json:"status"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
		City    string  `json:"city"`
		Country string  `json:"country"`
	}
	locateURL := c.LocateURL
	if locateURL == "" {
		locateURL = DefaultLocateURL
	}
	if err := c.getJSON(ctx, locateURL, &body); err != nil {
		return Location{}, err
	}
	if body.Status != "success" {
		return Location{}, fmt.Errorf("%w: status %q", ErrLocate, body.Status)
	}
	city := body.City
	if city == "" {
		city = "Ort"
	}
	return Location{Lat: body.Lat, Lon: body.Lon, City: city}, nil
}

type forecastResponse struct {
	Current struct {
		Temperature *float64 `json:"temperature_2m"`
		Code        *int     `json:"weather_code"`
	} `json:"current"`
	Daily struct {
		Time []string   `json:"time"`
		Code []*int     `json:"weather_code"`
		Max  []*float64 `json:"temperature_2m_max"`
		Min  []*float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

// forecastURL builds the request URL for loc.
func (c *Client) forecastURL(loc Location) (string, error) {
	base := c.ForecastURL
	if base == "" {
		base = DefaultForecastURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("weather: forecast url: %w", err)
	}
	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(loc.Lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(loc.Lon, 'f', 4, 64))
	q.Set("current", "temperature_2m,weather_code")
	q.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min")
	q.Set("forecast_days", strconv.Itoa(Days))
	q.Set("temperature_unit", "celsius")
	q.Set("timezone", "auto")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Forecast fetches the current conditions and the daily forecast for loc.
func (c *Client) Forecast(ctx context.Context, loc Location) (*Data, error) {
	rawURL, err := c.forecastURL(loc)
	if err != nil {
		return nil, err
	}

	var body forecastResponse
	if err := c.getJSON(ctx, rawURL, &body); err != nil {
		return nil, err
	}

	data := &Data{
		City:        loc.City,
		CurrentTemp: body.Current.Temperature,
		CurrentCode: body.Current.Code,
		Days:        make([]Day, 0, len(body.Daily.Time)),
	}
	for i, date := range body.Daily.Time {
		day := Day{Date: date, Code: codeCloud}
		if i < len(body.Daily.Code) && body.Daily.Code[i] != nil {
			day.Code = *body.Daily.Code[i]
		}
		if i < len(body.Daily.Max) {
			day.Max = body.Daily.Max[i]
		}
		if i < len(body.Daily.Min) {
			day.Min = body.Daily.Min[i]
		}
		data.Days = append(data.Days, day)
	}
	return data, nil
}
