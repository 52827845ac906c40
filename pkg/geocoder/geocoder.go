package geocoder

//go:generate mockgen -source=geocoder.go -destination=mock_geocoder.go -package=geocoder

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/config"
	"bootcamp-api/pkg/geo"
)

const requestTimeout = 5 * time.Second

type Location struct {
	Point            geo.Point
	FormattedAddress string
	Street           string
	City             string
	State            string
	Zipcode          string
	Country          string
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Location, error)
}

type mapquestResponse struct {
	Info struct {
		StatusCode int      `json:"statuscode"`
		Messages   []string `json:"messages"`
	} `json:"info"`
	Results []struct {
		Locations []struct {
			Street     string `json:"street"`
			AdminArea5 string `json:"adminArea5"`
			AdminArea3 string `json:"adminArea3"`
			AdminArea1 string `json:"adminArea1"`
			PostalCode string `json:"postalCode"`
			LatLng     struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"latLng"`
		} `json:"locations"`
	} `json:"results"`
}

type mapquest struct {
	apiKey  string
	baseUrl string
}

func NewGeocoder(geocoderConfig *config.GeocoderConfig) Geocoder {
	return &mapquest{
		apiKey:  geocoderConfig.ApiKey,
		baseUrl: geocoderConfig.BaseUrl,
	}
}

func (m *mapquest) Geocode(_ context.Context, address string) (*Location, error) {
	query := url.Values{}
	query.Set("key", m.apiKey)
	query.Set("location", address)
	query.Set("maxResults", "1")

	agent := fiber.Get(m.baseUrl)
	agent.QueryString(query.Encode())
	agent.Timeout(requestTimeout)

	var response mapquestResponse
	statusCode, _, errs := agent.Struct(&response)
	if len(errs) > 0 {
		return nil, cerror.DependencyError("error occurred while call geocoder").
			WithFields(zap.Errors("errors", errs))
	}

	if statusCode != fiber.StatusOK || response.Info.StatusCode != 0 {
		return nil, cerror.DependencyError("geocoder returned unexpected status").
			WithFields(
				zap.Int("httpStatus", statusCode),
				zap.Int("geocoderStatus", response.Info.StatusCode),
				zap.Strings("messages", response.Info.Messages),
			)
	}

	if len(response.Results) == 0 || len(response.Results[0].Locations) == 0 {
		return nil, cerror.GeocodingFailed(address)
	}

	found := response.Results[0].Locations[0]
	// mapquest answers unknown input with the centroid of the country
	if found.AdminArea5 == "" && found.PostalCode == "" && found.Street == "" {
		return nil, cerror.GeocodingFailed(address)
	}

	location := &Location{
		Point:   geo.Point{Latitude: found.LatLng.Lat, Longitude: found.LatLng.Lng},
		Street:  found.Street,
		City:    found.AdminArea5,
		State:   found.AdminArea3,
		Zipcode: found.PostalCode,
		Country: found.AdminArea1,
	}
	location.FormattedAddress = formatAddress(location)

	return location, nil
}

func formatAddress(location *Location) string {
	var parts []string
	for _, part := range []string{
		location.Street,
		location.City,
		strings.TrimSpace(fmt.Sprintf("%s %s", location.State, location.Zipcode)),
		location.Country,
	} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}
