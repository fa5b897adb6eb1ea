package httpapi

import (
	"net"
	"net/http"
	"strings"
)

// unknownCountry is the ISO 3166 user-assigned code for an unresolved origin.
const unknownCountry = "ZZ"

// Edge proxies in front of the API, in the order they are trusted.
var (
	clientIPHeaders      = []string{"Fly-Client-IP", "X-Forwarded-For", "X-Real-IP"}
	clientCountryHeaders = []string{"Fly-Client-Country", "CF-IPCountry", "CloudFront-Viewer-Country"}
)

type clientGeo struct {
	IP      string
	Country string
}

func clientGeoFromRequest(r *http.Request) clientGeo {
	geo := clientGeo{Country: unknownCountry}

	for _, header := range clientIPHeaders {
		if ip := firstIP(r.Header.Get(header)); ip != "" {
			geo.IP = ip
			break
		}
	}
	if geo.IP == "" {
		geo.IP = firstIP(r.RemoteAddr)
	}

	for _, header := range clientCountryHeaders {
		if code, ok := countryCode(r.Header.Get(header)); ok {
			geo.Country = code
			break
		}
	}

	return geo
}

// participantCountry keeps an explicit country and otherwise uses the edge country.
func participantCountry(explicit string, r *http.Request) string {
	if value := strings.TrimSpace(explicit); value != "" {
		return value
	}
	return clientGeoFromRequest(r).Country
}

func firstIP(raw string) string {
	value, _, _ := strings.Cut(raw, ",")
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(value); err == nil {
		value = host
	}
	if parsed := net.ParseIP(value); parsed != nil {
		return parsed.String()
	}
	return ""
}

func countryCode(raw string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 2 || code == unknownCountry {
		return "", false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", false
		}
	}
	return code, true
}
