package httpapi

import (
	"net/http/httptest"
	"testing"
)

func TestClientGeoFromRequest(t *testing.T) {
	tests := []struct {
		name        string
		headers     map[string]string
		remoteAddr  string
		wantIP      string
		wantCountry string
	}{
		{
			name:        "fly headers win",
			headers:     map[string]string{"Fly-Client-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1", "Fly-Client-Country": "uy"},
			remoteAddr:  "10.0.0.1:5000",
			wantIP:      "203.0.113.7",
			wantCountry: "UY",
		},
		{
			name:        "first forwarded address",
			headers:     map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.2", "CF-IPCountry": "AR"},
			remoteAddr:  "10.0.0.1:5000",
			wantIP:      "198.51.100.1",
			wantCountry: "AR",
		},
		{
			name:        "remote addr fallback and unknown country",
			headers:     map[string]string{"CF-IPCountry": "XX1"},
			remoteAddr:  "192.0.2.10:443",
			wantIP:      "192.0.2.10",
			wantCountry: unknownCountry,
		},
		{
			name:        "cloudflare unknown marker skipped",
			headers:     map[string]string{"CF-IPCountry": "ZZ", "CloudFront-Viewer-Country": "br"},
			remoteAddr:  "garbage",
			wantIP:      "",
			wantCountry: "BR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/pencas", nil)
			req.RemoteAddr = tc.remoteAddr
			for key, value := range tc.headers {
				req.Header.Set(key, value)
			}

			got := clientGeoFromRequest(req)
			if got.IP != tc.wantIP || got.Country != tc.wantCountry {
				t.Fatalf("unexpected geo: %+v", got)
			}
		})
	}
}

func TestParticipantCountry(t *testing.T) {
	req := httptest.NewRequest("POST", "/v1/pencas/p1/participants", nil)
	req.Header.Set("CF-IPCountry", "FR")

	if got := participantCountry(" Uruguay ", req); got != "Uruguay" {
		t.Fatalf("explicit country must win, got %q", got)
	}
	if got := participantCountry("", req); got != "FR" {
		t.Fatalf("expected header country, got %q", got)
	}
}
