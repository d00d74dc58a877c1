package config_test

import (
	"testing"

	"github.com/sangkips/hospitality-pos/internal/config"
)

func TestParseRates(t *testing.T) {
	rates := config.ParseRates(" usd=0.012, EUR = 0.011 ,GBP=abc,JPY=-1,nonsense,XX=2,")

	if len(rates) != 2 {
		t.Fatalf("got %d rates: %v", len(rates), rates)
	}
	if r, ok := rates["USD"]; !ok || r.String() != "0.012" {
		t.Errorf("USD: got %v", r)
	}
	if r, ok := rates["EUR"]; !ok || r.String() != "0.011" {
		t.Errorf("EUR: got %v", r)
	}
}

func TestParseRates_Empty(t *testing.T) {
	if rates := config.ParseRates(""); len(rates) != 0 {
		t.Errorf("got %v", rates)
	}
}

func TestDSN(t *testing.T) {
	c := config.DatabaseConfig{
		Host: "db", Port: "5432", Name: "pos", User: "u", Password: "p", SSLMode: "disable", Timezone: "UTC",
	}
	want := "host=db user=u password=p dbname=pos port=5432 sslmode=disable TimeZone=UTC"
	if got := c.DSN(); got != want {
		t.Errorf("got %q", got)
	}
}
