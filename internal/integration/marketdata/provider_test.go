package marketdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerror "github.com/finly/backend/internal/domain/error"
)

func TestCoinGeckoClientCryptoQuote(t *testing.T) {
	t.Run("maps the symbol and parses the price", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("ids"); got != "bitcoin" {
				t.Errorf("expected ids=bitcoin, got %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"bitcoin":{"usd":64250.5,"usd_24h_change":-1.25}}`))
		}))
		defer srv.Close()

		client := NewCoinGeckoClient(time.Second)
		client.baseURL = srv.URL

		quote, err := client.CryptoQuote(context.Background(), "btc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Symbol != "BTC" {
			t.Errorf("expected symbol BTC, got %q", quote.Symbol)
		}
		if quote.Price != 64250.5 {
			t.Errorf("expected price 64250.5, got %f", quote.Price)
		}
		if quote.Change24h != -1.25 {
			t.Errorf("expected change -1.25, got %f", quote.Change24h)
		}
	})

	t.Run("missing coin reports quote not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := NewCoinGeckoClient(time.Second)
		client.baseURL = srv.URL

		_, err := client.CryptoQuote(context.Background(), "NOPE")
		if !errors.Is(err, domainerror.ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestYahooClientStockQuote(t *testing.T) {
	t.Run("computes the change percentage from previous close", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"chart":{"result":[{"meta":{"regularMarketPrice":105,"previousClose":100}}]}}`))
		}))
		defer srv.Close()

		client := NewYahooClient(time.Second)
		client.baseURL = srv.URL

		quote, err := client.StockQuote(context.Background(), "AAPL")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Price != 105 {
			t.Errorf("expected price 105, got %f", quote.Price)
		}
		if quote.Change24h != 5 {
			t.Errorf("expected change 5%%, got %f", quote.Change24h)
		}
	})

	t.Run("index shorthand resolves to the caret symbol", func(t *testing.T) {
		var requested string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested = r.URL.Path
			_, _ = w.Write([]byte(`{"chart":{"result":[{"meta":{"regularMarketPrice":5000,"previousClose":5000}}]}}`))
		}))
		defer srv.Close()

		client := NewYahooClient(time.Second)
		client.baseURL = srv.URL

		quote, err := client.StockQuote(context.Background(), "GSPC")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if requested != "/%5EGSPC" && requested != "/^GSPC" {
			t.Errorf("expected ^GSPC request path, got %q", requested)
		}
		if quote.Symbol != "GSPC" {
			t.Errorf("expected caret stripped from symbol, got %q", quote.Symbol)
		}
	})

	t.Run("empty result reports quote not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"chart":{"result":[]}}`))
		}))
		defer srv.Close()

		client := NewYahooClient(time.Second)
		client.baseURL = srv.URL

		_, err := client.StockQuote(context.Background(), "NOPE")
		if !errors.Is(err, domainerror.ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestCoinbaseClientGoldQuote(t *testing.T) {
	t.Run("inverts the XAU rate", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			// 0.00025 XAU per USD -> 4000 USD per ounce
			_, _ = w.Write([]byte(`{"data":{"rates":{"XAU":"0.00025"}}}`))
		}))
		defer srv.Close()

		client := NewCoinbaseClient(time.Second)
		client.baseURL = srv.URL

		quote, err := client.GoldQuote(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Symbol != "GOLD" {
			t.Errorf("expected symbol GOLD, got %q", quote.Symbol)
		}
		if quote.Price != 4000 {
			t.Errorf("expected price 4000, got %f", quote.Price)
		}
	})

	t.Run("implausible price is rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			// 0.1 XAU per USD -> 10 USD per ounce, clearly bad data
			_, _ = w.Write([]byte(`{"data":{"rates":{"XAU":"0.1"}}}`))
		}))
		defer srv.Close()

		client := NewCoinbaseClient(time.Second)
		client.baseURL = srv.URL

		_, err := client.GoldQuote(context.Background())
		if !errors.Is(err, domainerror.ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}
