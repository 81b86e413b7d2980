package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restockbot/internal/catalog"
)

func TestKeepAliveRoot(t *testing.T) {
	ctx := newTestAppContext(t, &fakeBot{})
	router := newKeepAliveRouter(ctx)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if w.Body.String() != "Bot is running" {
		t.Fatalf("body %q", w.Body.String())
	}
}

func TestKeepAliveHealthz(t *testing.T) {
	ctx := newTestAppContext(t, &fakeBot{})
	router := newKeepAliveRouter(ctx)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var body struct {
		Uptime   string `json:"uptime"`
		Products int    `json:"products"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad health payload: %v", err)
	}
	if body.Products != 0 {
		t.Fatalf("products = %d on an empty catalog", body.Products)
	}
}

func TestKeepAliveCatalog(t *testing.T) {
	ctx := newTestAppContext(t, &fakeBot{})
	err := ctx.Catalog.Put("1K Followers", catalog.ProductRecord{
		Variants:  []catalog.Variant{{Name: "Basic", Price: "€3.00", Stock: 10}},
		ChannelID: "-1001234",
	})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	router := newKeepAliveRouter(ctx)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	var records map[string]catalog.ProductRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("bad catalog payload: %v", err)
	}
	rec, ok := records["1K Followers"]
	if !ok || rec.ChannelID != "-1001234" {
		t.Fatalf("catalog payload wrong: %+v", records)
	}
}
