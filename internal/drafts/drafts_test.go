package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/easylandingweb/easylanding/internal/db"
	"github.com/easylandingweb/easylanding/internal/restaurant"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func sample(name string) restaurant.Record {
	rec := restaurant.New()
	rec.Name = name
	rec.Images = []string{"a.jpg", "", "b.jpg"}
	rec.Socials = []restaurant.SocialLink{{Name: "Facebook", URL: "https://fb.com/x"}}
	rec.AIEnabled = true
	rec.Customization = "rouge"
	return rec
}

func TestSaveAndLoad(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	saved, err := store.Save(ctx, "bistrot", sample("Le Petit Bistrot"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected generated ID")
	}

	got, err := store.Load(ctx, "bistrot")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Record.Name != "Le Petit Bistrot" {
		t.Errorf("Name = %q", got.Record.Name)
	}
	if len(got.Record.Images) != 3 {
		t.Errorf("Images = %v, stored record should be unfiltered", got.Record.Images)
	}
	if !got.Record.AIEnabled || got.Record.Customization != "rouge" {
		t.Errorf("style fields lost: %+v", got.Record)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not parsed")
	}
}

func TestSaveUpserts(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	first, err := store.Save(ctx, "k", sample("One"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := store.Save(ctx, "k", sample("Two"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first.ID != second.ID {
		t.Error("upsert should keep the draft ID")
	}
	if second.Record.Name != "Two" {
		t.Errorf("Name = %q, want Two", second.Record.Name)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("List len = %d, want 1", len(list))
	}
}

func TestDefaultKey(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if _, err := store.Save(ctx, "", sample("Default")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load(ctx, DefaultKey)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Key != DefaultKey {
		t.Errorf("Key = %q, want %q", got.Key, DefaultKey)
	}
}

func TestLoadNotFound(t *testing.T) {
	store := setupStore(t)
	_, err := store.Load(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListAndDelete(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		if _, err := store.Save(ctx, key, sample("Resto "+key)); err != nil {
			t.Fatalf("Save %s: %v", key, err)
		}
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("List len = %d, want 3", len(list))
	}
	for _, s := range list {
		if s.Name != "Resto "+s.Key {
			t.Errorf("summary %s has name %q", s.Key, s.Name)
		}
	}

	if err := store.Delete(ctx, "b"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, "b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete err = %v, want ErrNotFound", err)
	}
	list, _ = store.List(ctx)
	if len(list) != 2 {
		t.Errorf("List len after delete = %d, want 2", len(list))
	}
}

func TestListEmpty(t *testing.T) {
	store := setupStore(t)
	list, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("List = %v, want empty non-nil slice", list)
	}
}

func newRouter(store *Store) chi.Router {
	r := chi.NewRouter()
	RegisterRoutes(r, store)
	return r
}

func TestRoutesPutGetDelete(t *testing.T) {
	store := setupStore(t)
	r := newRouter(store)

	body := `{"nom": "Chez Nous", "images": ["x.jpg"], "socials": [], "template": "elegant"}`
	req := httptest.NewRequest(http.MethodPut, "/api/drafts/chez-nous", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, body = %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/drafts/chez-nous", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rec.Code)
	}
	var d Draft
	if err := json.NewDecoder(rec.Body).Decode(&d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Record.Name != "Chez Nous" || d.Record.Template != "elegant" {
		t.Errorf("draft = %+v", d.Record)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/drafts/", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	var list []Summary
	json.NewDecoder(rec.Body).Decode(&list)
	if len(list) != 1 || list[0].Key != "chez-nous" {
		t.Errorf("list = %v", list)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/drafts/chez-nous", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("DELETE status = %d", rec.Code)
	}
}

func TestRoutesErrors(t *testing.T) {
	r := newRouter(setupStore(t))

	req := httptest.NewRequest(http.MethodGet, "/api/drafts/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET missing status = %d, want 404", rec.Code)
	}
	var body map[string]string
	json.NewDecoder(rec.Body).Decode(&body)
	if body["error"] == "" {
		t.Error("expected JSON error body")
	}

	req = httptest.NewRequest(http.MethodPut, "/api/drafts/bad", strings.NewReader("{not json"))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("PUT invalid status = %d, want 400", rec.Code)
	}
}
