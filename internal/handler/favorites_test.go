package handler

import (
	"net/http"
	"testing"

	"github.com/dharmasatrya/triptrio/internal/favorites"
	"github.com/dharmasatrya/triptrio/internal/logger"
	"github.com/dharmasatrya/triptrio/internal/models"
)

func TestFavoritesLifecycle(t *testing.T) {
	e := newEcho()
	h := NewFavoritesHandler(favorites.NewMemoryStore(), logger.Discard())

	c, rec := newJSONContext(e, http.MethodPost, "/api/favorites", `{"payload":{"id":"CAND-1","flight":{"carrier_name":"United"}}}`)
	if err := h.Add(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectStatus(t, rec, http.StatusOK)

	var added models.FavoriteResponse
	decode(t, rec, &added)
	if added.Item.ID == "" {
		t.Fatal("expected an id for the new favorite")
	}

	c, rec = newJSONContext(e, http.MethodGet, "/api/favorites", "")
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var list models.FavoritesResponse
	decode(t, rec, &list)
	if len(list.Items) != 1 || list.Items[0].ID != added.Item.ID {
		t.Fatalf("expected the saved favorite, got %+v", list.Items)
	}

	c, rec = newJSONContext(e, http.MethodDelete, "/api/favorites/"+added.Item.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(added.Item.ID)
	if err := h.Remove(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var removed models.OKResponse
	decode(t, rec, &removed)
	if !removed.OK {
		t.Fatal("expected ok after removal")
	}
}

func TestFavoritesAddWithoutPayload(t *testing.T) {
	h := NewFavoritesHandler(favorites.NewMemoryStore(), logger.Discard())

	c, rec := newJSONContext(newEcho(), http.MethodPost, "/api/favorites", `{}`)
	if err := h.Add(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectStatus(t, rec, http.StatusBadRequest)
}
