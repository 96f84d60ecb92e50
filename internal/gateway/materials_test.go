package gateway

import (
	"context"
	"net/http"
	"testing"

	"pestlinkgw/internal/domain"
)

func TestListMaterials(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/materials/bait-types":
			w.Write([]byte(`{"success":true,"baitTypes":[{"id":1,"name":"Bromadiolone blocks","active_ingredient":"bromadiolone"}]}`))
		case "/api/materials/chemicals":
			w.Write([]byte(`[{"chemical_id":"c-1","name":"Cypermethrin 10%"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	ctx := context.Background()
	baits, err := gw.ListBaitTypes(ctx)
	if err != nil {
		t.Fatalf("ListBaitTypes: %v", err)
	}
	if len(baits) != 1 || baits[0].BaitTypeID != "1" || baits[0].ActiveIngredient != "bromadiolone" {
		t.Fatalf("baits = %+v", baits)
	}

	chemicals, err := gw.ListChemicals(ctx)
	if err != nil {
		t.Fatalf("ListChemicals: %v", err)
	}
	if len(chemicals) != 1 || chemicals[0].ChemicalID != "c-1" {
		t.Fatalf("chemicals = %+v", chemicals)
	}
}

func TestCreateMaterialValidation(t *testing.T) {
	var called bool
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	if env := gw.CreateBaitType(context.Background(), domain.MaterialInput{}); env.Success {
		t.Fatal("missing name should fail locally")
	}
	if env := gw.CreateChemical(context.Background(), domain.MaterialInput{}); env.Success {
		t.Fatal("missing name should fail locally")
	}
	if called {
		t.Fatal("validation failures must not hit the network")
	}
}
