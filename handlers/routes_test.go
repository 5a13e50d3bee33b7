package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"voetbal-game-server/config"
	"voetbal-game-server/models"
	"voetbal-game-server/services"

	"github.com/gofiber/fiber/v2"
)

type stubSource struct {
	clubs       []models.RawClub
	memberships []models.RawMembership
}

func (s stubSource) FetchClubs() ([]byte, error)       { return json.Marshal(s.clubs) }
func (s stubSource) FetchMemberships() ([]byte, error) { return json.Marshal(s.memberships) }

// newTestApp registers every route group the way main.go does, against an
// initialized catalog. The state manager has no database; the tests below
// never reach an engine load.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	catalog := services.NewCatalogService(stubSource{
		clubs: []models.RawClub{{ClubID: 208, Name: "Telstar"}},
		memberships: []models.RawMembership{
			{PlayerID: 21, PlayerName: "Teun", ClubID: 208, Position: "M", Rating: 62, ShirtNumber: 8},
		},
	})
	if err := catalog.Initialize(); err != nil {
		t.Fatalf("catalog initialize: %v", err)
	}

	manager := services.NewStateManager(nil, config.DefaultBalance(), nil, catalog, nil)

	app := fiber.New()
	SetupSessionRoutes(app, manager)
	SetupTournamentRoutes(app, manager)
	SetupCollectionRoutes(app, manager)
	SetupStaffRoutes(app, manager)
	SetupCatalogRoutes(app, catalog)
	return app
}

func TestCatalogRoutesAreReachableWithoutUserHeader(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/catalog/clubs",
		"/catalog/clubs/208",
		"/catalog/clubs/208/players",
		"/catalog/players",
		"/catalog/players/21",
		"/staff/catalog",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("GET %s without X-User-ID = %d, want 200", path, resp.StatusCode)
		}
	}
}

func TestSecuredRoutesRejectMissingUserHeader(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/stats", "/session", "/tournament", "/collection", "/staff"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("GET %s without X-User-ID = %d, want 401", path, resp.StatusCode)
		}
	}
}
