package services

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"voetbal-game-server/models"

	"github.com/gosimple/slug"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CatalogSource supplies the raw scraped data files (clubs.json and
// memberships.json). The scraper is an offline collaborator; at runtime the
// data either sits in a local directory or in the R2 bucket it uploads to.
type CatalogSource interface {
	FetchClubs() ([]byte, error)
	FetchMemberships() ([]byte, error)
}

// LocalDirSource reads the catalog files from disk.
type LocalDirSource struct {
	Dir string
}

func (s LocalDirSource) FetchClubs() ([]byte, error) {
	return os.ReadFile(filepath.Join(s.Dir, "clubs.json"))
}

func (s LocalDirSource) FetchMemberships() ([]byte, error) {
	return os.ReadFile(filepath.Join(s.Dir, "memberships.json"))
}

// CatalogService transforms raw scraped data into game-ready clubs and
// players. All query methods return empty results and log a warning when
// called before Initialize has succeeded.
type CatalogService struct {
	source CatalogSource

	mu          sync.RWMutex
	initialized bool
	clubs       []models.Club
	players     []models.Player
}

func NewCatalogService(source CatalogSource) *CatalogService {
	return &CatalogService{source: source}
}

// clubStyles carries the hand-curated short names and shirt colors for the
// known clubs; anything else gets a derived short name and default colors.
var clubStyles = map[int]struct {
	short, primary, secondary string
}{
	180: {"AJX", "#D2122E", "#FFFFFF"}, // Ajax
	391: {"FCB", "#DC052D", "#FFFFFF"}, // Bayern München
	140: {"BAR", "#A50044", "#004D98"}, // Barcelona
	163: {"RMA", "#FEBE10", "#00529F"}, // Real Madrid
	208: {"TEL", "#FFFFFF", "#FF0000"}, // Telstar
	179: {"AZ", "#FF0000", "#FFFFFF"},  // AZ Alkmaar
	115: {"MIL", "#AC1E44", "#000000"}, // AC Milan
	47:  {"MCI", "#6CABDD", "#FFFFFF"}, // Manchester City
	44:  {"LIV", "#C8102E", "#FFFFFF"}, // Liverpool
	27:  {"CRY", "#1B458F", "#A7A5A6"}, // Crystal Palace
}

// Initialize loads and transforms the catalog data. Idempotent; fails loudly
// only when the underlying data load fails.
func (c *CatalogService) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return nil
	}

	rawClubs, err := c.source.FetchClubs()
	if err != nil {
		return fmt.Errorf("fetch clubs: %w", err)
	}
	rawMemberships, err := c.source.FetchMemberships()
	if err != nil {
		return fmt.Errorf("fetch memberships: %w", err)
	}

	var clubs []models.RawClub
	if err := json.Unmarshal(rawClubs, &clubs); err != nil {
		return fmt.Errorf("parse clubs: %w", err)
	}
	var memberships []models.RawMembership
	if err := json.Unmarshal(rawMemberships, &memberships); err != nil {
		return fmt.Errorf("parse memberships: %w", err)
	}

	c.clubs = transformClubs(clubs)
	c.players = transformPlayers(memberships)
	c.initialized = true

	log.Printf("✅ Catalog initialized: %d clubs, %d players", len(c.clubs), len(c.players))
	return nil
}

func transformClubs(raw []models.RawClub) []models.Club {
	clubs := make([]models.Club, 0, len(raw))
	for _, rc := range raw {
		club := models.Club{
			ID:             rc.ClubID,
			Name:           rc.Name,
			Slug:           slug.Make(rc.Name),
			ShortName:      strings.ToUpper(firstN(rc.Name, 3)),
			PrimaryColor:   "#1976D2",
			SecondaryColor: "#FFFFFF",
		}
		if style, ok := clubStyles[rc.ClubID]; ok {
			club.ShortName = style.short
			club.PrimaryColor = style.primary
			club.SecondaryColor = style.secondary
		}
		clubs = append(clubs, club)
	}

	// Club names are Dutch/European; plain byte order misplaces diacritics.
	col := collate.New(language.Dutch)
	sort.SliceStable(clubs, func(i, j int) bool {
		return col.CompareString(clubs[i].Name, clubs[j].Name) < 0
	})
	return clubs
}

func transformPlayers(raw []models.RawMembership) []models.Player {
	players := make([]models.Player, 0, len(raw))
	for _, m := range raw {
		rating := m.Rating
		if rating == 0 {
			rating = 50
		}
		players = append(players, models.Player{
			ID:          m.PlayerID,
			Name:        m.PlayerName,
			ClubID:      m.ClubID,
			Position:    normalizePosition(m.Position),
			Rating:      rating,
			ShirtNumber: m.ShirtNumber,
			Rarity:      rarityForRating(rating),
			ImageURL:    fmt.Sprintf("https://cdn.soccerwiki.org/images/player/%d.png", m.PlayerID),
		})
	}
	return players
}

func normalizePosition(position string) models.PlayerPosition {
	switch {
	case strings.Contains(position, "K"):
		return models.PositionKeeper
	case strings.Contains(position, "D"), strings.Contains(position, "B"):
		return models.PositionDefender
	case strings.Contains(position, "M"):
		return models.PositionMidfielder
	case strings.Contains(position, "A"):
		return models.PositionAttacker
	}
	return models.PositionMidfielder
}

func rarityForRating(rating int) models.PlayerRarity {
	switch {
	case rating >= 90:
		return models.RarityLegendary
	case rating >= 85:
		return models.RarityRare
	case rating >= 80:
		return models.RarityUncommon
	}
	return models.RarityCommon
}

func firstN(s string, n int) string {
	r := []rune(s)
	if len(r) < n {
		return s
	}
	return string(r[:n])
}

// IsInitialized reports whether catalog data has been loaded.
func (c *CatalogService) IsInitialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialized
}

func (c *CatalogService) warnUninitialized() bool {
	if !c.initialized {
		log.Println("⚠️  catalog not initialized yet")
		return true
	}
	return false
}

// GetAllClubs returns the clubs in collated name order.
func (c *CatalogService) GetAllClubs() []models.Club {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.warnUninitialized() {
		return nil
	}
	out := make([]models.Club, len(c.clubs))
	copy(out, c.clubs)
	return out
}

func (c *CatalogService) GetClubByID(id int) *models.Club {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.warnUninitialized() {
		return nil
	}
	for i := range c.clubs {
		if c.clubs[i].ID == id {
			club := c.clubs[i]
			return &club
		}
	}
	return nil
}

func (c *CatalogService) GetPlayersByClub(clubID int) []models.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.warnUninitialized() {
		return nil
	}
	var out []models.Player
	for _, p := range c.players {
		if p.ClubID == clubID {
			out = append(out, p)
		}
	}
	return out
}

func (c *CatalogService) GetPlayersByPosition(position models.PlayerPosition) []models.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.warnUninitialized() {
		return nil
	}
	var out []models.Player
	for _, p := range c.players {
		if p.Position == position {
			out = append(out, p)
		}
	}
	return out
}

func (c *CatalogService) GetPlayerByID(id int) *models.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.warnUninitialized() {
		return nil
	}
	for i := range c.players {
		if c.players[i].ID == id {
			p := c.players[i]
			return &p
		}
	}
	return nil
}

func (c *CatalogService) GetAllPlayers() []models.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.warnUninitialized() {
		return nil
	}
	out := make([]models.Player, len(c.players))
	copy(out, c.players)
	return out
}

// AverageClubRating is used for opponent strength in battles; falls back to
// the given default when the club has no roster or the catalog is not ready.
func (c *CatalogService) AverageClubRating(clubID, fallback int) int {
	players := c.GetPlayersByClub(clubID)
	if len(players) == 0 {
		return fallback
	}
	total := 0
	for _, p := range players {
		total += p.Rating
	}
	return total / len(players)
}
