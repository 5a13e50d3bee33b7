package services

import (
	"voetbal-game-server/utils"
)

// R2Source reads the catalog files from the scraper's R2 bucket.
type R2Source struct {
	Prefix string // object key prefix, e.g. "catalog/"
}

func (s R2Source) FetchClubs() ([]byte, error) {
	return utils.DownloadFromR2(s.Prefix + "clubs.json")
}

func (s R2Source) FetchMemberships() ([]byte, error) {
	return utils.DownloadFromR2(s.Prefix + "memberships.json")
}
