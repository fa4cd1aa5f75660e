package vacancies

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) (*Repository, error) {
	if err := db.AutoMigrate(&Vacancy{}, &DuplicateLink{}); err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

// Upsert writes a vacancy keyed by its id, replacing any previous version of
// the same row. Ingest is idempotent so event replays are safe.
func (r *Repository) Upsert(v *Vacancy) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "vac_id"}},
		UpdateAll: true,
	}).Create(v).Error
}

func (r *Repository) FetchAll() ([]Vacancy, error) {
	var vacs []Vacancy
	if err := r.db.Order("vac_id").Find(&vacs).Error; err != nil {
		return nil, err
	}
	return vacs, nil
}

func (r *Repository) FetchByPerson(cliID int64) ([]Vacancy, error) {
	var vacs []Vacancy
	if err := r.db.Where("cli_id = ?", cliID).Order("vac_id").Find(&vacs).Error; err != nil {
		return nil, err
	}
	return vacs, nil
}

// SaveLink records a duplicate-identity link.
func (r *Repository) SaveLink(link *DuplicateLink) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cli_id"}},
		UpdateAll: true,
	}).Create(link).Error
}

// FetchLinks returns the duplicate-identity map, cli id to canonical id.
func (r *Repository) FetchLinks() (map[int64]int64, error) {
	var links []DuplicateLink
	if err := r.db.Find(&links).Error; err != nil {
		return nil, err
	}
	out := make(map[int64]int64, len(links))
	for _, l := range links {
		out[l.CliID] = l.CanonicalID
	}
	return out, nil
}

func (r *Repository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&Vacancy{}).Count(&n).Error
	return n, err
}
