// Package stats indexes a loaded history into SQL tables and answers
// number frequency questions about it.
package stats

import (
	"fmt"

	"loto/internal/draw"
	"loto/internal/formats"
	"loto/internal/model"

	"gorm.io/gorm"
)

const batchSize = 500

type Frequency struct {
	Value int
	Count int
}

// Index stores every draw of history that is a valid draw of f.
// Partial draws, such as undated second draws, are kept when complete.
func Index(db *gorm.DB, f *formats.Format, history []draw.Result) (int, error) {
	var batch []model.Draw
	for _, r := range history {
		if !f.Valid(r) {
			continue
		}
		batch = append(batch, toModel(f, r))
	}
	if len(batch) == 0 {
		return 0, nil
	}

	result := db.CreateInBatches(batch, batchSize)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to index draws: %w", result.Error)
	}
	return len(batch), nil
}

func toModel(f *formats.Format, r draw.Result) model.Draw {
	d := model.Draw{
		Format:    f.Name,
		Canonical: r.String(),
	}
	if r.HasDate() {
		date := r.Date
		d.Date = &date
	}
	for _, n := range r.Main {
		d.Numbers = append(d.Numbers, model.DrawNumber{Kind: model.KindMain, Value: n})
	}
	for _, n := range r.Bonus {
		d.Numbers = append(d.Numbers, model.DrawNumber{Kind: model.KindBonus, Value: n})
	}
	return d
}

// Frequencies counts how often each value of the given kind was drawn,
// most frequent first.
func Frequencies(db *gorm.DB, kind string) ([]Frequency, error) {
	var out []Frequency
	err := db.Model(&model.DrawNumber{}).
		Select("value, count(*) as count").
		Where("kind = ?", kind).
		Group("value").
		Order("count desc, value asc").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count %s numbers: %w", kind, err)
	}
	return out, nil
}

// Span returns the first and last dated draw in the index.
func Span(db *gorm.DB) (first, last *model.Draw, err error) {
	var lo, hi model.Draw
	if err := db.Where("date IS NOT NULL").Order("date asc").Limit(1).Find(&lo).Error; err != nil {
		return nil, nil, err
	}
	if lo.ID == 0 {
		return nil, nil, nil
	}
	if err := db.Where("date IS NOT NULL").Order("date desc").Limit(1).Find(&hi).Error; err != nil {
		return nil, nil, err
	}
	return &lo, &hi, nil
}

func Total(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.Draw{}).Count(&n).Error
	return n, err
}
