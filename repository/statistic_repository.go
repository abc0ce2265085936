package repository

import (
	"errors"
	"time"

	"coffeepos/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatisticRepository struct {
	DB *gorm.DB
}

func NewStatisticRepository(db *gorm.DB) *StatisticRepository {
	return &StatisticRepository{DB: db}
}

// Upsert applies one completed order to the day's row in a single
// statement. Increments happen in the database, so two concurrent
// checkouts on the same date cannot lose an update.
func (r *StatisticRepository) Upsert(tx *gorm.DB, date string, amount float64, smilesSeed int) error {
	row := entity.DailyStatistic{
		StatDate:       date,
		TotalRevenue:   amount,
		TotalOrders:    1,
		TotalCustomers: 1,
		TotalSmiles:    smilesSeed,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "stat_date"}},
		DoUpdates: clause.Assignments(map[string]any{
			"total_revenue":   gorm.Expr("total_revenue + ?", amount),
			"total_orders":    gorm.Expr("total_orders + 1"),
			"total_customers": gorm.Expr("total_customers + 1"),
			"updated_at":      time.Now(),
		}),
	}).Create(&row).Error
}

// FindByDate returns nil when no row exists yet for the date.
func (r *StatisticRepository) FindByDate(date string) (*entity.DailyStatistic, error) {
	var s entity.DailyStatistic
	err := r.DB.Where("stat_date = ?", date).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StatisticRepository) FindRange(from, to string) ([]entity.DailyStatistic, error) {
	var out []entity.DailyStatistic
	err := r.DB.Where("stat_date BETWEEN ? AND ?", from, to).
		Order("stat_date ASC").
		Find(&out).Error
	return out, err
}
