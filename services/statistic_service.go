package services

import (
	"time"

	"coffeepos/entity"
	"coffeepos/pkg/apperr"
	"coffeepos/repository"

	"gorm.io/gorm"
)

const statDateLayout = "2006-01-02"

type StatisticService struct {
	Repo *repository.StatisticRepository

	// SmilesSeed is written into a brand-new day's row. The old system
	// rolled a random value here; it is plain config now.
	SmilesSeed int
}

func NewStatisticService(repo *repository.StatisticRepository, smilesSeed int) *StatisticService {
	return &StatisticService{Repo: repo, SmilesSeed: smilesSeed}
}

func Today() string {
	return time.Now().Format(statDateLayout)
}

// RecordOrder folds one completed order into the date's aggregate.
// The write is a single additive upsert, safe against concurrent
// checkouts on the same day. tx may be a transaction handle so the
// caller can make the order and the aggregate commit together.
func (s *StatisticService) RecordOrder(tx *gorm.DB, date string, amount float64) error {
	if err := s.Repo.Upsert(tx, date, amount, s.SmilesSeed); err != nil {
		return apperr.Wrap(apperr.Persistence, "update daily statistics failed", err)
	}
	return nil
}

// ForDate returns the day's row, or a zeroed record when no order has
// landed yet.
func (s *StatisticService) ForDate(date string) (*entity.DailyStatistic, error) {
	if date == "" {
		date = Today()
	}
	row, err := s.Repo.FindByDate(date)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "load daily statistics failed", err)
	}
	if row == nil {
		return &entity.DailyStatistic{StatDate: date}, nil
	}
	return row, nil
}

func (s *StatisticService) Range(from, to string) ([]entity.DailyStatistic, error) {
	if from == "" || to == "" {
		return nil, apperr.New(apperr.Validation, "from and to dates are required")
	}
	rows, err := s.Repo.FindRange(from, to)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "load daily statistics failed", err)
	}
	return rows, nil
}
