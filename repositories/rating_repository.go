package repositories

import (
	"errors"

	"estay-backend/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(rating *models.Rating) error
	Save(rating *models.Rating) error
	Delete(id uint) error
	GetByID(id uint) (*models.Rating, error)
	GetByUserAndHotel(userID, hotelID uint) (*models.Rating, error)
	ListByHotel(hotelID uint, offset, limit int) ([]models.Rating, int64, error)
	AggregateForHotel(hotelID uint) (average float64, count int, err error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

func (r *ratingRepository) Save(rating *models.Rating) error {
	return r.db.Save(rating).Error
}

func (r *ratingRepository) Delete(id uint) error {
	return r.db.Delete(&models.Rating{}, id).Error
}

func (r *ratingRepository) GetByID(id uint) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.First(&rating, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) GetByUserAndHotel(userID, hotelID uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("user_id = ? AND hotel_id = ?", userID, hotelID).First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) ListByHotel(hotelID uint, offset, limit int) ([]models.Rating, int64, error) {
	q := r.db.Model(&models.Rating{}).Where("hotel_id = ?", hotelID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ratings []models.Rating
	if err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&ratings).Error; err != nil {
		return nil, 0, err
	}
	return ratings, total, nil
}

// AggregateForHotel recomputes average and count over the full rating set.
// An empty set yields (0, 0), not an error.
func (r *ratingRepository) AggregateForHotel(hotelID uint) (float64, int, error) {
	var result struct {
		Average float64
		Count   int
	}
	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) AS average, COUNT(*) AS count").
		Where("hotel_id = ?", hotelID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Average, result.Count, nil
}
