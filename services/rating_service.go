package services

import (
	"fmt"

	"estay-backend/models"
	"estay-backend/repositories"
)

// RatingAggregate is the derived view stored on the hotel: a plain average
// over the live rating set. Zero ratings means average 0 and count 0.
type RatingAggregate struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type RatingService struct {
	ratings repositories.RatingRepository
	hotels  repositories.HotelRepository
}

func NewRatingService(ratings repositories.RatingRepository, hotels repositories.HotelRepository) *RatingService {
	return &RatingService{ratings: ratings, hotels: hotels}
}

// Upsert records the user's score for the hotel. A second rating from the
// same user replaces the first instead of duplicating, then the hotel's
// aggregate is recomputed from the full set.
func (s *RatingService) Upsert(userID, hotelID uint, score float64, comment string) (*models.Rating, RatingAggregate, error) {
	if score < 0 || score > 5 {
		return nil, RatingAggregate{}, ErrInvalidScore
	}

	hotel, err := s.hotels.GetByID(hotelID)
	if err != nil {
		return nil, RatingAggregate{}, fmt.Errorf("failed to load hotel %d: %w", hotelID, err)
	}
	if hotel == nil || !hotel.Status.PublicVisible() {
		return nil, RatingAggregate{}, ErrNotFound
	}

	rating, err := s.ratings.GetByUserAndHotel(userID, hotelID)
	if err != nil {
		return nil, RatingAggregate{}, fmt.Errorf("failed to look up rating: %w", err)
	}

	if rating != nil {
		rating.Score = score
		rating.Comment = comment
		if err := s.ratings.Save(rating); err != nil {
			return nil, RatingAggregate{}, fmt.Errorf("failed to update rating %d: %w", rating.ID, err)
		}
	} else {
		rating = &models.Rating{UserID: userID, HotelID: hotelID, Score: score, Comment: comment}
		if err := s.ratings.Create(rating); err != nil {
			return nil, RatingAggregate{}, fmt.Errorf("failed to create rating: %w", err)
		}
	}

	agg, err := s.recompute(hotelID)
	if err != nil {
		return nil, RatingAggregate{}, err
	}
	return rating, agg, nil
}

// Delete removes the user's own rating and recomputes the hotel aggregate.
func (s *RatingService) Delete(ratingID, userID uint) (RatingAggregate, error) {
	rating, err := s.ratings.GetByID(ratingID)
	if err != nil {
		return RatingAggregate{}, fmt.Errorf("failed to load rating %d: %w", ratingID, err)
	}
	if rating == nil {
		return RatingAggregate{}, ErrNotFound
	}
	if rating.UserID != userID {
		return RatingAggregate{}, ErrNotOwner
	}
	if err := s.ratings.Delete(ratingID); err != nil {
		return RatingAggregate{}, fmt.Errorf("failed to delete rating %d: %w", ratingID, err)
	}
	return s.recompute(rating.HotelID)
}

func (s *RatingService) ListByHotel(hotelID uint, page, limit int) ([]models.Rating, int64, error) {
	hotel, err := s.hotels.GetByID(hotelID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load hotel %d: %w", hotelID, err)
	}
	if hotel == nil {
		return nil, 0, ErrNotFound
	}
	page, limit = normalizePage(page, limit)
	return s.ratings.ListByHotel(hotelID, (page-1)*limit, limit)
}

// GetUserRating returns the caller's own rating for the hotel, if any.
func (s *RatingService) GetUserRating(userID, hotelID uint) (*models.Rating, error) {
	rating, err := s.ratings.GetByUserAndHotel(userID, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up rating: %w", err)
	}
	if rating == nil {
		return nil, ErrNotFound
	}
	return rating, nil
}

// recompute derives the aggregate from the full rating set and writes it to
// the hotel row. Full recomputation on every mutation keeps the cached value
// drift-free.
func (s *RatingService) recompute(hotelID uint) (RatingAggregate, error) {
	average, count, err := s.ratings.AggregateForHotel(hotelID)
	if err != nil {
		return RatingAggregate{}, fmt.Errorf("failed to aggregate ratings for hotel %d: %w", hotelID, err)
	}
	if err := s.hotels.UpdateRatingStats(hotelID, average, count); err != nil {
		return RatingAggregate{}, fmt.Errorf("failed to store rating stats for hotel %d: %w", hotelID, err)
	}
	return RatingAggregate{Average: average, Count: count}, nil
}
