package services

import (
	"errors"
	"fmt"

	"wedding_hall_backend/internal/models"
	"wedding_hall_backend/internal/repositories"
	"wedding_hall_backend/pkg/utils"
)

// --- Custom Service Errors for Viewings ---
var (
	ErrViewingValidation = errors.New("viewing data validation error")
)

// --- Viewing DTOs ---
type CreateViewingRequest struct {
	ClientName string `json:"clientName" binding:"required"`
	Contact    string `json:"contact"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Time       string `json:"time"`                    // free-form, e.g. "14:00"
}

// --- ViewingService Interface ---
type ViewingService interface {
	GetViewings() []models.ViewingRequest
	// CreateViewing registers an intake appointment in PENDING state.
	CreateViewing(req CreateViewingRequest) (*models.ViewingRequest, error)
	// UpdateViewingStatus mirrors the booking workflow: APPROVED/REJECTED only,
	// PENDING records only, unknown identity is a silent no-op.
	UpdateViewingStatus(id string, status string) (*models.ViewingRequest, error)
}

type viewingService struct {
	viewingRepo repositories.ViewingRepository
}

// NewViewingService creates a new instance of ViewingService.
func NewViewingService(vr repositories.ViewingRepository) ViewingService {
	return &viewingService{viewingRepo: vr}
}

func (s *viewingService) GetViewings() []models.ViewingRequest {
	return s.viewingRepo.GetViewings()
}

func (s *viewingService) CreateViewing(req CreateViewingRequest) (*models.ViewingRequest, error) {
	if utils.IsEmpty(req.ClientName) {
		return nil, fmt.Errorf("%w: client name cannot be empty", ErrViewingValidation)
	}
	if utils.IsEmpty(req.Date) {
		return nil, fmt.Errorf("%w: date cannot be empty", ErrViewingValidation)
	}

	viewing := s.viewingRepo.SaveViewing(models.ViewingRequest{
		ID:         utils.NewEntityID(utils.ViewingIDPrefix),
		ClientName: req.ClientName,
		Contact:    req.Contact,
		Date:       req.Date,
		Time:       req.Time,
		Status:     models.BookingStatusPending,
	})
	return &viewing, nil
}

func (s *viewingService) UpdateViewingStatus(id string, status string) (*models.ViewingRequest, error) {
	target := models.BookingStatus(status)
	if target != models.BookingStatusApproved && target != models.BookingStatusRejected {
		return nil, fmt.Errorf("%w: '%s' is not a decidable status", ErrStatusDecision, status)
	}

	current, err := s.viewingRepo.GetViewingByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find viewing to update status: %w", err)
	}
	if current.Status != models.BookingStatusPending {
		return nil, fmt.Errorf("%w: viewing %s already left PENDING", ErrStatusDecision, id)
	}

	updated, err := s.viewingRepo.UpdateStatus(id, target)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update viewing status: %w", err)
	}
	return updated, nil
}
