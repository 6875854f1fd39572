package repository

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"vehicle-policy-service/internal/models"
)

var ErrQuotationNotFound = errors.New("quotation not found or already settled")

// QuotationRepository holds bills that were quoted but not yet confirmed.
// A quotation is removed the moment it is taken for confirmation, so a
// retried confirmation cannot settle the same bill twice.
type QuotationRepository struct {
	mu         sync.Mutex
	quotations map[uuid.UUID]models.PendingQuotation
}

func NewQuotationRepository() *QuotationRepository {
	return &QuotationRepository{
		quotations: make(map[uuid.UUID]models.PendingQuotation),
	}
}

func (r *QuotationRepository) Save(quotation models.PendingQuotation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quotations[quotation.ID] = quotation
}

// Take removes and returns the pending quotation. Each quotation can be
// taken exactly once.
func (r *QuotationRepository) Take(id uuid.UUID) (models.PendingQuotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	quotation, ok := r.quotations[id]
	if !ok {
		return models.PendingQuotation{}, ErrQuotationNotFound
	}
	delete(r.quotations, id)
	return quotation, nil
}
