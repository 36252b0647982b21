package usecase

import (
	"github.com/aalvaropc/lumen/internal/domain"
	"github.com/aalvaropc/lumen/internal/ports"
)

// DefaultReceiptLimit caps how many receipts are listed when no limit is given.
const DefaultReceiptLimit = 20

type ListReceipts struct {
	store ports.ReceiptStore
}

func NewListReceipts(store ports.ReceiptStore) *ListReceipts {
	return &ListReceipts{store: store}
}

func (uc *ListReceipts) Execute(limit int) ([]domain.Receipt, error) {
	if limit <= 0 {
		limit = DefaultReceiptLimit
	}
	return uc.store.ListReceipts(limit)
}
