package ports

import "github.com/aalvaropc/lumen/internal/domain"

// ReceiptStore persists receipts of successful submissions.
type ReceiptStore interface {
	SaveReceipt(r domain.Receipt) (id string, err error)
	ListReceipts(limit int) ([]domain.Receipt, error)
}
