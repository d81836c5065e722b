package printer

import (
	"context"

	"github.com/stretchr/testify/mock"

	"printfeed/models"
)

// MockPrinterClient is a mock implementation of the clients.PrinterClient interface
type MockPrinterClient struct {
	mock.Mock
}

func (m *MockPrinterClient) PrintReceipt(ctx context.Context, job models.ReceiptJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}
