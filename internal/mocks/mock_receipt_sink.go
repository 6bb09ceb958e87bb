package mocks

import (
	"github.com/metinatakli/cinema-management-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockReceiptSink struct {
	mock.Mock
	domain.ReceiptSink
}

func (m *MockReceiptSink) Issue(r domain.Receipt) error {
	args := m.Called(r)
	return args.Error(0)
}
