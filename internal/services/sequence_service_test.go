package services

import (
	"testing"

	"order_tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceService_NextOrderNumber(t *testing.T) {
	tests := []struct {
		name     string
		settings models.Settings
		existing []string
		expected string
	}{
		{
			name:     "empty_table_defaults",
			existing: nil,
			expected: "ORD-0001",
		},
		{
			name:     "continues_from_max",
			existing: []string{"ORD-0042", "ORD-0007", "ORD-0013"},
			expected: "ORD-0043",
		},
		{
			name:     "ignores_foreign_formats",
			existing: []string{"ORD-0003", "LEGACY-99", "ORD-12X", "ORD-"},
			expected: "ORD-0004",
		},
		{
			name: "custom_prefix_and_width",
			settings: models.Settings{
				OrderPrefix:       "SHP-",
				OrderNumberFormat: 6,
			},
			existing: []string{"SHP-000120"},
			expected: "SHP-000121",
		},
		{
			name: "start_number_honored_when_empty",
			settings: models.Settings{
				OrderStartNumber: 500,
			},
			existing: nil,
			expected: "ORD-0500",
		},
		{
			name: "existing_below_start_number",
			settings: models.Settings{
				OrderStartNumber: 500,
			},
			existing: []string{"ORD-0003"},
			expected: "ORD-0500",
		},
		{
			name:     "grows_past_padding_width",
			existing: []string{"ORD-9999"},
			expected: "ORD-10000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := &mockOrderRepo{
				RecentNumbersFunc: func(prefix string, limit int) ([]string, error) {
					assert.Equal(t, sequenceLookback, limit)
					return tt.existing, nil
				},
			}

			svc := NewSequenceService(orderRepo, &mockCustomerRepo{}, &fixedSettings{settings: tt.settings})
			number, err := svc.NextOrderNumber()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, number)
		})
	}
}

func TestSequenceService_NextAccountNumber(t *testing.T) {
	customerRepo := &mockCustomerRepo{
		RecentNumbersFunc: func(prefix string, limit int) ([]string, error) {
			assert.Equal(t, "CUST-", prefix)
			return []string{"CUST-0009", "CUST-0002"}, nil
		},
	}

	svc := NewSequenceService(&mockOrderRepo{}, customerRepo, &fixedSettings{})
	number, err := svc.NextAccountNumber()
	require.NoError(t, err)
	assert.Equal(t, "CUST-0010", number)
}

func TestSequenceService_PrefixIsQuotedInPattern(t *testing.T) {
	// A prefix containing regex metacharacters must match literally.
	orderRepo := &mockOrderRepo{
		RecentNumbersFunc: func(prefix string, limit int) ([]string, error) {
			return []string{"O.D-0005", "OXD-0100"}, nil
		},
	}

	svc := NewSequenceService(orderRepo, &mockCustomerRepo{}, &fixedSettings{
		settings: models.Settings{OrderPrefix: "O.D-"},
	})
	number, err := svc.NextOrderNumber()
	require.NoError(t, err)
	assert.Equal(t, "O.D-0006", number)
}
