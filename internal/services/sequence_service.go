package services

import (
	"fmt"
	"regexp"
	"strconv"

	"order_tracker/internal/repository"
)

// sequenceLookback bounds how many recent identifiers are scanned when
// deriving the next number. If more than this many records share a
// prefix, an older higher number can be missed and the generated number
// may collide; the unique index catches that and the caller sees a
// duplicate error. Kept deliberately instead of an atomic counter so
// numbering stays derived from the data.
const sequenceLookback = 100

type SequenceService interface {
	NextOrderNumber() (string, error)
	NextAccountNumber() (string, error)
}

type sequenceService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	settings     SettingsService
}

func NewSequenceService(orderRepo repository.OrderRepository, customerRepo repository.CustomerRepository, settings SettingsService) SequenceService {
	return &sequenceService{orderRepo: orderRepo, customerRepo: customerRepo, settings: settings}
}

func (s *sequenceService) NextOrderNumber() (string, error) {
	cfg, err := s.settings.GetWithDefaults()
	if err != nil {
		return "", fmt.Errorf("failed to load settings: %w", err)
	}

	recent, err := s.orderRepo.RecentNumbersWithPrefix(cfg.OrderPrefix, sequenceLookback)
	if err != nil {
		return "", fmt.Errorf("failed to scan order numbers: %w", err)
	}

	return nextInSequence(cfg.OrderPrefix, cfg.OrderStartNumber, cfg.OrderNumberFormat, recent), nil
}

func (s *sequenceService) NextAccountNumber() (string, error) {
	cfg, err := s.settings.GetWithDefaults()
	if err != nil {
		return "", fmt.Errorf("failed to load settings: %w", err)
	}

	recent, err := s.customerRepo.RecentNumbersWithPrefix(cfg.CustomerPrefix, sequenceLookback)
	if err != nil {
		return "", fmt.Errorf("failed to scan account numbers: %w", err)
	}

	return nextInSequence(cfg.CustomerPrefix, cfg.CustomerStartNumber, cfg.CustomerNumberFormat, recent), nil
}

// nextInSequence extracts the numeric suffix of every identifier that
// matches prefix+digits exactly, takes the maximum (or start-1 when
// nothing matches), and formats the successor zero-padded to width.
func nextInSequence(prefix string, start, width int, existing []string) string {
	pattern := regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + `(\d+)$`)

	maxNumber := start - 1
	for _, number := range existing {
		match := pattern.FindStringSubmatch(number)
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if n > maxNumber {
			maxNumber = n
		}
	}

	return fmt.Sprintf("%s%0*d", prefix, width, maxNumber+1)
}
