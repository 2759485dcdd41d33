package ports

import "github.com/Nagendar23/CampusConnect/internal/domain"

type LedgerMetrics interface {
	ObserveCheckIn(eventID string, outcome domain.CheckInOutcome)
	SetStats(eventID string, stats domain.EventStats)
}
