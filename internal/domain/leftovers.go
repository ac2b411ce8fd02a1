package domain

import (
	"context"
	"log/slog"

	m "amalgam.dev/pkg/amalgam/internal/model"
)

// MergeLeftovers merges every discovered header that no source reached, in
// discovery order, and returns them.
func (s *MergeSession) MergeLeftovers(ctx context.Context) ([]m.File, error) {
	var leftovers []m.File

	for _, header := range s.classification.Headers {
		if s.Visited(header.Key) {
			continue
		}

		// A leftover may pull in other leftovers; those are reported as
		// leftovers too since no source reached them.
		before := len(s.emitted)

		if err := s.MergeHeader(ctx, header); err != nil {
			return nil, err
		}

		leftovers = append(leftovers, s.emitted[before:]...)
	}

	if len(leftovers) > 0 {
		slog.Info("merged leftover headers", "count", len(leftovers))
	}

	return leftovers, nil
}
