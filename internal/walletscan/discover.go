package walletscan

import (
	"context"

	"github.com/gabapcia/walletlink/internal/pkg/logger"
)

// openSession runs the handshake under the configured retry policy.
// A failed handshake yields an empty session: requests are still attempted
// without it and the explorer decides whether to serve them.
func (s *service) openSession(ctx context.Context, address string) Session {
	var session Session

	err := s.handshakeRetry.Execute(ctx, func() error {
		var err error
		session, err = s.source.OpenSession(ctx, address)
		return err
	})
	if err != nil {
		logger.Warn(ctx, "session handshake failed, continuing without session", "error", err)
		return Session{}
	}

	return session
}

// discoverPages establishes the wallet session and learns how many listing
// pages exist for address.
//
// It never fails: when page 1 cannot be fetched or its pagination indicator
// cannot be parsed, the wallet is treated as single-page and a warning is
// logged. A reported total below 1 is also clamped to 1.
func (s *service) discoverPages(ctx context.Context, address string) (int, Session) {
	session := s.openSession(ctx, address)

	raw, err := s.source.FetchPage(ctx, address, 1, session)
	if err != nil {
		logger.Warn(ctx, "error fetching first page, assuming a single page", "error", err)
		return 1, session
	}

	total, err := s.parser.TotalPages(raw)
	if err != nil {
		logger.Warn(ctx, "pagination indicator not found, assuming a single page", "error", err)
		return 1, session
	}

	if total < 1 {
		logger.Warn(ctx, "invalid page count reported, assuming a single page", "pages.total", total)
		return 1, session
	}

	return total, session
}
