package infrastructure

import (
	"context"
	"fmt"

	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/draftea/booking-system/shared/models"
)

var _ domain.UserDirectory = (*PatternUserDirectory)(nil)

// PatternUserDirectory derives an email address from the user ID.
// There is no user service yet; pattern must contain one %s.
type PatternUserDirectory struct {
	pattern string
}

func NewPatternUserDirectory(pattern string) *PatternUserDirectory {
	if pattern == "" {
		pattern = "user%s@example.com"
	}
	return &PatternUserDirectory{pattern: pattern}
}

func (d *PatternUserDirectory) EmailFor(_ context.Context, userID models.ID) string {
	return fmt.Sprintf(d.pattern, userID)
}
