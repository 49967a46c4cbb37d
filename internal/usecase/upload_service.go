package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/ihl-standings/internal/platform/id"
)

const logoURLPrefix = "/uploads/"

// UploadService hands out logo locations. No bytes are stored yet; the
// returned path only reserves a unique name.
type UploadService struct {
	ids id.Generator
}

func NewUploadService(ids id.Generator) *UploadService {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return &UploadService{ids: ids}
}

func (s *UploadService) CreateLogoURL(ctx context.Context) (string, error) {
	_, span := startUsecaseSpan(ctx, "usecase.UploadService.CreateLogoURL")
	defer span.End()

	name, err := s.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
	}

	return logoURLPrefix + name + ".png", nil
}
