package service

import (
	"context"
	"fmt"
	"time"

	"github.com/abdul977/lodgebooker/internal/domain"
	"github.com/abdul977/lodgebooker/internal/service/ports"
)

type letterRenderer interface {
	Render(p *domain.Profile, now time.Time) ([]byte, string, error)
}

// LetterService generates the accommodation confirmation letter for a
// profile. Rendering either succeeds completely or returns an error; a
// partial document is never handed out.
type LetterService struct {
	profileRepo ports.ProfileRepo
	renderer    letterRenderer
}

func NewLetterService(profileRepo ports.ProfileRepo, renderer letterRenderer) *LetterService {
	return &LetterService{
		profileRepo: profileRepo,
		renderer:    renderer,
	}
}

func (s *LetterService) Generate(ctx context.Context, profileID string) ([]byte, string, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, "", fmt.Errorf("get profile: %w", err)
	}

	data, filename, err := s.renderer.Render(profile, time.Now())
	if err != nil {
		return nil, "", fmt.Errorf("render letter: %w", err)
	}

	return data, filename, nil
}
