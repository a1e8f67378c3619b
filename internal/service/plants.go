package service

import (
	"context"
	"errors"
	"strings"

	"growroom/internal/models"
	"growroom/internal/repository"
)

const defaultStage = "seedling"

var ErrInvalidPlant = errors.New("invalid plant: name is required and harvest must follow planting")

type PlantService struct {
	repo repository.PlantRepo
}

func NewPlantService(repo repository.PlantRepo) *PlantService {
	return &PlantService{repo: repo}
}

func (s *PlantService) Create(ctx context.Context, p PlantParams) (models.Plant, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return models.Plant{}, ErrInvalidPlant
	}
	if p.PlantedDate != nil && p.HarvestDate != nil && p.HarvestDate.Before(*p.PlantedDate) {
		return models.Plant{}, ErrInvalidPlant
	}
	stage := strings.ToLower(strings.TrimSpace(p.Stage))
	if stage == "" {
		stage = defaultStage
	}
	return s.repo.Create(ctx, models.Plant{
		Name:        name,
		Strain:      strings.TrimSpace(p.Strain),
		Stage:       stage,
		PlantedDate: p.PlantedDate,
		HarvestDate: p.HarvestDate,
	})
}

func (s *PlantService) ListActive(ctx context.Context) ([]models.Plant, error) {
	return s.repo.ListActive(ctx)
}
