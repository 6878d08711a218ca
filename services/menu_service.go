package services

import (
	"github.com/gowthamlakshman94/Canteen-Automation-System/entity"
	"github.com/gowthamlakshman94/Canteen-Automation-System/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) Create(item *entity.MenuItem) error {
	return s.Repo.Create(item)
}

func (s *MenuService) ListAvailable(category string) ([]entity.MenuItem, error) {
	return s.Repo.FindAvailable(category)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}

func (s *MenuService) SetAvailability(id uint, available bool) error {
	affected, err := s.Repo.UpdateAvailability(id, available)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
