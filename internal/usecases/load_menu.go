package usecases

import (
	"context"

	"blogreader/internal/domain"
	"blogreader/pkg/log"
)

// LoadMenuUseCase fetches the navigation entries. A failure here is
// secondary: the caller keeps whatever menu it last had.
type LoadMenuUseCase struct {
	api MenuAPI
}

// NewLoadMenuUseCase creates a new LoadMenuUseCase.
func NewLoadMenuUseCase(api MenuAPI) *LoadMenuUseCase {
	return &LoadMenuUseCase{api: api}
}

// Execute returns the main menu items.
func (uc *LoadMenuUseCase) Execute(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := uc.api.MainMenu(ctx)
	if err != nil {
		log.WarnCtx(ctx, "menu load failed", "error", err)
		return nil, err
	}
	return items, nil
}
