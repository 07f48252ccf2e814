package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	providers := []interface{}{
		NewConfigResolver,
		NewListController,
		NewCatController,
		NewStatController,
		NewPutController,
		NewRemoveController,
		NewMakeDirController,
		NewMoveController,
		NewCopyController,
		NewControllers,
	}
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	listController *ListController,
	catController *CatController,
	statController *StatController,
	putController *PutController,
	removeController *RemoveController,
	makeDirController *MakeDirController,
	moveController *MoveController,
	copyController *CopyController,
) *[]entities.Controller {
	return &[]entities.Controller{
		listController,
		catController,
		statController,
		putController,
		removeController,
		makeDirController,
		moveController,
		copyController,
	}
}
