package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors and bind their interfaces
	providers := []interface{}{
		NewListCommand, func(impl *ListCommand) List { return impl },
		NewReadCommand, func(impl *ReadCommand) Read { return impl },
		NewStatCommand, func(impl *StatCommand) Stat { return impl },
		NewPutCommand, func(impl *PutCommand) Put { return impl },
		NewRemoveCommand, func(impl *RemoveCommand) Remove { return impl },
		NewMakeDirCommand, func(impl *MakeDirCommand) MakeDir { return impl },
		NewMoveCommand, func(impl *MoveCommand) Move { return impl },
		NewCopyCommand, func(impl *CopyCommand) Copy { return impl },
	}
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}

	return nil
}
