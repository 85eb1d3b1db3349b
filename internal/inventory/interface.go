package inventory

import "context"

type UseCase interface {
	// Grant adds quantity of a catalog item to a user's inventory.
	Grant(ctx context.Context, input GrantInput) (GrantOutput, error)
	// List returns a user's inventory joined with catalog names.
	List(ctx context.Context, userID string) (ListOutput, error)
}
