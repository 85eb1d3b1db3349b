package catalog

import "context"

// UseCase manages catalog Items and announces every change.
// When the write succeeds but the announcement fails, the output carries the written item
// and the error wraps ErrPublishFailed.
type UseCase interface {
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	List(ctx context.Context) (ListItemsOutput, error)
	Detail(ctx context.Context, id string) (DetailItemOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
	Delete(ctx context.Context, id string) error
}
