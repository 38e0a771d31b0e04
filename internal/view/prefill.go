package view

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Prefill loads an entity and the reference data its form needs at the same
// time. populate runs once, and only after both loads succeeded; the first
// failure cancels the other load.
func Prefill[E, R any](
	ctx context.Context,
	entity func(context.Context) (E, error),
	reference func(context.Context) (R, error),
	populate func(E, R),
) error {
	var (
		loadedEntity    E
		loadedReference R
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		value, err := entity(groupCtx)
		if err != nil {
			return err
		}

		loadedEntity = value

		return nil
	})

	group.Go(func() error {
		value, err := reference(groupCtx)
		if err != nil {
			return err
		}

		loadedReference = value

		return nil
	})

	if err := group.Wait(); err != nil {
		return err //nolint:wrapcheck
	}

	populate(loadedEntity, loadedReference)

	return nil
}
