package usecase

import (
	"context"

	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/internal/domain/repository"
	"pasaratsiri/pkg/errors"
	"pasaratsiri/pkg/logger"
)

// ResourceUseCase carries the row mutations of the list views. Writes touch
// exactly one record and are never applied locally; views pick them up
// from their next snapshot.
type ResourceUseCase struct {
	store repository.DocumentStore
}

func NewResourceUseCase(store repository.DocumentStore) *ResourceUseCase {
	return &ResourceUseCase{
		store: store,
	}
}

func (uc *ResourceUseCase) resource(key string) (*Resource, error) {
	r, ok := LookupResource(key)
	if !ok {
		return nil, errors.NotFound("Resource "+key, nil)
	}
	return r, nil
}

// Delete removes one record. Deleting a record that no longer exists
// succeeds, and nested collections of the record are left in place.
func (uc *ResourceUseCase) Delete(ctx context.Context, key, id string) error {
	r, err := uc.resource(key)
	if err != nil {
		return err
	}
	if id == "" {
		return errors.BadRequest("Record id is required", nil)
	}

	if err := uc.store.Delete(ctx, r.Collection, id); err != nil {
		logger.Err(err, "deleting %s/%s", r.Collection, id)
		return errors.Internal(r.DeleteError, err)
	}

	logger.Info("deleted %s/%s", r.Collection, id)
	return nil
}

type statusField struct {
	Status string `firestore:"status"`
}

// UpdateStatus writes a new status to one certification or subsidy. Only
// the transitions offered for the stored status are accepted.
func (uc *ResourceUseCase) UpdateStatus(ctx context.Context, key, id, status string) error {
	r, err := uc.resource(key)
	if err != nil {
		return err
	}
	if !r.HasStatus {
		return errors.BadRequest(r.Title+" has no status actions", nil)
	}

	doc, err := uc.store.Get(ctx, r.Collection, id)
	if err != nil {
		return err
	}

	var current statusField
	if err := doc.DataTo(&current); err != nil && !repository.Partial(err) {
		return errors.Internal("Failed to read current status", err)
	}

	if !entity.IsOfferedTransition(current.Status, status) {
		return errors.Conflict("Status " + current.Status + " tidak dapat diubah menjadi " + status + ".")
	}

	if err := uc.store.Update(ctx, r.Collection, id, map[string]interface{}{"status": status}); err != nil {
		logger.Err(err, "updating status of %s/%s", r.Collection, id)
		return err
	}

	logger.Info("%s/%s status %s -> %s", r.Collection, id, current.Status, status)
	return nil
}
