package service

import (
	"context"

	"github.com/google/uuid"

	app "intake/internal/application/models"
)

func (s *Service) AddChild(ctx context.Context, id uuid.UUID) (*app.Child, error) {
	sess, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	child, err := sess.Wizard.Store.AddChild()
	if err != nil {
		return nil, translateWriteError(err)
	}
	return &child, nil
}

func (s *Service) UpdateChild(ctx context.Context, id uuid.UUID, childID, field string, value any) error {
	sess, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := sess.Wizard.Store.UpdateChild(childID, field, value); err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (s *Service) RemoveChild(ctx context.Context, id uuid.UUID, childID string) error {
	sess, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := sess.Wizard.Store.RemoveChild(childID); err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (s *Service) AddPreviousAddress(ctx context.Context, id uuid.UUID) (*app.PreviousAddress, error) {
	sess, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	address, err := sess.Wizard.Store.AddPreviousAddress()
	if err != nil {
		return nil, translateWriteError(err)
	}
	return &address, nil
}

func (s *Service) UpdatePreviousAddress(ctx context.Context, id uuid.UUID, addressID, field string, value any) error {
	sess, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := sess.Wizard.Store.UpdatePreviousAddress(addressID, field, value); err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (s *Service) RemovePreviousAddress(ctx context.Context, id uuid.UUID, addressID string) error {
	sess, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := sess.Wizard.Store.RemovePreviousAddress(addressID); err != nil {
		return translateWriteError(err)
	}
	return nil
}
