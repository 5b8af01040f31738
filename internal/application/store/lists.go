package store

import (
	"fmt"

	"intake/internal/application/models"
	"intake/internal/application/paths"
	"intake/pkg/platform/sentinel"
)

// AddChild appends a blank child with a fresh identifier and returns it.
func (s *Store) AddChild() (models.Child, error) {
	child := models.Child{ID: s.newID()}
	err := s.update(func(cur models.ApplicationRecord) (models.Section, error) {
		children := append(append([]models.Child{}, cur.Children...), child)
		return models.Section{Children: &children}, nil
	})
	return child, err
}

// UpdateChild sets one field of the child with the given id.
func (s *Store) UpdateChild(id, field string, value any) error {
	lens, err := paths.ChildField(field)
	if err != nil {
		return err
	}
	return s.update(func(cur models.ApplicationRecord) (models.Section, error) {
		children := append([]models.Child{}, cur.Children...)
		i := indexOf(children, func(c models.Child) bool { return c.ID == id })
		if i < 0 {
			return models.Section{}, fmt.Errorf("child %s: %w", id, sentinel.ErrNotFound)
		}
		if err := lens.Set(&children[i], value); err != nil {
			return models.Section{}, fmt.Errorf("set children.%s: %w", field, err)
		}
		return models.Section{Children: &children}, nil
	})
}

// RemoveChild drops the child with the given id. Remaining children keep
// their identifiers.
func (s *Store) RemoveChild(id string) error {
	return s.update(func(cur models.ApplicationRecord) (models.Section, error) {
		if indexOf(cur.Children, func(c models.Child) bool { return c.ID == id }) < 0 {
			return models.Section{}, fmt.Errorf("child %s: %w", id, sentinel.ErrNotFound)
		}
		children := make([]models.Child, 0, len(cur.Children))
		for _, c := range cur.Children {
			if c.ID != id {
				children = append(children, c)
			}
		}
		return models.Section{Children: &children}, nil
	})
}

// AddPreviousAddress appends a blank previous address and returns it.
func (s *Store) AddPreviousAddress() (models.PreviousAddress, error) {
	address := models.PreviousAddress{ID: s.newID()}
	err := s.update(func(cur models.ApplicationRecord) (models.Section, error) {
		addresses := append(append([]models.PreviousAddress{}, cur.PreviousAddresses...), address)
		return models.Section{PreviousAddresses: &addresses}, nil
	})
	return address, err
}

// UpdatePreviousAddress sets one field of the previous address with the given id.
func (s *Store) UpdatePreviousAddress(id, field string, value any) error {
	lens, err := paths.PreviousAddressField(field)
	if err != nil {
		return err
	}
	return s.update(func(cur models.ApplicationRecord) (models.Section, error) {
		addresses := append([]models.PreviousAddress{}, cur.PreviousAddresses...)
		i := indexOf(addresses, func(a models.PreviousAddress) bool { return a.ID == id })
		if i < 0 {
			return models.Section{}, fmt.Errorf("previous address %s: %w", id, sentinel.ErrNotFound)
		}
		if err := lens.Set(&addresses[i], value); err != nil {
			return models.Section{}, fmt.Errorf("set previousAddresses.%s: %w", field, err)
		}
		return models.Section{PreviousAddresses: &addresses}, nil
	})
}

// RemovePreviousAddress drops the previous address with the given id.
func (s *Store) RemovePreviousAddress(id string) error {
	return s.update(func(cur models.ApplicationRecord) (models.Section, error) {
		if indexOf(cur.PreviousAddresses, func(a models.PreviousAddress) bool { return a.ID == id }) < 0 {
			return models.Section{}, fmt.Errorf("previous address %s: %w", id, sentinel.ErrNotFound)
		}
		addresses := make([]models.PreviousAddress, 0, len(cur.PreviousAddresses))
		for _, a := range cur.PreviousAddresses {
			if a.ID != id {
				addresses = append(addresses, a)
			}
		}
		return models.Section{PreviousAddresses: &addresses}, nil
	})
}

func indexOf[E any](items []E, match func(E) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}
