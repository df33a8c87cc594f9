package item

import (
	"errors"
	"strings"
)

var (
	ErrBlankName        = errors.New("item name cannot be blank")
	ErrBlankDescription = errors.New("item description cannot be blank")
)

// Item is a shareable object. The owner reference is exclusive; the
// request reference is optional and only links the item to the open
// request it was listed in answer to.
type Item struct {
	id          int64
	name        string
	description string
	available   bool
	ownerID     int64
	requestID   *int64
}

func NewItem(name, description string, available bool, ownerID int64, requestID *int64) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankName
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrBlankDescription
	}
	return &Item{
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}, nil
}

func ReconstructItem(id int64, name, description string, available bool, ownerID int64, requestID *int64) *Item {
	return &Item{
		id:          id,
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}
}

func (i *Item) ID() int64           { return i.id }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Available() bool     { return i.available }
func (i *Item) OwnerID() int64      { return i.ownerID }
func (i *Item) RequestID() *int64   { return i.requestID }

func (i *Item) IsOwnedBy(userID int64) bool {
	return i.ownerID == userID
}
