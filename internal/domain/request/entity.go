package request

import (
	"errors"
	"strings"
	"time"
)

var ErrBlankDescription = errors.New("request description cannot be blank")

// ItemRequest is an open ask for an item to borrow. Owners answer it by
// listing items that reference the request.
type ItemRequest struct {
	id          int64
	description string
	requestorID int64
	created     time.Time
}

func NewItemRequest(description string, requestorID int64, now time.Time) (*ItemRequest, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrBlankDescription
	}
	return &ItemRequest{
		description: description,
		requestorID: requestorID,
		created:     now,
	}, nil
}

func ReconstructItemRequest(id int64, description string, requestorID int64, created time.Time) *ItemRequest {
	return &ItemRequest{
		id:          id,
		description: description,
		requestorID: requestorID,
		created:     created,
	}
}

func (r *ItemRequest) ID() int64           { return r.id }
func (r *ItemRequest) Description() string { return r.description }
func (r *ItemRequest) RequestorID() int64  { return r.requestorID }
func (r *ItemRequest) Created() time.Time  { return r.created }
