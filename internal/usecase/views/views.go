// Package views holds the read models returned by the usecase layer.
// Views are denormalized: a booking carries its resolved item and
// booker, not just their ids.
package views

import (
	"time"

	"gearshare/internal/domain/booking"
)

type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ItemView struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Available   bool     `json:"available"`
	Owner       UserView `json:"owner"`
	RequestID   *int64   `json:"requestId,omitempty"`
}

type BookingView struct {
	ID     int64          `json:"id"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Status booking.Status `json:"status"`
	Item   ItemView       `json:"item"`
	Booker UserView       `json:"booker"`
}

type CommentView struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	Item       ItemView  `json:"item"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type RequestView struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Requestor   UserView  `json:"requestor"`
	Created     time.Time `json:"created"`
}

type RequestWithAnswersView struct {
	RequestView
	Items []ItemView `json:"items"`
}
