package comment

import "time"

// Comment is feedback left on an item after a rental. Immutable once
// created; nothing deletes comments.
type Comment struct {
	id       int64
	itemID   int64
	authorID int64
	text     Text
	created  time.Time
}

func NewComment(itemID, authorID int64, text Text, now time.Time) *Comment {
	return &Comment{
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  now,
	}
}

func ReconstructComment(id, itemID, authorID int64, text Text, created time.Time) *Comment {
	return &Comment{
		id:       id,
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  created,
	}
}

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) Text() Text         { return c.text }
func (c *Comment) Created() time.Time { return c.created }
