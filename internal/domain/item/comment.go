package item

import (
	"time"

	"github.com/google/uuid"
)

// Comment is feedback a past renter leaves on an item. Eligibility is decided
// by the booking history before one is built.
type Comment struct {
	id        uuid.UUID
	itemID    uuid.UUID
	authorID  uuid.UUID
	text      CommentText
	createdAt time.Time
}

func NewComment(itemID, authorID uuid.UUID, text CommentText, now time.Time) *Comment {
	return &Comment{
		id:        uuid.New(),
		itemID:    itemID,
		authorID:  authorID,
		text:      text,
		createdAt: now,
	}
}

func (c *Comment) ID() uuid.UUID        { return c.id }
func (c *Comment) ItemID() uuid.UUID    { return c.itemID }
func (c *Comment) AuthorID() uuid.UUID  { return c.authorID }
func (c *Comment) Text() CommentText    { return c.text }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
