package booking

// Booking is a request to use an item over a fixed time window. Item,
// booker and period are immutable after creation; only the status
// changes, and only through Decide.
type Booking struct {
	id       int64
	itemID   int64
	bookerID int64
	period   Period
	status   Status
}

func NewBooking(itemID, bookerID int64, period Period) *Booking {
	return &Booking{
		itemID:   itemID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}
}

func ReconstructBooking(id, itemID, bookerID int64, period Period, status Status) *Booking {
	return &Booking{
		id:       id,
		itemID:   itemID,
		bookerID: bookerID,
		period:   period,
		status:   status,
	}
}

// Decide records the owner's verdict. A decided booking may be decided
// again; the new verdict overwrites the old status.
func (b *Booking) Decide(approved bool) {
	if approved {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
}

func (b *Booking) ID() int64       { return b.id }
func (b *Booking) ItemID() int64   { return b.itemID }
func (b *Booking) BookerID() int64 { return b.bookerID }
func (b *Booking) Period() Period  { return b.period }
func (b *Booking) Status() Status  { return b.status }
