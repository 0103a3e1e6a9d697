package admin

type Status string

const (
	StatusConfirmed Status = "Confirmed"
	StatusPending   Status = "Pending"
)

// DisplayedStatus is shown for every booking regardless of the status the API sends.
// The admin list has always shown "Confirmed"; switching to the booking's own status
// needs a product decision first.
const DisplayedStatus = StatusConfirmed

type BadgeStyle string

const (
	BadgeSuccess BadgeStyle = "bg-green-100 text-green-800"
	BadgeWarning BadgeStyle = "bg-yellow-100 text-yellow-800"
	BadgeNeutral BadgeStyle = "bg-gray-100 text-gray-800"
)

func StatusBadge(status Status) BadgeStyle {
	switch status {
	case StatusConfirmed:
		return BadgeSuccess
	case StatusPending:
		return BadgeWarning
	default:
		return BadgeNeutral
	}
}
