package templates

import (
	"strings"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
)

const (
	notAvailableKey = "common.not_available"
	dateLayout      = "02/01/2006"
	dateTimeLayout  = "02/01/2006 15:04"
)

// OrNA returns value, or the localized "N/A" when it is blank.
func OrNA(loc Localizer, value string) string {
	if strings.TrimSpace(value) == "" {
		return T(loc, notAvailableKey)
	}
	return value
}

// FormatDate renders a backend timestamp as a day. Unparseable values are
// shown as sent.
func FormatDate(loc Localizer, value string) string {
	return formatTime(loc, value, dateLayout)
}

// FormatDateTime renders a backend timestamp with minutes.
func FormatDateTime(loc Localizer, value string) string {
	return formatTime(loc, value, dateTimeLayout)
}

func formatTime(loc Localizer, value string, layout string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return T(loc, notAvailableKey)
	}
	parsed, ok := docreview.ParseTime(value)
	if !ok {
		return value
	}
	return parsed.Format(layout)
}

// FormatMoney renders an amount in VND with locale digit grouping.
func FormatMoney(loc Localizer, amount float64) string {
	return T(loc, "format.money", amount)
}

// statusKey maps a document status onto its catalog key.
func statusKey(status docreview.Status) string {
	switch status {
	case docreview.StatusPendingReview:
		return "status.pending_review"
	case docreview.StatusActive:
		return "status.active"
	case docreview.StatusRejected:
		return "status.rejected"
	case docreview.StatusInactive:
		return "status.inactive"
	case docreview.StatusNone:
		return "status.none"
	default:
		return notAvailableKey
	}
}

// StatusLabel returns the localized label for a document status.
func StatusLabel(loc Localizer, status docreview.Status) string {
	return T(loc, statusKey(status))
}

func statusClass(status docreview.Status) string {
	switch status {
	case docreview.StatusPendingReview:
		return "badge badge-pending"
	case docreview.StatusActive:
		return "badge badge-active"
	case docreview.StatusRejected:
		return "badge badge-rejected"
	case docreview.StatusInactive:
		return "badge badge-inactive"
	default:
		return "badge badge-none"
	}
}

func (h *htmlWriter) statusBadge(loc Localizer, status docreview.Status) {
	h.element("span", StatusLabel(loc, status), "class", statusClass(status))
}

// accountBadge renders a free-form account status such as ACTIVE or BANNED.
func (h *htmlWriter) accountBadge(loc Localizer, status string) {
	status = strings.TrimSpace(status)
	class := "badge badge-none"
	switch strings.ToUpper(status) {
	case "ACTIVE", "COMPLETED", "SUCCESS", "OPEN":
		class = "badge badge-active"
	case "PENDING", "PENDING_REVIEW", "INACTIVE":
		class = "badge badge-pending"
	case "BANNED", "REJECTED", "FAILED", "CANCELLED", "DELETED":
		class = "badge badge-rejected"
	}
	h.element("span", OrNA(loc, status), "class", class)
}
