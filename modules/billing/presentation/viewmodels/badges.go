package viewmodels

// Badge classes map enum values to the pill styles the dashboard renders.
// Unknown values fall back to the neutral badge.

const badgeNeutral = "badge-neutral"

var paymentStatusBadges = map[string]string{
	"pending":   "badge-warning",
	"confirmed": "badge-success",
	"failed":    "badge-danger",
	"reversed":  "badge-muted",
}

var billStatusBadges = map[string]string{
	"unpaid":   "badge-danger",
	"partial":  "badge-warning",
	"paid":     "badge-success",
	"disputed": "badge-muted",
}

var severityBadges = map[string]string{
	"low":      "badge-muted",
	"medium":   "badge-warning",
	"high":     "badge-danger",
	"critical": "badge-critical",
}

var changeRequestBadges = map[string]string{
	"pending":  "badge-warning",
	"approved": "badge-success",
	"rejected": "badge-danger",
}

var debtStageBadges = map[string]string{
	"reminder":      "badge-muted",
	"dunning":       "badge-warning",
	"disconnection": "badge-danger",
	"write_off":     "badge-critical",
}

func lookupBadge(m map[string]string, key string) string {
	if b, ok := m[key]; ok {
		return b
	}
	return badgeNeutral
}

func PaymentStatusBadge(status string) string  { return lookupBadge(paymentStatusBadges, status) }
func BillStatusBadge(status string) string     { return lookupBadge(billStatusBadges, status) }
func SeverityBadge(severity string) string     { return lookupBadge(severityBadges, severity) }
func ChangeRequestBadge(status string) string  { return lookupBadge(changeRequestBadges, status) }
func DebtStageBadge(stage string) string       { return lookupBadge(debtStageBadges, stage) }
