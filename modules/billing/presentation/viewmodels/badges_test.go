package viewmodels_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blumenos/gridadmin/modules/billing/presentation/viewmodels"
)

func TestBadges(t *testing.T) {
	t.Run("PaymentStatus", func(t *testing.T) {
		assert.Equal(t, "badge-success", viewmodels.PaymentStatusBadge("confirmed"))
		assert.Equal(t, "badge-danger", viewmodels.PaymentStatusBadge("failed"))
		assert.Equal(t, "badge-neutral", viewmodels.PaymentStatusBadge("unheard-of"))
	})

	t.Run("BillStatus", func(t *testing.T) {
		assert.Equal(t, "badge-danger", viewmodels.BillStatusBadge("unpaid"))
		assert.Equal(t, "badge-muted", viewmodels.BillStatusBadge("disputed"))
		assert.Equal(t, "badge-neutral", viewmodels.BillStatusBadge(""))
	})

	t.Run("Severity", func(t *testing.T) {
		assert.Equal(t, "badge-critical", viewmodels.SeverityBadge("critical"))
		assert.Equal(t, "badge-neutral", viewmodels.SeverityBadge("apocalyptic"))
	})

	t.Run("ChangeRequest", func(t *testing.T) {
		assert.Equal(t, "badge-warning", viewmodels.ChangeRequestBadge("pending"))
		assert.Equal(t, "badge-neutral", viewmodels.ChangeRequestBadge("withdrawn"))
	})

	t.Run("DebtStage", func(t *testing.T) {
		assert.Equal(t, "badge-critical", viewmodels.DebtStageBadge("write_off"))
		assert.Equal(t, "badge-neutral", viewmodels.DebtStageBadge("amnesty"))
	})
}
