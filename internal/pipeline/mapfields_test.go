package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadpipe-cli/internal/config"
)

func TestMapHeader(t *testing.T) {
	schema, err := config.LoadSchema()
	require.NoError(t, err)

	t.Run("raw headers rename to canonical", func(t *testing.T) {
		header := []string{"Legal Entity Name", "Lead ID", "Email", "Mobile", "Website"}
		got := MapHeader(header, schema.ColumnMapping)
		assert.Equal(t, []string{"company_name", "lead_id", "email", "mobile", "website"}, got)
	})

	t.Run("quoted kyb header maps", func(t *testing.T) {
		got := MapHeader([]string{`Timestamp "KYB in Progress"`}, schema.ColumnMapping)
		assert.Equal(t, []string{"kyb_in_progress_date"}, got)
	})

	t.Run("unknown headers pass through", func(t *testing.T) {
		got := MapHeader([]string{"Totally Unknown"}, schema.ColumnMapping)
		assert.Equal(t, []string{"Totally Unknown"}, got)
	})

	t.Run("nil mapping is identity", func(t *testing.T) {
		header := []string{"company_name", "email"}
		assert.Equal(t, header, MapHeader(header, nil))
	})
}

func TestMissingColumns(t *testing.T) {
	header := []string{"company_name", "email", "mobile"}

	assert.Empty(t, MissingColumns(header, []string{"email", "mobile"}))
	assert.Equal(t, []string{"website", "lead_id"},
		MissingColumns(header, []string{"website", "email", "lead_id"}))
}

func TestBuildLeads(t *testing.T) {
	header := []string{"lead_id", "company_name", "email", "created_date", "blacklist_raw", "reported_annual_sales_tier"}

	t.Run("fields land on the record", func(t *testing.T) {
		rows := [][]string{
			{"L-1", "Acme Trading", "sara@example.com", "2024-06-15 10:30:00", "green.png", "Large Business ($50 million+)"},
			{"L-2", "Beta LLC", "omar@example.com", "", "", ""},
		}
		leads := BuildLeads(header, rows)
		require.Len(t, leads, 2)

		l := leads[0]
		assert.Equal(t, "L-1", l.LeadID)
		assert.Equal(t, "Acme Trading", l.CompanyName)
		assert.Equal(t, "sara@example.com", l.Email)
		require.NotNil(t, l.CreatedDate)
		assert.Equal(t, "2024-06-15 10:30:00", FormatDate(l.CreatedDate))
		assert.Equal(t, "green.png", l.BlacklistRaw)
		assert.Equal(t, "Large Business ($50 million+)", l.SalesTierRaw)

		assert.Equal(t, "L-2", leads[1].LeadID)
		assert.Nil(t, leads[1].CreatedDate)
	})

	t.Run("numeric tier survives a second-stage reload", func(t *testing.T) {
		leads := BuildLeads([]string{"reported_annual_sales_tier"}, [][]string{{"5"}})
		require.Len(t, leads, 1)
		assert.Equal(t, "5", leads[0].SalesTierRaw)
		assert.Equal(t, 5, leads[0].SalesTier)
	})

	t.Run("short rows leave trailing fields empty", func(t *testing.T) {
		leads := BuildLeads(header, [][]string{{"L-2", "Acme"}})
		require.Len(t, leads, 1)
		assert.Equal(t, "L-2", leads[0].LeadID)
		assert.Equal(t, "Acme", leads[0].CompanyName)
		assert.Equal(t, "", leads[0].Email)
		assert.Nil(t, leads[0].CreatedDate)
	})

	t.Run("garbage dates become nil", func(t *testing.T) {
		leads := BuildLeads([]string{"created_date"}, [][]string{{"not a date"}})
		require.Len(t, leads, 1)
		assert.Nil(t, leads[0].CreatedDate)
	})

	t.Run("unknown columns are ignored", func(t *testing.T) {
		leads := BuildLeads([]string{"mystery_column", "lead_id"}, [][]string{{"x", "L-3"}})
		require.Len(t, leads, 1)
		assert.Equal(t, "L-3", leads[0].LeadID)
	})
}
