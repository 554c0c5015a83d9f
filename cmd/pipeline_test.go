package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadpipe-cli/internal/export"
	"github.com/sells-group/leadpipe-cli/internal/fetcher"
	"github.com/sells-group/leadpipe-cli/internal/store"
)

// rawExport is a minimal raw CRM export carrying the headers the pipeline
// maps, plus one record per interesting path: a blacklisted recent lead, a
// pre-cutoff lead, a social-site website, and a mobile duplicate.
const rawExport = `Legal Entity Name,Lead ID,First Name,Last Name,Email,Mobile,Website,Created Date,Internal Blacklisting Passed,Onboarding Step,Reported Annual Sales
Acme Trading,L-1,Sara,Al-Harbi,Sara@Example.COM,+966 50-000-0000,https://www.facebook.com/acme,2024-07-01 09:00:00,green.png,v2_business_details_step,Large Business ($50 million+)
Blocked Co,L-2,Omar,Hassan,omar@example.com,966511111111,,2024-07-02 09:00:00,red.png,,
Grandfathered Co,L-3,Lina,Saleh,lina@example.com,966522222222,,2024-01-15 09:00:00,red.png,,
Acme Duplicate,L-4,Sara,Al-Harbi,other@example.com,966500000000,,2024-07-03 09:00:00,1,,
`

// chdir mirrors t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func runCommand(t *testing.T, args ...string) {
	t.Helper()
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
}

func readTable(t *testing.T, path string) (map[string]int, *fetcher.Table) {
	t.Helper()
	table, err := fetcher.ReadCSV(path)
	require.NoError(t, err)
	idx := make(map[string]int, len(table.Header))
	for i, name := range table.Header {
		idx[name] = i
	}
	return idx, table
}

func TestCleanThenEnrich(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	raw := filepath.Join(dir, "raw.csv")
	cleaned := filepath.Join(dir, "cleaned.csv")
	enriched := filepath.Join(dir, "enriched.csv")
	require.NoError(t, os.WriteFile(raw, []byte(rawExport), 0o644))

	runCommand(t, "clean", "--input", raw, "--output", cleaned)

	idx, table := readTable(t, cleaned)
	assert.Equal(t, export.CleanedColumns(), table.Header)
	require.Len(t, table.Rows, 3, "the recent red-flagged lead is dropped")

	ids := make([]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		ids = append(ids, row[idx["lead_id"]])
	}
	assert.Equal(t, []string{"L-1", "L-3", "L-4"}, ids)

	first := table.Rows[0]
	assert.Equal(t, "sara@example.com", first[idx["email"]])
	assert.Equal(t, "example.com", first[idx["email_domain"]])
	assert.Equal(t, "966500000000", first[idx["mobile"]])
	assert.Equal(t, "Sara Al-Harbi", first[idx["contact_name"]])
	assert.Equal(t, "5", first[idx["reported_annual_sales_tier"]])

	runCommand(t, "enrich", "--input", cleaned, "--output", enriched)

	idx, table = readTable(t, enriched)
	require.Len(t, table.Rows, 2, "the shared mobile number collapses to one record")

	first = table.Rows[0]
	assert.Equal(t, "L-1", first[idx["lead_id"]])
	assert.Equal(t, "", first[idx["website"]], "social website migrated out")
	assert.Equal(t, "https://www.facebook.com/acme", first[idx["social_media_links"]])
	assert.Equal(t, "1", first[idx["has_social_media"]])
	assert.Equal(t, "Business Details", first[idx["readable_onboarding_step"]])
	assert.Equal(t, "V2", first[idx["onboarding_version"]])
	assert.Equal(t, "Onboarding: Business Details", first[idx["journey_stage"]])
	assert.Equal(t, "1", first[idx["v2_business_details_step"]])
	assert.Equal(t, "0", first[idx["final_step"]])

	second := table.Rows[1]
	assert.Equal(t, "L-3", second[idx["lead_id"]])
	assert.Equal(t, "Registered", second[idx["journey_stage"]])
}

func TestRunRecordsBatch(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("LEADPIPE_LEDGER_PATH", filepath.Join(dir, "ledger.db"))
	t.Setenv("LEADPIPE_PATHS_CLEANED_CSV", filepath.Join(dir, "cleaned.csv"))

	raw := filepath.Join(dir, "raw.csv")
	enriched := filepath.Join(dir, "enriched.csv")
	require.NoError(t, os.WriteFile(raw, []byte(rawExport), 0o644))

	runCommand(t, "run", "--input", raw, "--output", enriched)

	_, table := readTable(t, enriched)
	assert.Len(t, table.Rows, 2)

	st, err := store.NewSQLite(filepath.Join(dir, "ledger.db"))
	require.NoError(t, err)
	defer st.Close() //nolint:errcheck

	batches, err := st.ListBatches(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, batches, 1)

	b := batches[0]
	assert.Equal(t, "complete", string(b.Status))
	assert.True(t, strings.HasSuffix(b.InputPath, "raw.csv"))
	require.NotNil(t, b.Stats)
	assert.Equal(t, 4, b.Stats.Loaded)
	assert.Equal(t, 1, b.Stats.BlacklistDropped)
	assert.Equal(t, 1, b.Stats.MobileDupes)
	assert.Equal(t, 2, b.Stats.Final)
}
