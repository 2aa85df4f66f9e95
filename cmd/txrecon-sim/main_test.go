package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-txrecon/sim"
)

func TestRunWithReport(t *testing.T) {
	report := filepath.Join(t.TempDir(), "report.json")
	c := getCommand()
	c.SetArgs([]string{
		"--preset=fast",
		"--transactions=30",
		"--churn-every=10",
		"--log-encoder=json",
		"--report", report,
	})
	require.NoError(t, c.Execute())

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	var summary sim.Summary
	require.NoError(t, json.Unmarshal(data, &summary))
	require.Equal(t, 30, summary.Transactions)
	require.Equal(t, 3, summary.Reconnects)
	require.Positive(t, summary.Requests)
}

func TestRunInvalidFlags(t *testing.T) {
	c := getCommand()
	c.SetArgs([]string{"--q=2"})
	require.ErrorContains(t, c.Execute(), "invalid config")
}
