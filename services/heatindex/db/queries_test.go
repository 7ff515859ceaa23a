package db

import (
	"context"
	"testing"
	"time"

	"heatindex-backend/lib/testutil"

	"github.com/stretchr/testify/require"
)

func TestIssueNamesRoundTrip(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/heatindex/db",
		DbSchema: Schema,
	})
	defer cleanup()
	qry := New(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	{
		names, err := qry.LatestIssueNames(ctx)
		require.NoError(t, err)
		require.Empty(t, names)
	}

	october, err := qry.CreateIssue(ctx, CreateIssueParams{
		Period:    "October 2025",
		Createdat: 1000,
	})
	require.NoError(t, err)
	for _, name := range []string{"Penny", "Bridges", "Corima"} {
		require.NoError(t, qry.CreateIssueName(ctx, CreateIssueNameParams{
			IssueID: october,
			Name:    name,
		}))
	}

	november, err := qry.CreateIssue(ctx, CreateIssueParams{
		Period:    "November 2025",
		Createdat: 2000,
	})
	require.NoError(t, err)
	for _, name := range []string{"Sailor", "Corima"} {
		require.NoError(t, qry.CreateIssueName(ctx, CreateIssueNameParams{
			IssueID: november,
			Name:    name,
		}))
	}

	// only the newest issue's names come back, in insertion order
	names, err := qry.LatestIssueNames(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Sailor", "Corima"}, names)
}
