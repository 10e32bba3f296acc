package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/tripwizard/pkg/adapters/memory"
	"github.com/aretw0/tripwizard/pkg/aggregator"
	"github.com/aretw0/tripwizard/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleSummary(t *testing.T) {
	ctx := context.Background()
	session := memory.NewStoreFrom(map[string]string{
		domain.KeyTravelers: "2",
		domain.KeyDuration:  "5",
	})
	durable := memory.NewStore()
	s := NewServer(aggregator.New(session, durable), "0.1.0", WithCatalog(memory.DefaultCatalog()))

	snap, err := s.handleSummary(ctx, mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.MissingCostDataMessage, snap.Costs.Error)

	// Each call reloads the stores
	require.NoError(t, durable.Set(ctx, domain.KeySelectedDestination, `{"name":"Goa","price":2000}`))
	snap, err = s.handleSummary(ctx, mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "₹20,000", snap.Costs.Total)
}

func TestSummaryJSON(t *testing.T) {
	s := NewServer(aggregator.New(memory.NewStore(), memory.NewStore()), "0.1.0")

	text, err := s.summaryJSON(context.Background())
	require.NoError(t, err)

	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal([]byte(text), &snap))
	assert.Equal(t, domain.NotAvailable, snap.Destination.Name)
}

func TestJSONResult(t *testing.T) {
	res, err := jsonResult(map[string]int{"goa": 2000})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.JSONEq(t, `{"goa":2000}`, text.Text)
}
