package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station-report/internal/report/model"
)

func TestExtractAll(t *testing.T) {
	good := buildReport(t, sampleMeta(), sampleHeader, sampleData)
	uploads := []Upload{
		{Name: "a.xlsx", Data: good},
		{Name: "broken.xlsx", Data: []byte("nope")},
		{Name: "b.xlsx", Data: good},
	}

	out := NewExtractor(model.DefaultLayout(), nil).ExtractAll(context.Background(), uploads, 2)
	require.Len(t, out, 3)

	assert.Equal(t, "a.xlsx", out[0].Name)
	assert.NoError(t, out[0].Err)
	assert.Len(t, out[0].Report.Rows, 3)

	assert.Equal(t, "broken.xlsx", out[1].Name)
	var pe *ParseError
	require.True(t, errors.As(out[1].Err, &pe))
	assert.Equal(t, "broken.xlsx", pe.Name)

	assert.NoError(t, out[2].Err)
	assert.Len(t, out[2].Report.Rows, 3)
}

func TestExtractAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := NewExtractor(model.DefaultLayout(), nil).ExtractAll(ctx, []Upload{{Name: "a", Data: []byte("x")}}, 1)
	require.Len(t, out, 1)
	assert.ErrorIs(t, out[0].Err, context.Canceled)
}

func TestExtractAll_Empty(t *testing.T) {
	out := NewExtractor(model.DefaultLayout(), nil).ExtractAll(context.Background(), nil, 0)
	assert.Empty(t, out)
}
