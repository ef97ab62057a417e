package session

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/scankeeper/internal/barcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreen_EmptyList(t *testing.T) {
	f := newFixture(t)

	scr := f.session.Screen()
	assert.Equal(t, "Scanned Barcodes (0)", scr.Title)
	assert.Equal(t, EmptyList, scr.Empty)
	assert.Empty(t, scr.Groups)
	assert.False(t, scr.Highlight)
}

func TestScreen_GroupsOverview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, c := range []string{"XYZ1", "FM1", "VL1", "FM2"} {
		f.session.Scan(ctx, c)
	}

	scr := f.session.Screen()
	assert.Equal(t, "Scanned Barcodes (4)", scr.Title)
	assert.Equal(t, 4, scr.Count)
	assert.Empty(t, scr.Empty)
	require.Len(t, scr.Groups, 3)
	assert.Equal(t, barcodes.Flipkart, scr.Groups[0].Name)
	assert.Len(t, scr.Groups[0].Items, 2)
	assert.Equal(t, barcodes.Valmo, scr.Groups[1].Name)
	assert.Equal(t, barcodes.Others, scr.Groups[2].Name)
}

func TestScreen_GroupDrillDown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.session.Scan(ctx, "FM1")
	f.session.Scan(ctx, "VL1")

	require.NoError(t, f.session.OpenGroup(ctx, barcodes.Flipkart))
	scr := f.session.Screen()
	assert.Equal(t, "Flipkart Group", scr.Title)
	require.Len(t, scr.Items, 1)
	assert.Equal(t, 1, scr.Items[0].Index)

	require.NoError(t, f.session.OpenGroup(ctx, barcodes.Amazon))
	scr = f.session.Screen()
	assert.Equal(t, EmptyGroup, scr.Empty)
	assert.Empty(t, scr.Items)
}

func TestScreen_Search(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.session.Scan(ctx, "FMabc")
	f.session.Scan(ctx, "VLABC")
	f.session.Scan(ctx, "13xyz")

	f.session.SetSearch(ctx, "abc")
	scr := f.session.Screen()
	assert.True(t, scr.Highlight)
	require.Len(t, scr.Items, 2)
	assert.Equal(t, "VLABC", scr.Items[0].Code)
	assert.Equal(t, 1, scr.Items[0].Index)
	assert.Equal(t, 2, scr.Items[1].Index)

	require.NoError(t, f.session.OpenGroup(ctx, barcodes.Valmo))
	f.session.SetSearch(ctx, "abc")
	scr = f.session.Screen()
	assert.Equal(t, "Valmo Group", scr.Title)
	require.Len(t, scr.Items, 1)
	assert.Equal(t, "VLABC", scr.Items[0].Code)

	f.session.SetSearch(ctx, "zzz")
	scr = f.session.Screen()
	assert.Equal(t, EmptySearch, scr.Empty)

	// deleting through search indices removes the intended records
	f.session.Back(ctx)
	f.session.SetSearch(ctx, "abc")
	require.NoError(t, f.session.DeleteMany(barcodes.Indices(f.session.Screen().Items)))
	assert.Equal(t, []string{"13xyz"}, storeCodes(f.store))
}
